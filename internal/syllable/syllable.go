package syllable

import (
	"fmt"
	"strings"
)

// Options tunes how a word is split.
type Options struct {
	// Exceptions selects how many lexical exceptions are honoured:
	// 0 applies the orthographic rules only, 1 adds prefix boundaries
	// and 2 additionally reports clitic monosyllables as unstressed.
	Exceptions int
	// IPA treats the word as a phonological transcription: "tʃ" is a
	// single consonant and the glides j and w behave as closed vowels.
	IPA bool
	// H makes "h" a full consonant. When false an "h" between two vowels
	// does not prevent them from forming a diphthong.
	H bool
}

// Syllabification is the result of splitting a single word.
type Syllabification struct {
	Syllables []string
	// Stress is the index of the stressed syllable.
	Stress int
	// Unstressed is set for clitic monosyllables when Exceptions is 2.
	Unstressed bool
}

// FromEnd returns the stress position counted from the end of the word,
// -1 being the last syllable.
func (s Syllabification) FromEnd() int {
	return s.Stress - len(s.Syllables)
}

// EmptySyllableError is returned when there is nothing to split.
type EmptySyllableError struct {
	Word string
}

func (e *EmptySyllableError) Error() string {
	return fmt.Sprintf("cannot syllabify empty word %q", e.Word)
}

const (
	accented  = "áéíóú"
	diaeresis = "äëïöü"
	// finalVowels are the endings that move unmarked stress to the penult.
	finalVowels = "aeiouäëïöü"
)

// Consonant pairs that always open a syllable together, coda pairs that
// may close one, and prefixes whose boundary overrides both.
var (
	onsetStops    = []string{"p", "b", "k", "g", "f", "c", "β", "ɣ"}
	onsetDentals  = []string{"t", "d", "ð"}
	onsetLiquids  = []string{"l", "r", "ɾ"}
	onsetRhotics  = []string{"r", "ɾ"}
	codaClusters  = []string{"ns", "bs", "ds", "ks", "ls", "rs", "ms", "ps", "ɾs"}
	prefixMarkers = []struct {
		prefix  string
		exclude []string
	}{
		{"sub", []string{"sublim"}},
	}
)

// clitics are the monosyllables that carry no lexical stress, both in their
// written and their phonological shape.
var clitics = map[string]bool{
	"el": true, "la": true, "lo": true, "los": true, "las": true,
	"le": true, "les": true, "de": true, "del": true, "al": true,
	"en": true, "con": true, "kon": true, "por": true, "poɾ": true,
	"sin": true, "a": true, "y": true, "i": true, "e": true, "o": true,
	"u": true, "que": true, "ke": true, "se": true, "me": true,
	"te": true, "nos": true, "os": true, "mi": true, "mis": true,
	"tu": true, "tus": true, "su": true, "sus": true, "un": true,
}

// Syllabify splits word into syllables and locates the stressed one.
func Syllabify(word string, opts Options) (Syllabification, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return Syllabification{}, &EmptySyllableError{Word: word}
	}

	units := tokenize(word, opts.IPA)
	syllables := split(word, units, opts)
	result := Syllabification{
		Syllables: syllables,
		Stress:    stress(word, syllables),
	}
	if opts.Exceptions >= 2 && len(syllables) == 1 && clitics[word] {
		result.Unstressed = true
	}
	return result, nil
}

type unit struct {
	text   string
	vowel  bool
	strong bool
	// class groups closed vowels: 'i' for i, y and j, 'u' for u and w.
	class     rune
	diaeresis bool
}

func vowelUnit(r rune, afterG bool) unit {
	u := unit{text: string(r), vowel: true}
	switch {
	case strings.ContainsRune(accented, r):
		u.strong = true
	case strings.ContainsRune("aeoäëö", r):
		u.strong = true
	case strings.ContainsRune("iïyj", r):
		u.class = 'i'
	case strings.ContainsRune("uüw", r):
		u.class = 'u'
	}
	if strings.ContainsRune(diaeresis, r) {
		// "gü" is a consonant plus glide, not a hiatus marker.
		u.diaeresis = !(r == 'ü' && afterG)
	}
	return u
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiou"+accented+diaeresis, r)
}

func isFront(r rune) bool {
	return strings.ContainsRune("eiéíëï", r)
}

func tokenize(word string, ipa bool) []unit {
	runes := []rune(word)
	units := make([]unit, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		var next rune
		if i+1 < len(runes) {
			next = runes[i+1]
		}
		afterG := i > 0 && runes[i-1] == 'g'

		switch {
		case ipa && r == 't' && next == 'ʃ':
			units = append(units, unit{text: "tʃ"})
			i++
		case ipa && (r == 'j' || r == 'w'):
			units = append(units, vowelUnit(r, afterG))
		case !ipa && ((r == 'c' && next == 'h') || (r == 'l' && next == 'l') || (r == 'r' && next == 'r') || (r == 'q' && next == 'u')):
			units = append(units, unit{text: string(runes[i : i+2])})
			i++
		case !ipa && r == 'g' && next == 'u' && i+2 < len(runes) && isFront(runes[i+2]):
			units = append(units, unit{text: "gu"})
			i++
		case r == 'y':
			if next == 0 || !isVowel(next) {
				units = append(units, vowelUnit(r, afterG))
			} else {
				units = append(units, unit{text: "y"})
			}
		case isVowel(r):
			units = append(units, vowelUnit(r, afterG))
		default:
			units = append(units, unit{text: string(r)})
		}
	}
	return units
}

func hiatus(a, b unit) bool {
	if a.diaeresis || b.diaeresis {
		return true
	}
	if a.strong && b.strong {
		return true
	}
	return !a.strong && !b.strong && a.class == b.class
}

type span struct {
	start, end int
}

// nuclei groups adjacent vowels into syllable nuclei. A nucleus holds at
// most one strong vowel; a closed vowel between two vowels that would both
// join it opens the following nucleus instead (a-we, re-wir).
func nuclei(units []unit, h bool) []span {
	var spans []span
	for i := 0; i < len(units); {
		if !units[i].vowel {
			i++
			continue
		}
		s := span{start: i, end: i + 1}
		strong := units[i].strong
		for s.end < len(units) {
			last := units[s.end-1]
			next := s.end
			if !h && units[next].text == "h" && next+1 < len(units) {
				next++
			}
			v := units[next]
			if !v.vowel || hiatus(last, v) {
				break
			}
			if strong && !last.strong {
				s.end--
				if s.end-1 > s.start && units[s.end-1].text == "h" {
					s.end--
				}
				break
			}
			if strong && v.strong {
				break
			}
			strong = strong || v.strong
			s.end = next + 1
		}
		spans = append(spans, s)
		i = s.end
	}
	return spans
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func inseparableOnset(a, b unit) bool {
	if contains(onsetStops, a.text) && contains(onsetLiquids, b.text) {
		return true
	}
	return contains(onsetDentals, a.text) && contains(onsetRhotics, b.text)
}

// coda returns how many consonants of the cluster stay with the preceding
// syllable.
func coda(cluster []unit) int {
	k := len(cluster)
	switch {
	case k <= 1:
		return 0
	case inseparableOnset(cluster[k-2], cluster[k-1]):
		return k - 2
	case k >= 3 && contains(codaClusters, cluster[0].text+cluster[1].text):
		return 2
	default:
		return k / 2
	}
}

// prefixCoda keeps a prefix's final consonant in the first syllable when
// the word starts with a known prefix followed by a liquid, as in "sub-ra-yar".
func prefixCoda(word string, first span, cluster []unit) (int, bool) {
	if len(cluster) != 2 || !contains(onsetLiquids, cluster[1].text) {
		return 0, false
	}
	for _, p := range prefixMarkers {
		if !strings.HasPrefix(word, p.prefix) || first.end != len(p.prefix)-1 {
			continue
		}
		if cluster[0].text != p.prefix[len(p.prefix)-1:] {
			continue
		}
		excluded := false
		for _, ex := range p.exclude {
			if strings.HasPrefix(word, ex) {
				excluded = true
			}
		}
		if !excluded {
			return 1, true
		}
	}
	return 0, false
}

func split(word string, units []unit, opts Options) []string {
	spans := nuclei(units, opts.H)
	if len(spans) <= 1 {
		return []string{word}
	}

	bounds := make([]int, 0, len(spans)+1)
	bounds = append(bounds, 0)
	for i := 0; i+1 < len(spans); i++ {
		cluster := units[spans[i].end:spans[i+1].start]
		c := coda(cluster)
		if i == 0 && opts.Exceptions >= 1 {
			if pc, ok := prefixCoda(word, spans[0], cluster); ok {
				c = pc
			}
		}
		bounds = append(bounds, spans[i].end+c)
	}
	bounds = append(bounds, len(units))

	syllables := make([]string, 0, len(spans))
	for i := 0; i+1 < len(bounds); i++ {
		var b strings.Builder
		for _, u := range units[bounds[i]:bounds[i+1]] {
			b.WriteString(u.text)
		}
		syllables = append(syllables, b.String())
	}
	return syllables
}

// stress picks the stressed syllable: the last written accent wins, otherwise
// words ending in a vowel, n or s stress the penult and all others the
// last syllable.
func stress(word string, syllables []string) int {
	n := len(syllables)
	if n == 1 {
		return 0
	}
	for i := n - 1; i >= 0; i-- {
		if strings.ContainsAny(syllables[i], accented) {
			return i
		}
	}
	runes := []rune(word)
	last := runes[len(runes)-1]
	if strings.ContainsRune(finalVowels, last) || last == 'n' || last == 's' {
		return n - 2
	}
	return n - 1
}
