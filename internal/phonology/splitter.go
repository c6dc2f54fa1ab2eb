package phonology

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/fonemas/internal/rewrite"
	"codeberg.org/snonux/fonemas/internal/syllable"
)

// Options controls the phonological stage.
type Options struct {
	// Mono drops the stress mark of monosyllabic words.
	Mono bool
	// Exceptions is handed to the syllabifier.
	Exceptions int
	// Aspiration keeps a word-initial "h" as an aspirated consonant.
	Aspiration bool
	// Rehash moves a lone onset consonant followed by a glide back to a
	// preceding closed syllable.
	Rehash bool
}

// Word is a syllabified word. Stress marks are kept as indexes and only
// serialized by String.
type Word struct {
	Syllables []string
	Stress    int
	// Secondary is the index of the secondary stress, -1 when there is none.
	Secondary  int
	Unstressed bool
}

const suffixMente = "mente"

var (
	falling = rewrite.NewTable(
		rewrite.Rule{From: "i", To: "j", Before: rewrite.In("aeoáéó")},
		rewrite.Rule{From: "u", To: "w", Before: rewrite.In("aeoáéó")},
	)
	rising = rewrite.NewTable(
		rewrite.Rule{From: "i", To: "j", After: rewrite.In("aeouáéíóú")},
		rewrite.Rule{From: "u", To: "w", After: rewrite.In("aeioáéíó")},
	)
	plainVowels = strings.NewReplacer(
		"á", "a", "à", "a", "ä", "a",
		"é", "e", "è", "e", "ë", "e",
		"í", "i", "ì", "i", "ï", "i",
		"ó", "o", "ò", "o", "ö", "o",
		"ú", "u", "ù", "u", "ü", "u",
	)
)

// SplitWord syllabifies a phonological word, forms glides and folds the
// written accents once stress has been placed.
func SplitWord(word string, opts Options) (Word, error) {
	sylOpts := syllable.Options{Exceptions: opts.Exceptions, IPA: true, H: true}

	var w Word
	if len([]rune(word)) > len(suffixMente) && strings.HasSuffix(word, suffixMente) {
		stem, err := syllable.Syllabify(strings.TrimSuffix(word, suffixMente), sylOpts)
		if err != nil {
			return Word{}, fmt.Errorf("failed to syllabify stem of %q: %w", word, err)
		}
		w.Syllables = append(append([]string{}, stem.Syllables...), "men", "te")
		men := len(w.Syllables) - 2
		if len(stem.Syllables) == 1 {
			w.Stress = men
			w.Secondary = -1
		} else {
			w.Stress = len(w.Syllables) + stem.FromEnd() - 2
			w.Secondary = men
		}
	} else {
		s, err := syllable.Syllabify(word, sylOpts)
		if err != nil {
			return Word{}, fmt.Errorf("failed to syllabify %q: %w", word, err)
		}
		w.Syllables = append([]string{}, s.Syllables...)
		w.Stress = s.Stress
		w.Secondary = -1
		w.Unstressed = s.Unstressed
	}

	for i, s := range w.Syllables {
		w.Syllables[i] = rising.Apply(falling.Apply(s))
	}
	if opts.Rehash {
		rehash(w.Syllables)
	}
	for i, s := range w.Syllables {
		w.Syllables[i] = plainVowels.Replace(s)
	}
	if opts.Mono && len(w.Syllables) == 1 {
		w.Unstressed = true
	}
	return w, nil
}

// rehash moves the onset consonant of a consonant plus glide syllable to a
// preceding syllable that already ends in a consonant.
func rehash(syllables []string) {
	for i := 1; i < len(syllables); i++ {
		prev := []rune(syllables[i-1])
		cur := []rune(syllables[i])
		if len(prev) == 0 || len(cur) < 3 {
			continue
		}
		if strings.ContainsRune(vowels+"jw", prev[len(prev)-1]) {
			continue
		}
		if strings.ContainsRune(vowels+"jw", cur[0]) || (cur[1] != 'j' && cur[1] != 'w') {
			continue
		}
		syllables[i-1] = string(append(prev, cur[0]))
		syllables[i] = string(cur[1:])
	}
}

// Marked returns the syllables with the stress marks attached.
func (w Word) Marked() []string {
	out := make([]string, len(w.Syllables))
	for i, s := range w.Syllables {
		switch {
		case i == w.Stress && !w.Unstressed:
			out[i] = Primary + s
		case i == w.Secondary:
			out[i] = Secondary + s
		default:
			out[i] = s
		}
	}
	return out
}

func (w Word) String() string {
	return strings.Join(w.Marked(), "")
}

// Split syllabifies every word of a phonological sentence.
func Split(sentence string, opts Options) (Values, error) {
	var v Values
	for _, word := range strings.Fields(sentence) {
		w, err := SplitWord(word, opts)
		if err != nil {
			return Values{}, err
		}
		marked := w.Marked()
		v.Words = append(v.Words, strings.Join(marked, ""))
		v.Syllables = append(v.Syllables, marked...)
	}
	return v, nil
}

// Transcribe maps a normalized sentence to its syllabified phonological form.
func Transcribe(sentence string, opts Options) (Values, error) {
	return Split(ToPhonology(sentence, opts.Aspiration), opts)
}
