package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"codeberg.org/snonux/fonemas/internal/rewrite"
)

// punctuation lists every symbol replaced by a single space.
const punctuation = `()[]{}—…,;:?!¿¡'.«»–“”‘’"-`

// foreign folds diacritics that Spanish orthography does not use onto the
// closest Spanish letter. Diaeresis vowels are left untouched: they mark a
// hiatus and are resolved once the word has been syllabified.
var foreign = rewrite.NewTable(
	rewrite.Rule{From: "æ", To: "ae"},
	rewrite.Rule{From: "œ", To: "oe"},
	rewrite.Rule{From: "ç", To: "z"},
	rewrite.Rule{From: "à", To: "a"},
	rewrite.Rule{From: "â", To: "a"},
	rewrite.Rule{From: "å", To: "a"},
	rewrite.Rule{From: "ã", To: "a"},
	rewrite.Rule{From: "è", To: "e"},
	rewrite.Rule{From: "ê", To: "e"},
	rewrite.Rule{From: "ẽ", To: "e"},
	rewrite.Rule{From: "ì", To: "i"},
	rewrite.Rule{From: "î", To: "i"},
	rewrite.Rule{From: "ĩ", To: "i"},
	rewrite.Rule{From: "ò", To: "o"},
	rewrite.Rule{From: "ô", To: "o"},
	rewrite.Rule{From: "õ", To: "o"},
	rewrite.Rule{From: "ø", To: "o"},
	rewrite.Rule{From: "ù", To: "u"},
	rewrite.Rule{From: "û", To: "u"},
	rewrite.Rule{From: "ũ", To: "u"},
	rewrite.Rule{From: "ů", To: "u"},
	rewrite.Rule{From: "ÿ", To: "y"},
)

// letterNames spells out a letter written on its own.
var letterNames = []struct {
	letter string
	name   string
}{
	{"ph", "peache"},
	{"b", "be"},
	{"c", "ce"},
	{"d", "de"},
	{"f", "efe"},
	{"g", "ge"},
	{"h", "hache"},
	{"j", "jota"},
	{"k", "ka"},
	{"l", "ele"},
	{"m", "eme"},
	{"n", "ene"},
	{"ñ", "eñe"},
	{"p", "pe"},
	{"q", "ku"},
	{"r", "erre"},
	{"s", "ese"},
	{"t", "te"},
	{"v", "ube"},
	{"w", "ubedoble"},
	{"x", "ekis"},
	{"z", "ceta"},
}

const vowels = "aeiouáéíóúàèìòùäëïöü"

// Normalize lower-cases raw, turns punctuation into spaces, folds foreign
// diacritics, spells out standalone letters and, when epenthesis is set,
// prefixes an "e" to words starting with "s" plus consonant. Runs of
// whitespace collapse to a single space. Any input is accepted.
func Normalize(raw string, epenthesis bool) string {
	s := strings.ToLower(norm.NFC.String(raw))
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return ' '
		}
		return r
	}, s)
	s = foreign.Apply(s)

	words := strings.Fields(s)
	for i, w := range words {
		w = spellLetters(w)
		if epenthesis {
			w = epenthesize(w)
		}
		words[i] = w
	}
	return strings.Join(words, " ")
}

// spellLetters spells out every run of letters that is a single letter
// name, so "b/c" reads as "be/ce".
func spellLetters(word string) string {
	runes := []rune(word)
	var b strings.Builder
	for i := 0; i < len(runes); {
		letter := unicode.IsLetter(runes[i])
		j := i + 1
		for j < len(runes) && unicode.IsLetter(runes[j]) == letter {
			j++
		}
		run := string(runes[i:j])
		if letter {
			run = spellLetter(run)
		}
		b.WriteString(run)
		i = j
	}
	return b.String()
}

func spellLetter(word string) string {
	for _, l := range letterNames {
		if word == l.letter {
			return l.name
		}
	}
	return word
}

func epenthesize(word string) string {
	runes := []rune(word)
	if len(runes) < 2 || runes[0] != 's' {
		return word
	}
	next := runes[1]
	if !unicode.IsLetter(next) || strings.ContainsRune(vowels, next) || next == 'y' {
		return word
	}
	return "e" + word
}
