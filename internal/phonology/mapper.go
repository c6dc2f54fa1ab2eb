package phonology

import (
	"strings"

	"codeberg.org/snonux/fonemas/internal/rewrite"
)

const (
	vowels      = "aeiouáéíóúäëïöü"
	frontVowels = "eiéíëï"
)

var (
	isVowel    = rewrite.In(vowels)
	isFront    = rewrite.In(frontVowels)
	notVowel   = rewrite.NotIn(vowels)
	strongRoot = rewrite.In("aoáó")
)

// rhotics picks the trill for "rr", word-initial "r" and "r" after n, l or
// s. Every other "r" is a tap.
var rhotics = rewrite.NewTable(
	rewrite.Rule{From: "rr", To: "r"},
	rewrite.Rule{From: "r", To: "r", Before: rewrite.Either(rewrite.Boundary, rewrite.In("nls"))},
	rewrite.Rule{From: "r", To: "ɾ"},
)

func consonantRules(aspirate bool) []rewrite.Rule {
	rules := []rewrite.Rule{
		{From: "ch", To: "tʃ"},
		{From: "ll", To: "ʎ"},
		{From: "qu", To: "k"},
		{From: "ph", To: "f"},
		{From: "c", To: "θ", After: isFront},
		{From: "c", To: "k"},
		{From: "z", To: "θ"},
		{From: "x", To: "s", Before: rewrite.Boundary, After: isVowel},
		{From: "x", To: "ks"},
		{From: "j", To: "x"},
		{From: "ñ", To: "ɲ"},
		{From: "v", To: "b"},
		{From: "w", To: "b"},
	}
	if aspirate {
		rules = append(rules, rewrite.Rule{From: "h", To: "h", Before: rewrite.Boundary})
	}
	return append(rules, rewrite.Rule{From: "h", To: ""})
}

var (
	consonants          = rewrite.NewTable(consonantRules(false)...)
	consonantsAspirated = rewrite.NewTable(consonantRules(true)...)
)

// palatals resolves "y": the conjunction is a vowel, a final "y" is a glide
// and every other "y" is the palatal fricative.
var palatals = rewrite.NewTable(
	rewrite.Rule{From: "y", To: "i", Before: rewrite.Boundary, After: rewrite.Boundary},
	rewrite.Rule{From: "uy", To: "wi", After: rewrite.Boundary},
	rewrite.Rule{From: "y", To: "j", After: rewrite.Boundary},
	rewrite.Rule{From: "y", To: "ʝ"},
)

// palatalRepair turns the fricative back into a vowel wherever no vowel
// follows it.
var palatalRepair = rewrite.NewTable(
	rewrite.Rule{From: "ʝ", To: "i", After: notVowel},
)

// velars handles "g" before front vowels and the labialised "gu"/"gü".
var velars = rewrite.NewTable(
	rewrite.Rule{From: "gu", To: "g", After: isFront},
	rewrite.Rule{From: "gü", To: "gw"},
	rewrite.Rule{From: "gu", To: "gw", After: strongRoot},
	rewrite.Rule{From: "g", To: "x", After: isFront},
)

// ToPhonology rewrites a normalized sentence into its phonological form.
// Written accents are kept because the syllabifier still needs them to
// place stress; they are folded once the words have been split.
func ToPhonology(sentence string, aspirateH bool) string {
	sentence = strings.Join(strings.Fields(sentence), " ")
	if sentence == "" {
		return ""
	}
	sentence = rhotics.Apply(sentence)
	if aspirateH {
		sentence = consonantsAspirated.Apply(sentence)
	} else {
		sentence = consonants.Apply(sentence)
	}
	sentence = palatals.Apply(sentence)
	sentence = palatalRepair.Apply(sentence)
	sentence = velars.Apply(sentence)
	return strings.Join(strings.Fields(sentence), " ")
}
