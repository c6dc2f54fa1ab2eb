package phonetics

import (
	"strings"

	"codeberg.org/snonux/fonemas/internal/phonology"
	"codeberg.org/snonux/fonemas/internal/rewrite"
)

// separators are looked through when a rule inspects its neighbours:
// word boundaries, syllable boundaries and stress marks.
const (
	separators     = " -" + phonology.Primary + phonology.Secondary
	separatorWidth = 3
)

const (
	nasals         = "mnɲŋɱ"
	voicedTriggers = "bdgβðɣmnɲlʎrɾ"
)

// spirants turns voiced stops into approximants unless they follow a nasal,
// a lateral in the case of d, or start the utterance.
var spirants = rewrite.NewTable(
	rewrite.Rule{From: "b", To: "β", Before: notAfter(nasals)},
	rewrite.Rule{From: "d", To: "ð", Before: notAfter(nasals + "lʎ")},
	rewrite.Rule{From: "g", To: "ɣ", Before: notAfter(nasals)},
).Transparent(separators, separatorWidth)

// voicing assimilates θ, s and f to a following voiced consonant. It runs
// after spirants so the triggers include the approximants.
var voicing = rewrite.NewTable(
	rewrite.Rule{From: "θ", To: "ð", After: rewrite.In(voicedTriggers)},
	rewrite.Rule{From: "s", To: "z", After: rewrite.In(voicedTriggers)},
	rewrite.Rule{From: "f", To: "v", After: rewrite.In("bdgβðɣmnɲʎ")},
).Transparent(separators, separatorWidth)

// places assimilates n to the place of the following consonant and backs
// the velar fricative before rounded vowels.
var places = rewrite.NewTable(
	rewrite.Rule{From: "n", To: "m", After: rewrite.In("bpmβ")},
	rewrite.Rule{From: "n", To: "ɱ", After: rewrite.In("fv")},
	rewrite.Rule{From: "n", To: "ŋ", After: rewrite.In("kgxɣ")},
	rewrite.Rule{From: "x", To: "χ", After: rewrite.In("ouw")},
).Transparent(separators, separatorWidth)

func notAfter(set string) rewrite.Context {
	return func(r rune) bool {
		return r != rewrite.Edge && !strings.ContainsRune(set, r)
	}
}

// inventory lists the symbols the stage can produce, affricate first.
var inventory = []string{
	"tʃ",
	"a", "e", "i", "o", "u", "j", "w",
	"p", "b", "β", "t", "d", "ð", "k", "g", "ɣ",
	"f", "v", "θ", "s", "z", "x", "χ", "h", "ʝ",
	"m", "ɱ", "n", "ɲ", "ŋ", "l", "ʎ", "r", "ɾ",
	phonology.Primary, phonology.Secondary,
}

// ToPhonetics applies the post-lexical allophony rules to a phonological
// sentence. Syllables are hyphen-joined and words space-joined so the rules
// see the whole utterance with its boundaries.
func ToPhonetics(v phonology.Values) phonology.Values {
	if v.Empty() {
		return phonology.Values{}
	}
	s := v.Hyphenated()
	s = spirants.Apply(s)
	s = voicing.Apply(s)
	s = places.Apply(s)

	var out phonology.Values
	for _, word := range strings.Fields(s) {
		out.Words = append(out.Words, strings.ReplaceAll(word, "-", ""))
		out.Syllables = append(out.Syllables, strings.Split(word, "-")...)
	}
	return out
}
