package phonology

import "strings"

// Stress marks embedded in serialized syllables and words.
const (
	Primary   = "ˈ"
	Secondary = "ˌ"
)

// Values is a transcribed sentence: its words and the flat, ordered list of
// the syllables of all words. Concatenating the syllables of a word yields
// the word itself, stress marks included.
type Values struct {
	Words     []string `json:"words"`
	Syllables []string `json:"syllables"`
}

// Groups returns the syllables grouped by word.
func (v Values) Groups() [][]string {
	groups := make([][]string, 0, len(v.Words))
	k := 0
	for _, w := range v.Words {
		var group []string
		size := 0
		for k < len(v.Syllables) && size < len(w) {
			group = append(group, v.Syllables[k])
			size += len(v.Syllables[k])
			k++
		}
		groups = append(groups, group)
	}
	return groups
}

// Sentence joins the words with single spaces.
func (v Values) Sentence() string {
	return strings.Join(v.Words, " ")
}

// Hyphenated joins the syllables of each word with hyphens and the words
// with spaces.
func (v Values) Hyphenated() string {
	groups := v.Groups()
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = strings.Join(g, "-")
	}
	return strings.Join(parts, " ")
}

// Empty reports whether the sentence has no words.
func (v Values) Empty() bool {
	return len(v.Words) == 0
}

// StripStress removes the stress marks from s.
func StripStress(s string) string {
	return strings.NewReplacer(Primary, "", Secondary, "").Replace(s)
}
