package sampa

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/fonemas/internal/phonology"
	"codeberg.org/snonux/fonemas/internal/rewrite"
)

// SecondaryStress is the SAMPA glyph for secondary stress.
const SecondaryStress = "%"

// UnmappedSymbolError reports a phonetic symbol without an ASCII
// counterpart. It means the symbol table is incomplete.
type UnmappedSymbolError struct {
	Symbol string
	Word   string
}

func (e *UnmappedSymbolError) Error() string {
	return fmt.Sprintf("no SAMPA mapping for symbol %q in %q", e.Symbol, e.Word)
}

var symbols = rewrite.NewTable(
	rewrite.Rule{From: "tʃ", To: "tS"},
	rewrite.Rule{From: "β", To: "B"},
	rewrite.Rule{From: "ð", To: "D"},
	rewrite.Rule{From: "ɣ", To: "G"},
	rewrite.Rule{From: "θ", To: "T"},
	rewrite.Rule{From: "χ", To: "X"},
	rewrite.Rule{From: "ʝ", To: "jj"},
	rewrite.Rule{From: "ɲ", To: "J"},
	rewrite.Rule{From: "ŋ", To: "N"},
	rewrite.Rule{From: "ɱ", To: "F"},
	rewrite.Rule{From: "ʎ", To: "L"},
	rewrite.Rule{From: "r", To: "rr"},
	rewrite.Rule{From: "ɾ", To: "r"},
	rewrite.Rule{From: "ʃ", To: "S"},
	rewrite.Rule{From: "ʒ", To: "Z"},
	rewrite.Rule{From: phonology.Secondary, To: SecondaryStress},
)

// phonetic reports whether r belongs to the IPA symbol space, where every
// symbol needs an explicit mapping.
func phonetic(r rune) bool {
	switch {
	case r >= 0x0250 && r <= 0x02FF:
		return true
	case strings.ContainsRune("βθχðŋ", r):
		return true
	}
	return false
}

// Convert maps a single phonetic string to SAMPA.
func Convert(s, primary string) (string, error) {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); {
		if string(runes[i]) == phonology.Primary {
			b.WriteString(primary)
			i++
			continue
		}
		if to, n, ok := symbols.Match(runes, i); ok {
			b.WriteString(to)
			i += n
			continue
		}
		if phonetic(runes[i]) {
			return "", &UnmappedSymbolError{Symbol: string(runes[i]), Word: s}
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String(), nil
}

// ToASCII transliterates phonetic values to SAMPA, writing primary stress
// as the given glyph and secondary stress as "%".
func ToASCII(v phonology.Values, primary string) (phonology.Values, error) {
	out := phonology.Values{
		Words:     make([]string, 0, len(v.Words)),
		Syllables: make([]string, 0, len(v.Syllables)),
	}
	for _, w := range v.Words {
		s, err := Convert(w, primary)
		if err != nil {
			return phonology.Values{}, err
		}
		out.Words = append(out.Words, s)
	}
	for _, syl := range v.Syllables {
		s, err := Convert(syl, primary)
		if err != nil {
			return phonology.Values{}, err
		}
		out.Syllables = append(out.Syllables, s)
	}
	return out, nil
}
