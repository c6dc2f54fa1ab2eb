package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		epenthesis bool
		want       string
	}{
		{"lower case", "Casa BLANCA", false, "casa blanca"},
		{"punctuation becomes space", "¿Qué?¡Hola!", false, "qué hola"},
		{"hyphen keeps words apart", "físico-química", false, "físico química"},
		{"quotes", "«sí» “no” 'tal'", false, "sí no tal"},
		{"letter name", "la b de burro", false, "la be de burro"},
		{"letter name not inside words", "bebé", false, "bebé"},
		{"letter name after punctuation", "(b)", false, "be"},
		{"digraph letter name", "ph", false, "peache"},
		{"letter names inside a token", "b/c", false, "be/ce"},
		{"letter names around a symbol", "b+c", false, "be+ce"},
		{"letter name next to digits", "4x4", false, "4ekis4"},
		{"vowels are words", "a y o", false, "a y o"},
		{"grave accent", "cafè", false, "cafe"},
		{"circumflex", "crêpe", false, "crepe"},
		{"ligature", "æon", false, "aeon"},
		{"cedilla", "façade", false, "fazade"},
		{"tilde vowel", "são", false, "sao"},
		{"diaeresis kept", "pingüino ruïdo", false, "pingüino ruïdo"},
		{"decomposed accents compose", "cafe\u0301", false, "café"},
		{"whitespace collapses", "  uno \t dos\n", false, "uno dos"},
		{"epenthesis", "stop", true, "estop"},
		{"epenthesis only word initial", "el sprint, esto", true, "el esprint esto"},
		{"epenthesis needs consonant", "sal", true, "sal"},
		{"epenthesis disabled", "stop", false, "stop"},
		{"letter name wins over epenthesis", "s", true, "ese"},
		{"digits pass through", "año 2024", false, "año 2024"},
		{"punctuation only", "...!?", false, ""},
		{"empty", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in, tt.epenthesis))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"¿Dónde está la b?",
		"«Hola», dijo — y se fue…",
		"Crème brûlée, s'il vous plaît",
		"pingüino   cigüeña",
		"b/c y s+t",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in, false)
		assert.Equal(t, once, Normalize(once, false), in)
	}
}
