package syllable

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyllabifyOrthographic(t *testing.T) {
	tests := []struct {
		word      string
		syllables []string
		stress    int
	}{
		{"casa", []string{"ca", "sa"}, 0},
		{"ángel", []string{"án", "gel"}, 0},
		{"camión", []string{"ca", "mión"}, 1},
		{"árbol", []string{"ár", "bol"}, 0},
		{"reloj", []string{"re", "loj"}, 1},
		{"examen", []string{"e", "xa", "men"}, 1},
		{"país", []string{"pa", "ís"}, 1},
		{"perro", []string{"pe", "rro"}, 0},
		{"chico", []string{"chi", "co"}, 0},
		{"calle", []string{"ca", "lle"}, 0},
		{"quiero", []string{"quie", "ro"}, 0},
		{"guitarra", []string{"gui", "ta", "rra"}, 1},
		{"pingüino", []string{"pin", "güi", "no"}, 1},
		{"ruïdo", []string{"ru", "ï", "do"}, 1},
		{"construir", []string{"cons", "truir"}, 1},
		{"transporte", []string{"trans", "por", "te"}, 1},
		{"otro", []string{"o", "tro"}, 0},
		{"atleta", []string{"at", "le", "ta"}, 1},
		{"hoy", []string{"hoy"}, 0},
		{"estoy", []string{"es", "toy"}, 1},
		{"leía", []string{"le", "í", "a"}, 1},
		{"chiita", []string{"chi", "i", "ta"}, 1},
		{"cuidado", []string{"cui", "da", "do"}, 1},
		{"rápida", []string{"rá", "pi", "da"}, 0},
		{"dígaselo", []string{"dí", "ga", "se", "lo"}, 0},
		{"alcohol", []string{"al", "co", "hol"}, 2},
		{"cacahuete", []string{"ca", "ca", "hue", "te"}, 2},
		{"ahuecar", []string{"a", "hue", "car"}, 2},
		{"rehuir", []string{"re", "huir"}, 1},
		{"2024", []string{"2024"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := Syllabify(tt.word, Options{Exceptions: 1})
			require.NoError(t, err)
			assert.Equal(t, tt.syllables, got.Syllables)
			assert.Equal(t, tt.stress, got.Stress)
			assert.False(t, got.Unstressed)
		})
	}
}

func TestSyllabifyIPA(t *testing.T) {
	tests := []struct {
		word      string
		syllables []string
		stress    int
	}{
		{"kasa", []string{"ka", "sa"}, 0},
		{"tʃiko", []string{"tʃi", "ko"}, 0},
		{"peɾo", []string{"pe", "ɾo"}, 0},
		{"pero", []string{"pe", "ro"}, 0},
		{"otɾo", []string{"o", "tɾo"}, 0},
		{"aʎa", []string{"a", "ʎa"}, 0},
		{"estoj", []string{"es", "toj"}, 1},
		{"pingwino", []string{"pin", "gwi", "no"}, 1},
		{"kamjón", []string{"ka", "mjón"}, 1},
		{"eksamen", []string{"ek", "sa", "men"}, 1},
		{"ablaɾ", []string{"a", "blaɾ"}, 1},
		{"kakauete", []string{"ka", "ka", "ue", "te"}, 2},
		{"auekaɾ", []string{"a", "ue", "kaɾ"}, 2},
		{"reuiɾ", []string{"re", "uiɾ"}, 1},
		{"miau", []string{"miau"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := Syllabify(tt.word, Options{Exceptions: 1, IPA: true})
			require.NoError(t, err)
			assert.Equal(t, tt.syllables, got.Syllables)
			assert.Equal(t, tt.stress, got.Stress)
		})
	}
}

func TestPrefixExceptions(t *testing.T) {
	tests := []struct {
		word       string
		exceptions int
		want       []string
	}{
		{"subrayar", 0, []string{"su", "bra", "yar"}},
		{"subrayar", 1, []string{"sub", "ra", "yar"}},
		{"sublunar", 1, []string{"sub", "lu", "nar"}},
		{"sublime", 1, []string{"su", "bli", "me"}},
		{"subir", 1, []string{"su", "bir"}},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := Syllabify(tt.word, Options{Exceptions: tt.exceptions})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Syllables)
		})
	}
}

func TestSilentH(t *testing.T) {
	got, err := Syllabify("ahumar", Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"ahu", "mar"}, got.Syllables)

	got, err = Syllabify("ahumar", Options{H: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "hu", "mar"}, got.Syllables)

	got, err = Syllabify("prohibir", Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"prohi", "bir"}, got.Syllables)

	got, err = Syllabify("prohibir", Options{H: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"pro", "hi", "bir"}, got.Syllables)
	assert.Equal(t, 2, got.Stress)
}

func TestClosedVowelBetweenStrongVowels(t *testing.T) {
	for _, h := range []bool{false, true} {
		got, err := Syllabify("cacahuete", Options{H: h})
		require.NoError(t, err)
		assert.Equal(t, []string{"ca", "ca", "hue", "te"}, got.Syllables, "h=%v", h)
	}

	got, err := Syllabify("auekaɾ", Options{IPA: true, H: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "ue", "kaɾ"}, got.Syllables)
}

func TestCliticsUnstressed(t *testing.T) {
	for _, word := range []string{"el", "de", "kon", "poɾ", "y"} {
		got, err := Syllabify(word, Options{Exceptions: 2, IPA: true})
		require.NoError(t, err)
		assert.True(t, got.Unstressed, word)
	}

	got, err := Syllabify("sol", Options{Exceptions: 2})
	require.NoError(t, err)
	assert.False(t, got.Unstressed)

	got, err = Syllabify("el", Options{Exceptions: 1})
	require.NoError(t, err)
	assert.False(t, got.Unstressed)
}

func TestFromEnd(t *testing.T) {
	got, err := Syllabify("rápida", Options{})
	require.NoError(t, err)
	assert.Equal(t, -3, got.FromEnd())
}

func TestEmptyWord(t *testing.T) {
	for _, word := range []string{"", "   "} {
		_, err := Syllabify(word, Options{})
		require.Error(t, err)

		var emptyErr *EmptySyllableError
		assert.True(t, errors.As(err, &emptyErr))
	}
}

func TestSyllablesReconstructWord(t *testing.T) {
	words := []string{
		"murciélago", "electroencefalograma", "paraguas", "averigüéis",
		"anticonstitucional", "huevo", "oía", "instrumento", "tʃuletón",
		"ʝeɾno", "abstracto", "perspicaz", "xx", "océano",
	}

	for _, word := range words {
		for _, ipa := range []bool{false, true} {
			got, err := Syllabify(word, Options{Exceptions: 1, IPA: ipa})
			require.NoError(t, err)
			require.NotEmpty(t, got.Syllables)
			assert.Equal(t, word, strings.Join(got.Syllables, ""))
			assert.GreaterOrEqual(t, got.Stress, 0)
			assert.Less(t, got.Stress, len(got.Syllables))
		}
	}
}
