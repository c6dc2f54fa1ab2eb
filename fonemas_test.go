package fonemas

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/fonemas/internal/phonology"
	"codeberg.org/snonux/fonemas/internal/sampa"
)

func TestTranscribeCasa(t *testing.T) {
	r, err := Transcribe("Casa", nil)
	require.NoError(t, err)

	assert.Equal(t, "casa", r.Sentence)
	assert.Equal(t, []string{"ˈka", "sa"}, r.Phonology.Syllables)
	assert.Equal(t, []string{"ˈka", "sa"}, r.Phonetics.Syllables)
	assert.Equal(t, []string{`"kasa`}, r.SAMPA.Words)
}

func TestTranscribeAccentedStress(t *testing.T) {
	r, err := Transcribe("ángel", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"ˈan", "xel"}, r.Phonology.Syllables)
}

func TestTranscribeMente(t *testing.T) {
	r, err := Transcribe("rápidamente", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"ˈra", "pi", "da", "ˌmen", "te"}, r.Phonology.Syllables)
	assert.Equal(t, []string{"ˈrapiðaˌmente"}, r.Phonetics.Words)
	assert.Equal(t, []string{`"rapiDa%mente`}, r.SAMPA.Words)
}

func TestTranscribeNasalBlocksSpirantization(t *testing.T) {
	r, err := Transcribe("un gato", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"ˈuŋ", "ˈgato"}, r.Phonetics.Words)
	assert.Equal(t, []string{`"uN`, `"gato`}, r.SAMPA.Words)
}

func TestTranscribeClosedVowelOpensSyllable(t *testing.T) {
	tests := []struct {
		sentence  string
		syllables []string
	}{
		{"cacahuete", []string{"ka", "ka", "ˈwe", "te"}},
		{"ahuecar", []string{"a", "we", "ˈkaɾ"}},
		{"rehuir", []string{"re", "ˈwiɾ"}},
	}

	for _, tt := range tests {
		t.Run(tt.sentence, func(t *testing.T) {
			r, err := Transcribe(tt.sentence, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.syllables, r.Phonology.Syllables)
			assert.Len(t, r.Phonetics.Syllables, len(tt.syllables))
		})
	}
}

func TestTranscribeRhotics(t *testing.T) {
	r, err := Transcribe("perro pero", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"ˈpero", "ˈpeɾo"}, r.Phonology.Words)
	assert.Equal(t, []string{`"perro`, `"pero`}, r.SAMPA.Words)
}

func TestTranscribeOptions(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		opts     *Options
		want     []string
	}{
		{"epenthesis", "stop", &Options{Exceptions: 1, StressGlyph: `"`, Epenthesis: true}, []string{"esˈtop"}},
		{"aspiration", "hola", &Options{Exceptions: 1, StressGlyph: `"`, Aspiration: true}, []string{"ˈhola"}},
		{"monosyllables stressed by default", "el sol", &Options{Exceptions: 1, StressGlyph: `"`}, []string{"ˈel", "ˈsol"}},
		{"mono", "el sol", &Options{Exceptions: 1, StressGlyph: `"`, Mono: true}, []string{"el", "sol"}},
		{"clitics", "el sol", &Options{Exceptions: 2, StressGlyph: `"`}, []string{"el", "ˈsol"}},
		{"rehash", "ansioso", &Options{Exceptions: 1, StressGlyph: `"`, Rehash: true}, []string{"ansˈjoso"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Transcribe(tt.sentence, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Phonology.Words)
		})
	}
}

func TestTranscribeStressGlyph(t *testing.T) {
	opts := DefaultOptions()
	opts.StressGlyph = "'"

	r, err := Transcribe("casa", opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"'kasa"}, r.SAMPA.Words)
}

func TestTranscribeEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := Transcribe(in, nil)
		assert.True(t, errors.Is(err, ErrEmptyInput))
	}
}

func TestTranscribePunctuationOnly(t *testing.T) {
	r, err := Transcribe("¡¿...?!", nil)
	require.NoError(t, err)
	assert.Empty(t, r.Sentence)
	assert.True(t, r.Phonology.Empty())
	assert.True(t, r.SAMPA.Empty())
}

func TestTranscribeInvalidOptions(t *testing.T) {
	_, err := Transcribe("casa", &Options{Exceptions: 3, StressGlyph: `"`})
	assert.Error(t, err)

	_, err = Transcribe("casa", &Options{Exceptions: 1})
	assert.Error(t, err)
}

func TestTranscribeUnusualInput(t *testing.T) {
	inputs := []string{
		"año 2024",
		"дом и casa",
		"e-mail: foo@bar.com",
		"¡¡¡Hola!!! ¿¿Qué tal??",
		"b c d f g h j k l m n ñ p q r s t v w x z",
		"Crème brûlée",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			r, err := Transcribe(in, nil)
			require.NoError(t, err)
			assert.Len(t, r.Phonetics.Syllables, len(r.Phonology.Syllables))
		})
	}
}

func TestPipelineInvariants(t *testing.T) {
	sentences := []string{
		"El murciélago hindú comía feliz cardillo y kiwi",
		"La cigüeña tocaba el saxofón detrás del palenque de paja",
		"Rápidamente llegó el tren de Madrid a Barcelona",
		"Me gusta la guitarra y el agua de la fuente",
		"Hoy hay muy buen ambiente en el jardín",
		"Un yunque enorme y un gnomo",
	}

	for _, s := range sentences {
		t.Run(s, func(t *testing.T) {
			r, err := Transcribe(s, nil)
			require.NoError(t, err)

			for _, values := range []Values{r.Phonology, r.Phonetics} {
				groups := values.Groups()
				require.Len(t, groups, len(values.Words))
				for i, word := range values.Words {
					assert.Equal(t, 1, strings.Count(word, phonology.Primary), word)
					assert.Equal(t, word, strings.Join(groups[i], ""))
				}
			}
			assert.Len(t, r.SAMPA.Words, len(r.Phonetics.Words))
			for _, w := range r.SAMPA.Words {
				for _, c := range w {
					assert.Less(t, c, rune(128), w)
				}
			}
		})
	}
}

func TestSAMPAErrorIsExposed(t *testing.T) {
	var unmapped *sampa.UnmappedSymbolError
	_, err := sampa.Convert("ʔ", DefaultStressGlyph)
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &unmapped))
}

func TestTranscribeAll(t *testing.T) {
	sentences := []string{"casa", "perro", "un gato", "rápidamente", "el sol"}

	results, err := TranscribeAll(context.Background(), sentences, nil, 3)
	require.NoError(t, err)
	require.Len(t, results, len(sentences))

	for i, s := range sentences {
		want, err := Transcribe(s, nil)
		require.NoError(t, err)
		assert.Equal(t, want, results[i])
	}
}

func TestTranscribeAllStopsOnError(t *testing.T) {
	_, err := TranscribeAll(context.Background(), []string{"casa", " ", "perro"}, nil, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestTranscribeAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := TranscribeAll(ctx, []string{"casa"}, nil, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
