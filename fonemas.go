package fonemas

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"codeberg.org/snonux/fonemas/internal/normalize"
	"codeberg.org/snonux/fonemas/internal/phonetics"
	"codeberg.org/snonux/fonemas/internal/phonology"
	"codeberg.org/snonux/fonemas/internal/sampa"
)

// ErrEmptyInput is returned for an empty or whitespace-only sentence.
var ErrEmptyInput = errors.New("empty input sentence")

// DefaultStressGlyph marks primary stress in the SAMPA output.
const DefaultStressGlyph = `"`

// Values holds the words of a transcribed sentence and the flat list of
// their syllables.
type Values = phonology.Values

// Options configures a transcription.
type Options struct {
	// Mono turns on the unstressed-monosyllable mode: one-syllable words
	// lose their stress mark. It is off by default, so every word keeps one
	// primary stress, monosyllables included.
	Mono bool `json:"mono" yaml:"mono"`
	// Exceptions selects the syllabifier's exception level (0, 1 or 2).
	Exceptions int `json:"exceptions" yaml:"exceptions"`
	// Epenthesis prefixes "e" to words starting with "s" plus consonant.
	Epenthesis bool `json:"epenthesis" yaml:"epenthesis"`
	// Aspiration keeps a word-initial "h" as an aspirated consonant.
	Aspiration bool `json:"aspiration" yaml:"aspiration"`
	// Rehash moves a lone onset consonant before a glide back to a closed
	// preceding syllable.
	Rehash bool `json:"rehash" yaml:"rehash"`
	// StressGlyph is the SAMPA primary stress mark.
	StressGlyph string `json:"stress_glyph" yaml:"stress_glyph"`
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() *Options {
	return &Options{
		Exceptions:  1,
		StressGlyph: DefaultStressGlyph,
	}
}

// Validate checks the option values.
func (o *Options) Validate() error {
	if o.Exceptions < 0 || o.Exceptions > 2 {
		return fmt.Errorf("invalid exceptions level %d: must be 0, 1 or 2", o.Exceptions)
	}
	if o.StressGlyph == "" {
		return fmt.Errorf("stress glyph must not be empty")
	}
	return nil
}

func (o *Options) phonologyOptions() phonology.Options {
	return phonology.Options{
		Mono:       o.Mono,
		Exceptions: o.Exceptions,
		Aspiration: o.Aspiration,
		Rehash:     o.Rehash,
	}
}

// Result is the transcription of one sentence.
type Result struct {
	Sentence  string `json:"sentence"`
	Phonology Values `json:"phonology"`
	Phonetics Values `json:"phonetics"`
	SAMPA     Values `json:"sampa"`
}

// Transcribe normalizes sentence and computes its phonological, phonetic and
// SAMPA transcriptions. A nil opts uses DefaultOptions. A sentence made of
// punctuation only yields an empty result.
func Transcribe(sentence string, opts *Options) (*Result, error) {
	if strings.TrimSpace(sentence) == "" {
		return nil, ErrEmptyInput
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{Sentence: normalize.Normalize(sentence, opts.Epenthesis)}
	slog.Debug("Normalized sentence", "input", sentence, "sentence", result.Sentence)
	if result.Sentence == "" {
		return result, nil
	}

	var err error
	result.Phonology, err = phonology.Transcribe(result.Sentence, opts.phonologyOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to compute phonology of %q: %w", result.Sentence, err)
	}
	slog.Debug("Phonology", "words", result.Phonology.Words, "syllables", result.Phonology.Syllables)

	result.Phonetics = phonetics.ToPhonetics(result.Phonology)
	slog.Debug("Phonetics", "words", result.Phonetics.Words, "syllables", result.Phonetics.Syllables)

	result.SAMPA, err = sampa.ToASCII(result.Phonetics, opts.StressGlyph)
	if err != nil {
		return nil, fmt.Errorf("failed to transliterate %q: %w", result.Sentence, err)
	}
	slog.Debug("SAMPA", "words", result.SAMPA.Words)

	return result, nil
}

// TranscribeAll transcribes independent sentences concurrently with at most
// workers goroutines. Results keep the input order. The first error stops the
// remaining work and is returned.
func TranscribeAll(ctx context.Context, sentences []string, opts *Options, workers int) ([]*Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]*Result, len(sentences))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, s := range sentences {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := Transcribe(s, opts)
			if err != nil {
				return fmt.Errorf("sentence %d: %w", i+1, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
