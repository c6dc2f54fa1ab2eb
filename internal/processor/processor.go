package processor

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"codeberg.org/snonux/fonemas"
	"codeberg.org/snonux/fonemas/internal"
	"codeberg.org/snonux/fonemas/internal/anki"
	"codeberg.org/snonux/fonemas/internal/batch"
	"codeberg.org/snonux/fonemas/internal/cli"
	"codeberg.org/snonux/fonemas/internal/explain"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Transcription is a transcribed sentence with its optional batch note
type Transcription struct {
	*fonemas.Result
	Note string `json:"note,omitempty"`
}

// Processor handles the main sentence processing logic
type Processor struct {
	flags     *cli.Flags
	opts      *fonemas.Options
	out       io.Writer
	explainer explain.Provider

	csvWriter *csv.Writer
	results   []Transcription
}

// NewProcessor creates a new sentence processor writing results to out
func NewProcessor(flags *cli.Flags, opts *fonemas.Options, out io.Writer) (*Processor, error) {
	if opts == nil {
		opts = fonemas.DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	switch flags.Format {
	case FormatText, FormatJSON, FormatCSV:
	default:
		return nil, fmt.Errorf("invalid output format %q: must be text, json or csv", flags.Format)
	}
	return &Processor{flags: flags, opts: opts, out: out}, nil
}

// SetExplainer sets the provider used for --explain. Without one, it is
// created from the configuration on first use.
func (p *Processor) SetExplainer(provider explain.Provider) {
	p.explainer = provider
}

// Results returns the transcriptions processed so far
func (p *Processor) Results() []Transcription {
	return p.results
}

// ProcessSentence transcribes a single sentence from the command line
func (p *Processor) ProcessSentence(ctx context.Context, sentence string) error {
	result, err := fonemas.Transcribe(sentence, p.opts)
	if err != nil {
		return fmt.Errorf("failed to transcribe %q: %w", sentence, err)
	}

	t := Transcription{Result: result}
	if err := p.emit(t); err != nil {
		return err
	}
	p.results = append(p.results, t)

	if p.flags.Explain {
		return p.explain(ctx, t)
	}
	return nil
}

// ProcessBatch transcribes all sentences of the batch file in parallel and
// prints the results in file order
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no sentences found in %s", p.flags.BatchFile)
	}

	results, err := fonemas.TranscribeAll(ctx, batch.Sentences(entries), p.opts, p.flags.Workers)
	if err != nil {
		return fmt.Errorf("failed to transcribe batch: %w", err)
	}

	emptyCount := 0
	explainErrors := 0
	for i, result := range results {
		t := Transcription{Result: result, Note: entries[i].Note}
		if result.Phonology.Empty() {
			slog.Warn("Sentence has nothing to transcribe", "line", entries[i].Line, "sentence", entries[i].Sentence)
			emptyCount++
		}
		if err := p.emit(t); err != nil {
			return err
		}
		p.results = append(p.results, t)

		if p.flags.Explain && !result.Phonology.Empty() {
			if err := p.explain(ctx, t); err != nil {
				slog.Warn("Failed to explain sentence", "line", entries[i].Line, "error", err)
				explainErrors++
			}
		}
	}

	if p.flags.Format == FormatText {
		fmt.Fprintf(p.out, "\n=== Batch Processing Summary ===\n")
		fmt.Fprintf(p.out, "Total sentences: %d\n", len(results))
		fmt.Fprintf(p.out, "Transcribed: %d\n", len(results)-emptyCount)
		if emptyCount > 0 {
			fmt.Fprintf(p.out, "Empty: %d\n", emptyCount)
		}
		if explainErrors > 0 {
			fmt.Fprintf(p.out, "Explanation errors: %d\n", explainErrors)
		}
		fmt.Fprintf(p.out, "================================\n")
	}
	return nil
}

// Flush writes any buffered output
func (p *Processor) Flush() error {
	if p.csvWriter == nil {
		return nil
	}
	p.csvWriter.Flush()
	return p.csvWriter.Error()
}

func (p *Processor) emit(t Transcription) error {
	switch p.flags.Format {
	case FormatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	case FormatCSV:
		if p.csvWriter == nil {
			p.csvWriter = csv.NewWriter(p.out)
			if err := p.csvWriter.Write([]string{"sentence", "phonology", "phonetics", "sampa", "syllables", "note"}); err != nil {
				return fmt.Errorf("failed to write CSV header: %w", err)
			}
		}
		if err := p.csvWriter.Write(record(t)); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	default:
		writeText(p.out, t)
	}
	return nil
}

func record(t Transcription) []string {
	return []string{
		t.Sentence,
		t.Phonology.Sentence(),
		t.Phonetics.Sentence(),
		t.SAMPA.Sentence(),
		t.Phonetics.Hyphenated(),
		t.Note,
	}
}

func writeText(w io.Writer, t Transcription) {
	if t.Phonology.Empty() {
		fmt.Fprintf(w, "\n%q: nothing to transcribe\n", t.Sentence)
		return
	}
	fmt.Fprintf(w, "\nSentence:  %s\n", t.Sentence)
	if t.Note != "" {
		fmt.Fprintf(w, "Note:      %s\n", t.Note)
	}
	fmt.Fprintf(w, "Phonology: /%s/\n", t.Phonology.Sentence())
	fmt.Fprintf(w, "           %s\n", t.Phonology.Hyphenated())
	fmt.Fprintf(w, "Phonetics: [%s]\n", t.Phonetics.Sentence())
	fmt.Fprintf(w, "           %s\n", t.Phonetics.Hyphenated())
	fmt.Fprintf(w, "SAMPA:     %s\n", t.SAMPA.Sentence())
	fmt.Fprintf(w, "           %s\n", t.SAMPA.Hyphenated())
}

func (p *Processor) explain(ctx context.Context, t Transcription) error {
	if p.explainer == nil {
		provider, err := explain.NewProvider(cli.ExplainConfig())
		if err != nil {
			return fmt.Errorf("failed to create explanation provider: %w", err)
		}
		p.explainer = provider
	}

	slog.Debug("Requesting explanation", "provider", p.explainer.Name(), "sentence", t.Sentence)
	text, err := p.explainer.Explain(ctx, explain.Request{
		Sentence:  t.Sentence,
		Phonology: t.Phonology.Sentence(),
		Phonetics: t.Phonetics.Sentence(),
		SAMPA:     t.SAMPA.Sentence(),
	})
	if err != nil {
		return fmt.Errorf("failed to explain %q: %w", t.Sentence, err)
	}

	if p.flags.Format == FormatText {
		fmt.Fprintf(p.out, "\nExplanation (%s):\n%s\n", p.explainer.Name(), text)
	}

	if p.flags.OutputDir != "" {
		dir := filepath.Join(p.flags.OutputDir, internal.SanitizeFilename(t.Sentence))
		path, err := explain.SaveExplanation(dir, t.Sentence, text)
		if err != nil {
			return err
		}
		slog.Info("Saved explanation", "path", path)
	}
	return nil
}

// GenerateAnkiFile generates the Anki import file from the processed
// transcriptions and returns the output path
func (p *Processor) GenerateAnkiFile() (string, error) {
	if len(p.results) == 0 {
		return "", fmt.Errorf("no transcriptions to export")
	}
	outputDir := p.flags.OutputDir
	if outputDir == "" {
		outputDir = cli.DefaultOutputDir()
	}

	csvPath := filepath.Join(outputDir, "anki_import.csv")
	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     csvPath,
		IncludeHeaders: true,
	})
	for _, t := range p.results {
		if t.Phonology.Empty() {
			continue
		}
		gen.AddCard(anki.Card{
			Sentence:  t.Sentence,
			Phonology: t.Phonology.Sentence(),
			Phonetics: t.Phonetics.Sentence(),
			SAMPA:     t.SAMPA.Sentence(),
			Syllables: t.Phonetics.Hyphenated(),
			Notes:     t.Note,
		})
	}

	var outputPath string
	if p.flags.AnkiCSV {
		outputPath = csvPath
		if err := gen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		outputPath = filepath.Join(outputDir, fmt.Sprintf("%s.apkg", internal.SanitizeFilename(p.flags.DeckName)))
		if err := gen.GenerateAPKG(outputPath, p.flags.DeckName); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
	}

	total, withNotes := gen.Stats()
	slog.Info("Generated Anki cards", "cards", total, "with_notes", withNotes, "path", outputPath)
	return outputPath, nil
}
