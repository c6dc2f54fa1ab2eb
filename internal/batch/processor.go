package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry represents a sentence with an optional note
type Entry struct {
	Sentence string
	Note     string
	// Line is the 1-based line number in the batch file
	Line int
}

// ReadBatchFile reads sentences from a file.
// Supports formats:
// - Sentence only: "El perro ladra."
// - With note: "El perro ladra. = the dog barks"
// Empty lines, lines starting with '#' and lines without a sentence are skipped.
func ReadBatchFile(filename string) ([]Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return entries, nil
}

// Parse reads batch entries from r
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		sentence, note := line, ""
		if before, after, found := strings.Cut(line, "="); found {
			sentence = strings.TrimSpace(before)
			note = strings.TrimSpace(after)
		}
		if sentence == "" {
			// Format: "= NOTE" has nothing to transcribe
			continue
		}

		entries = append(entries, Entry{Sentence: sentence, Note: note, Line: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Sentences returns the sentences of entries in order
func Sentences(entries []Entry) []string {
	sentences := make([]string, len(entries))
	for i, e := range entries {
		sentences[i] = e.Sentence
	}
	return sentences
}
