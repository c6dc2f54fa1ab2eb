package explain

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the name of a saved explanation
const FileName = "explanation.txt"

// SaveExplanation writes the explanation of sentence into dir
func SaveExplanation(dir, sentence, explanation string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	content := fmt.Sprintf("%s\n\n%s\n", sentence, explanation)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write explanation file: %w", err)
	}
	return path, nil
}
