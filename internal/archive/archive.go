package archive

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Dir archives dir into a timestamped sibling below "archive" and returns
// the new location. The archive name is derived from the base name of dir.
func Dir(dir string) (string, error) {
	return dirAt(dir, time.Now())
}

func dirAt(dir string, now time.Time) (string, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("output directory does not exist: %s", dir)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat output directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", dir)
	}

	clean := filepath.Clean(dir)
	archiveDir := filepath.Join(filepath.Dir(clean), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	base := filepath.Base(clean)
	target := filepath.Join(archiveDir, fmt.Sprintf("%s-%s", base, now.Format("20060102-150405")))
	if _, err := os.Stat(target); err == nil {
		target = filepath.Join(archiveDir, fmt.Sprintf("%s-%s", base, now.Format("20060102-150405.000000")))
	}

	if err := os.Rename(clean, target); err != nil {
		return "", fmt.Errorf("failed to archive output directory: %w", err)
	}

	slog.Info("Archived output directory", "from", clean, "to", target)
	return target, nil
}
