package internal

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"el niño", "el_niño"},
		{"¿Qué tal?", "qué_tal"},
		{"  hola,   mundo  ", "hola_mundo"},
		{"pingüino-azul", "pingüino-azul"},
		{"...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilenameLength(t *testing.T) {
	got := SanitizeFilename(strings.Repeat("a", 200))
	if n := len([]rune(got)); n != maxFilenameRunes {
		t.Errorf("Expected %d runes, got %d", maxFilenameRunes, n)
	}
}

func TestGenerateCardID(t *testing.T) {
	id := GenerateCardID("la casa")
	parts := strings.Split(id, "_")
	if len(parts) != 2 {
		t.Fatalf("Expected timestamp_hash, got %q", id)
	}
	if len(parts[1]) != 8 {
		t.Errorf("Expected 8 hash characters, got %q", parts[1])
	}
	other := GenerateCardID("el perro")
	if strings.Split(other, "_")[1] == parts[1] {
		t.Error("Expected different hashes for different sentences")
	}
}
