package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadBatchFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []Entry
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name: "sentences with notes",
			fileContent: `El perro ladra = the dog barks
Un gato negro = a black cat`,
			want: []Entry{
				{Sentence: "El perro ladra", Note: "the dog barks", Line: 1},
				{Sentence: "Un gato negro", Note: "a black cat", Line: 2},
			},
		},
		{
			name: "mixed format",
			fileContent: `casa
perro = dog
rápidamente`,
			want: []Entry{
				{Sentence: "casa", Line: 1},
				{Sentence: "perro", Note: "dog", Line: 2},
				{Sentence: "rápidamente", Line: 3},
			},
		},
		{
			name:        "comments, blank lines and windows line endings",
			fileContent: "# vocabulary\r\n\r\n  casa  \r\n= orphan note\r\nperro =  \r\n",
			want: []Entry{
				{Sentence: "casa", Line: 3},
				{Sentence: "perro", Line: 5},
			},
		},
		{
			name:        "only the first equals sign splits",
			fileContent: "uno = one = 1",
			want: []Entry{
				{Sentence: "uno", Note: "one = 1", Line: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			tmpFile := filepath.Join(tmpDir, "batch.txt")
			if err := os.WriteFile(tmpFile, []byte(tt.fileContent), 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			got, err := ReadBatchFile(tmpFile)
			if err != nil {
				t.Fatalf("ReadBatchFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadBatchFile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReadBatchFile_NotFound(t *testing.T) {
	_, err := ReadBatchFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read batch file") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestSentences(t *testing.T) {
	entries := []Entry{{Sentence: "casa"}, {Sentence: "perro", Note: "dog"}}
	got := Sentences(entries)
	want := []string{"casa", "perro"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences() = %v, want %v", got, want)
	}
}
