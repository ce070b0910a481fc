package services

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.txt")
	content := "Jane Doe\n10 years at Acme Corp.\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := NewTextExtractor().ExtractText(path)
	if err != nil {
		t.Fatalf("ExtractText returned error: %v", err)
	}
	if got != content {
		t.Errorf("ExtractText = %q, want %q", got, content)
	}
}

func TestExtractUnsupportedType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.png")
	if err := os.WriteFile(path, []byte{0x89, 0x50, 0x4e, 0x47}, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := NewTextExtractor().ExtractText(path)
	if err != nil {
		t.Fatalf("unsupported type should not error, got: %v", err)
	}
	if got != "" {
		t.Errorf("unsupported type should yield no text, got %q", got)
	}
}

func TestExtractMissingFile(t *testing.T) {
	_, err := NewTextExtractor().ExtractText("/nonexistent/cv.pdf")
	if err == nil {
		t.Error("missing file should return an error")
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  a  \n\n\n  b  ", "a\nb"},
		{"", ""},
		{"single", "single"},
	}
	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.want {
			t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
