package textmine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewCorpus(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Corpus
	}{
		{
			name:     "one document per non-empty line",
			text:     "Freedom and justice for all.\n\nWe have a dream of freedom.\n",
			expected: Corpus{"freedom and justice for all.", "we have a dream of freedom."},
		},
		{
			name:     "lowercases every character",
			text:     "FREEDOM Now",
			expected: Corpus{"freedom now"},
		},
		{
			name:     "typographic apostrophes become ASCII",
			text:     "you’ll see",
			expected: Corpus{"you'll see"},
		},
		{
			name:     "empty input yields empty corpus",
			text:     "",
			expected: nil,
		},
		{
			name:     "whitespace-only input yields empty corpus",
			text:     "  \n\t\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			corpus := NewCorpus(tt.text)
			if len(corpus) != len(tt.expected) {
				t.Fatalf("expected %d documents, got %d", len(tt.expected), len(corpus))
			}
			for i := range corpus {
				if corpus[i] != tt.expected[i] {
					t.Errorf("document %d: expected %q, got %q", i, tt.expected[i], corpus[i])
				}
			}
		})
	}
}

func TestSplitParagraphs(t *testing.T) {
	text := "First line\nstill first block.\n\nSecond block.\n\n\n"
	units := SplitParagraphs(text)

	expected := []string{"First line still first block.", "Second block."}
	if len(units) != len(expected) {
		t.Fatalf("expected %d paragraphs, got %d: %v", len(expected), len(units), units)
	}
	for i := range units {
		if units[i] != expected[i] {
			t.Errorf("paragraph %d: expected %q, got %q", i, expected[i], units[i])
		}
	}
}

func TestSentenceSplitter(t *testing.T) {
	split, err := SentenceSplitter()
	if err != nil {
		t.Fatalf("failed to create sentence splitter: %v", err)
	}

	corpus := NewCorpus("Freedom rings today. We march tomorrow.", UsingSplitter(split))
	if len(corpus) != 2 {
		t.Fatalf("expected 2 sentence documents, got %d: %v", len(corpus), corpus)
	}
	if !strings.Contains(string(corpus[0]), "freedom") {
		t.Errorf("first sentence should contain 'freedom', got %q", corpus[0])
	}
	if !strings.Contains(string(corpus[1]), "march") {
		t.Errorf("second sentence should contain 'march', got %q", corpus[1])
	}
}

func TestReadCorpus(t *testing.T) {
	corpus, err := ReadCorpus(strings.NewReader("One.\nTwo.\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(corpus) != 2 {
		t.Errorf("expected 2 documents, got %d", len(corpus))
	}
}

func TestLoadCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speech.txt")
	if err := os.WriteFile(path, []byte("Freedom now.\nJustice soon.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	corpus, err := LoadCorpus(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(corpus) != 2 {
		t.Errorf("expected 2 documents, got %d", len(corpus))
	}

	if _, err := LoadCorpus(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
