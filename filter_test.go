package textmine

import (
	"reflect"
	"strings"
	"testing"
)

func TestStages(t *testing.T) {
	tests := []struct {
		name     string
		stage    Stage
		input    Document
		expected Document
	}{
		{"digits removed", RemoveNumbers(), "in 1963 we march", "in  we march"},
		{"digits inside words removed", RemoveNumbers(), "a1b2c3", "abc"},
		{"punctuation removed", RemovePunctuation(), "freedom, justice!", "freedom justice"},
		{"apostrophes removed", RemovePunctuation(), "dream's end", "dreams end"},
		{"whitespace collapsed", CollapseWhitespace(), "  a   b\t c ", "a b c"},
		{"custom terms removed", RemoveTerms("applause", "cheering"), "freedom applause rings", "freedom rings"},
		{"custom removal keeps empty config inert", RemoveTerms(), "freedom rings", "freedom rings"},
		{"supplementary words removed", RemoveSupplementaryStopWords(), "freedom however rings", "freedom  rings"},
		{"supplementary contractions matched whole", RemoveSupplementaryStopWords(), "you'll march", " march"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.stage.Apply(tt.input)
			if got != tt.expected {
				t.Errorf("%s: expected %q, got %q", tt.stage.Name, tt.expected, got)
			}
		})
	}
}

func TestRemoveStopWords(t *testing.T) {
	stage := RemoveStopWords(English)
	got := strings.Fields(string(stage.Apply("we have a dream of freedom")))

	for _, tok := range got {
		if tok == "a" || tok == "of" || tok == "the" {
			t.Errorf("stop word %q survived filtering: %v", tok, got)
		}
	}
	found := false
	for _, tok := range got {
		if tok == "dream" {
			found = true
		}
	}
	if !found {
		t.Errorf("content word 'dream' should survive, got %v", got)
	}
}

func TestPipelineOrder(t *testing.T) {
	p := NewPipeline()
	expected := []string{
		"remove_numbers",
		"remove_stopwords",
		"remove_supplementary_stopwords",
		"remove_punctuation",
		"collapse_whitespace",
		"remove_custom_terms",
	}
	if !reflect.DeepEqual(p.Stages(), expected) {
		t.Errorf("stage order mismatch:\nexpected %v\ngot      %v", expected, p.Stages())
	}
}

func TestPipelineClean(t *testing.T) {
	corpus := NewCorpus("Freedom and justice for all.\nWe have a dream of freedom.")
	p := NewPipeline()

	cleaned := p.Clean(corpus)
	if len(cleaned) != len(corpus) {
		t.Fatalf("document count changed: %d -> %d", len(corpus), len(cleaned))
	}

	for i, doc := range cleaned {
		for _, tok := range strings.Fields(string(doc)) {
			if strings.ContainsAny(tok, ".,!?'0123456789") {
				t.Errorf("document %d: token %q still carries punctuation or digits", i, tok)
			}
		}
	}

	joined := string(cleaned[0]) + " " + string(cleaned[1])
	if !strings.Contains(joined, "freedom") || !strings.Contains(joined, "justice") || !strings.Contains(joined, "dream") {
		t.Errorf("content words missing from cleaned corpus: %v", cleaned)
	}
}

// Contractions must be filtered before punctuation removal strips the
// apostrophe; otherwise "you'll" degrades to "youll" and matches no
// dictionary entry.
func TestPipelineContractionOrdering(t *testing.T) {
	corpus := Corpus{"you'll march to freedom"}
	cleaned := NewPipeline().Clean(corpus)

	got := string(cleaned[0])
	if strings.Contains(got, "youll") {
		t.Errorf("contraction survived as %q in %q: punctuation ran before stop-word filtering", "youll", got)
	}
	if !strings.Contains(got, "march") || !strings.Contains(got, "freedom") {
		t.Errorf("content words lost: %q", got)
	}
}

func TestPipelineEmptyDocumentsKept(t *testing.T) {
	corpus := Corpus{"the of and", "freedom", "42", ""}
	cleaned := NewPipeline().Clean(corpus)

	if len(cleaned) != 4 {
		t.Fatalf("expected 4 documents, got %d", len(cleaned))
	}
	if cleaned[0] != "" {
		t.Errorf("all-stop-word document should be empty, got %q", cleaned[0])
	}
	if cleaned[1] != "freedom" {
		t.Errorf("expected %q, got %q", "freedom", cleaned[1])
	}
	if cleaned[2] != "" {
		t.Errorf("all-digit document should be empty, got %q", cleaned[2])
	}
	if cleaned[3] != "" {
		t.Errorf("empty document should stay empty, got %q", cleaned[3])
	}
}

func TestPipelineIdempotent(t *testing.T) {
	corpus := NewCorpus("Freedom and justice for all in 1963.\nWe have a dream of freedom, don't we?")
	p := NewPipeline(WithCustomStopWords("applause"))

	once := p.Clean(corpus)
	twice := p.Clean(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("pipeline is not a fixed point:\nonce  %v\ntwice %v", once, twice)
	}
}

func TestPipelineCustomStopWords(t *testing.T) {
	corpus := Corpus{"freedom applause rings applause"}
	cleaned := NewPipeline(WithCustomStopWords("applause")).Clean(corpus)

	if strings.Contains(string(cleaned[0]), "applause") {
		t.Errorf("custom term survived: %q", cleaned[0])
	}
}

func BenchmarkPipelineClean(b *testing.B) {
	corpus := NewCorpus(strings.Repeat("Freedom and justice for all in 1963.\nWe have a dream of freedom.\n", 50))
	p := NewPipeline()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Clean(corpus)
	}
}
