package textmine

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A SplitFunc divides raw text into the units that become Documents.
type SplitFunc func(text string) []string

// A CorpusOpt represents a setting that changes how a Corpus is built.
//
// For example, it might split on sentence boundaries instead of lines:
//
//	splitter, _ := textmine.SentenceSplitter()
//	corpus := textmine.NewCorpus(text, textmine.UsingSplitter(splitter))
type CorpusOpt func(opts *corpusOpts)

type corpusOpts struct {
	splitter SplitFunc
}

// UsingSplitter specifies the SplitFunc used to divide the raw text
// into Documents. The default splits on line breaks, keeping each
// non-empty line as one Document.
func UsingSplitter(split SplitFunc) CorpusOpt {
	return func(opts *corpusOpts) {
		opts.splitter = split
	}
}

// lowercaser performs Unicode-correct case folding for all Documents.
var lowercaser = cases.Lower(language.Und)

// sanitizer maps typographic quote characters to their ASCII forms so
// contraction forms ("you'll", "we've") match stop-word dictionary
// entries that expect the apostrophe-joined spelling.
var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")

// SplitLines returns each non-empty line of text as one unit.
func SplitLines(text string) []string {
	var units []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			units = append(units, line)
		}
	}
	return units
}

// SplitParagraphs returns blank-line separated blocks as units, with
// internal line breaks flattened to spaces.
func SplitParagraphs(text string) []string {
	var units []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.Join(strings.Fields(block), " ")
		if block != "" {
			units = append(units, block)
		}
	}
	return units
}

// SentenceSplitter returns a SplitFunc backed by a Punkt sentence
// tokenizer trained on English. Loading the embedded training data is
// the only failure mode.
func SentenceSplitter() (SplitFunc, error) {
	segmenter, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load sentence tokenizer: %w", err)
	}
	return func(text string) []string {
		var units []string
		for _, sent := range segmenter.Tokenize(text) {
			if strings.TrimSpace(sent.Text) != "" {
				units = append(units, sent.Text)
			}
		}
		return units
	}, nil
}

// NewCorpus splits raw text into Documents and normalizes their case.
// Empty input yields an empty Corpus; there are no error conditions.
func NewCorpus(text string, opts ...CorpusOpt) Corpus {
	base := corpusOpts{splitter: SplitLines}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}

	units := base.splitter(text)
	corpus := make(Corpus, 0, len(units))
	for _, unit := range units {
		unit = sanitizer.Replace(unit)
		corpus = append(corpus, Document(lowercaser.String(unit)))
	}
	return corpus
}

// ReadCorpus reads r fully into memory and builds a Corpus from it.
func ReadCorpus(r io.Reader, opts ...CorpusOpt) (Corpus, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading corpus: %w", err)
	}
	return NewCorpus(string(raw), opts...), nil
}

// LoadCorpus reads the named file and builds a Corpus from it. A
// missing or unreadable file is fatal to the run: the error is
// returned before any pipeline stage sees the text.
func LoadCorpus(path string, opts ...CorpusOpt) (Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening corpus file: %w", err)
	}
	defer f.Close()
	return ReadCorpus(f, opts...)
}
