package textmine

import (
	"context"
	"fmt"
	"os"
	"time"
)

// An AnalysisOpt represents a setting that changes the analysis run.
//
// For example, it might supply terms to exclude from the cleaned text:
//
//	a, err := textmine.NewAnalysis(text, textmine.ExcludingTerms("applause"))
type AnalysisOpt func(opts *analysisOpts)

type analysisOpts struct {
	splitter SplitFunc // How raw text becomes Documents
	pipeline *Pipeline
	language Language
	custom   []string
	ctx      context.Context // Context for cancellation and timeouts
	timeout  time.Duration
	progress func(progress float64) // Progress reporting callback
}

// WithSplitter sets how the raw text is divided into Documents.
func WithSplitter(split SplitFunc) AnalysisOpt {
	return func(opts *analysisOpts) {
		opts.splitter = split
	}
}

// UsingPipeline replaces the standard cleaning pipeline entirely. It
// overrides WithStopLanguage and ExcludingTerms.
func UsingPipeline(p *Pipeline) AnalysisOpt {
	return func(opts *analysisOpts) {
		opts.pipeline = p
	}
}

// WithStopLanguage selects the stop-word dictionary language for the
// standard pipeline.
func WithStopLanguage(lang Language) AnalysisOpt {
	return func(opts *analysisOpts) {
		opts.language = lang
	}
}

// ExcludingTerms adds caller-specific terms to the pipeline's custom
// exclusion list.
func ExcludingTerms(terms ...string) AnalysisOpt {
	return func(opts *analysisOpts) {
		opts.custom = append(opts.custom, terms...)
	}
}

// WithContext sets the context for the analysis run.
func WithContext(ctx context.Context) AnalysisOpt {
	return func(opts *analysisOpts) {
		opts.ctx = ctx
	}
}

// WithTimeout sets a timeout for the analysis run.
func WithTimeout(timeout time.Duration) AnalysisOpt {
	return func(opts *analysisOpts) {
		opts.timeout = timeout
	}
}

// WithProgressCallback sets a progress reporting callback.
func WithProgressCallback(callback func(float64)) AnalysisOpt {
	return func(opts *analysisOpts) {
		opts.progress = callback
	}
}

// AnalysisMetadata records facts about a completed analysis run.
type AnalysisMetadata struct {
	Language         Language
	ProcessedAt      time.Time
	ProcessingTimeMs int64
	DocumentCount    int
	TermCount        int // Distinct terms after cleaning
	TokenCount       int // Total filtered tokens
}

// An Analysis holds the derived tables of one end-to-end run: the raw
// and cleaned Corpus, the term-document matrix, and the frequency
// table. The tables are built once and read-only afterwards; sentiment
// and correlation queries derive fresh results from them.
type Analysis struct {
	Text     string
	Metadata AnalysisMetadata

	corpus  Corpus
	cleaned Corpus
	matrix  *TermDocMatrix
	freq    FrequencyTable
}

var defaultAnalysisOpts = analysisOpts{
	splitter: SplitLines,
	language: English,
	ctx:      context.Background(),
	timeout:  30 * time.Second,
}

// NewAnalysis runs the full pipeline over text: split and normalize,
// clean, then aggregate. Each stage completes before the next begins,
// and the context is checked between stages.
func NewAnalysis(text string, opts ...AnalysisOpt) (*Analysis, error) {
	startTime := time.Now()

	base := defaultAnalysisOpts
	for _, applyOpt := range opts {
		applyOpt(&base)
	}

	ctx := base.ctx
	if base.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, base.timeout)
		defer cancel()
	}

	reportProgress := func(p float64) {
		if base.progress != nil {
			base.progress(p)
		}
	}

	a := Analysis{
		Text: text,
		Metadata: AnalysisMetadata{
			ProcessedAt: startTime,
			Language:    base.language,
		},
	}

	// Tokenize and normalize
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.corpus = NewCorpus(text, UsingSplitter(base.splitter))
	a.Metadata.DocumentCount = len(a.corpus)
	reportProgress(0.25)

	// Clean
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pipeline := base.pipeline
	if pipeline == nil {
		pipeline = NewPipeline(ForLanguage(base.language), WithCustomStopWords(base.custom...))
	}
	a.cleaned = pipeline.Clean(a.corpus)
	reportProgress(0.5)

	// Aggregate
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.matrix = BuildTermDocMatrix(a.cleaned)
	a.Metadata.TermCount = a.matrix.NumTerms()
	reportProgress(0.75)

	a.freq = a.matrix.Frequencies()
	a.Metadata.TokenCount = a.freq.Total()
	a.Metadata.ProcessingTimeMs = time.Since(startTime).Milliseconds()
	reportProgress(1.0)

	return &a, nil
}

// AnalyzeFile reads the named file fully into memory and analyzes it.
func AnalyzeFile(path string, opts ...AnalysisOpt) (*Analysis, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}
	return NewAnalysis(string(raw), opts...)
}

// Corpus returns the normalized, uncleaned Documents.
func (a *Analysis) Corpus() Corpus { return a.corpus }

// Cleaned returns the Documents after the filter pipeline.
func (a *Analysis) Cleaned() Corpus { return a.cleaned }

// Matrix returns the term-document matrix of the cleaned Corpus.
func (a *Analysis) Matrix() *TermDocMatrix { return a.matrix }

// Frequencies returns the frequency table, sorted descending by count.
func (a *Analysis) Frequencies() FrequencyTable { return a.freq }

// Correlations returns the terms whose per-document occurrence pattern
// correlates with term at or above threshold.
func (a *Analysis) Correlations(term string, threshold float64) []TermCorrelation {
	return a.matrix.Correlations(term, threshold)
}

// SentimentByLabel scores the analysis against a binary-label lexicon.
func (a *Analysis) SentimentByLabel(lexicon LabelLexicon) SentimentSummary {
	return ScoreByLabel(a.freq, lexicon)
}

// SentimentBySignedScore scores the analysis against a signed-score
// lexicon.
func (a *Analysis) SentimentBySignedScore(lexicon ScoreLexicon) SentimentSummary {
	return ScoreBySignedScore(a.freq, lexicon)
}

// SentimentByEmotion scores the analysis against a categorical
// lexicon, restricted to its polarity labels.
func (a *Analysis) SentimentByEmotion(lexicon EmotionLexicon) SentimentSummary {
	return ScoreByEmotion(a.freq, lexicon)
}
