package textmine

// A Document is one unit of a Corpus: a single paragraph, line, or
// sentence of the source text, depending on how the Corpus was split.
// Documents are identified by their position in the Corpus and are
// never mutated in place; every pipeline stage produces a fresh copy.
type Document string

// A Corpus is an ordered collection of Documents under analysis. Its
// order is fixed at creation time and preserved by every stage.
type Corpus []Document

// Language represents supported stop-word languages. The values are
// ISO 639-1 codes, as expected by the stop-word dictionaries.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
	German  Language = "de"
)

// SentimentLabel classifies a term's sentiment.
type SentimentLabel string

const (
	Positive SentimentLabel = "positive"
	Negative SentimentLabel = "negative"
)

// A TermCount pairs a term with its total occurrence count across the
// whole Corpus.
type TermCount struct {
	Term  string
	Count int
}

// A FrequencyTable holds per-term totals, sorted descending by count.
// Ties keep the order in which the terms were first encountered, so
// the table is deterministic for a given Corpus.
type FrequencyTable []TermCount

// Count returns the total for term, or zero if absent.
func (ft FrequencyTable) Count(term string) int {
	for _, tc := range ft {
		if tc.Term == term {
			return tc.Count
		}
	}
	return 0
}

// Total returns the sum of all counts in the table. It equals the
// number of filtered tokens in the Corpus the table was derived from.
func (ft FrequencyTable) Total() int {
	total := 0
	for _, tc := range ft {
		total += tc.Count
	}
	return total
}

// Top returns the first n rows, or the whole table if it is shorter.
func (ft FrequencyTable) Top(n int) FrequencyTable {
	if n > len(ft) {
		n = len(ft)
	}
	if n < 0 {
		n = 0
	}
	return ft[:n]
}

// A TermCorrelation pairs a term with its Pearson correlation against
// a target term's per-document occurrence vector.
type TermCorrelation struct {
	Term        string
	Correlation float64
}

// A SentimentEntry is one row of a sentiment join: a term present in
// both the FrequencyTable and the lexicon.
type SentimentEntry struct {
	Term  string
	Count int            // Corpus frequency of the term.
	Label SentimentLabel // Lexicon label, or sign-derived label.
	Score int            // Signed lexicon score; zero for label lexicons.
}

// A SentimentSummary aggregates a sentiment join. PositiveTotal and
// NegativeTotal are both magnitudes (NegativeTotal is never negative),
// so Net == PositiveTotal - NegativeTotal holds for every lexicon
// variant. An empty join yields all-zero totals and a zero Net.
type SentimentSummary struct {
	Rows          []SentimentEntry
	PositiveTotal int
	NegativeTotal int
	Net           int
}
