package textmine

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// A TermDocMatrix holds occurrence counts of every term in every
// Document. Each term carries a dense vector over the document axis so
// the correlation engine can consume it directly; absent terms simply
// have no row. The matrix is derived once from a cleaned Corpus and is
// read-only afterwards.
type TermDocMatrix struct {
	terms   []string // first-encounter order
	index   map[string]int
	vectors [][]float64
	docs    int
}

// BuildTermDocMatrix counts term occurrences per Document. Terms are
// whitespace-delimited tokens of the cleaned Corpus.
func BuildTermDocMatrix(corpus Corpus) *TermDocMatrix {
	m := &TermDocMatrix{
		index: make(map[string]int),
		docs:  len(corpus),
	}
	for di, doc := range corpus {
		for _, term := range strings.Fields(string(doc)) {
			ti, seen := m.index[term]
			if !seen {
				ti = len(m.terms)
				m.index[term] = ti
				m.terms = append(m.terms, term)
				m.vectors = append(m.vectors, make([]float64, m.docs))
			}
			m.vectors[ti][di]++
		}
	}
	return m
}

// NumDocs returns the number of Documents the matrix spans.
func (m *TermDocMatrix) NumDocs() int { return m.docs }

// NumTerms returns the vocabulary size.
func (m *TermDocMatrix) NumTerms() int { return len(m.terms) }

// Terms returns the vocabulary in first-encounter order.
func (m *TermDocMatrix) Terms() []string {
	terms := make([]string, len(m.terms))
	copy(terms, m.terms)
	return terms
}

// Vector returns a copy of the term's per-document occurrence vector.
// The second return is false when the term is not in the vocabulary.
func (m *TermDocMatrix) Vector(term string) ([]float64, bool) {
	ti, ok := m.index[term]
	if !ok {
		return nil, false
	}
	vec := make([]float64, m.docs)
	copy(vec, m.vectors[ti])
	return vec, true
}

// Count returns the occurrences of term in the Document at position
// doc, or zero when either is out of range.
func (m *TermDocMatrix) Count(term string, doc int) int {
	ti, ok := m.index[term]
	if !ok || doc < 0 || doc >= m.docs {
		return 0
	}
	return int(m.vectors[ti][doc])
}

// Total returns the sum of every matrix entry: the filtered token
// count of the Corpus.
func (m *TermDocMatrix) Total() int {
	total := 0.0
	for _, vec := range m.vectors {
		total += floats.Sum(vec)
	}
	return int(total)
}

// Frequencies reduces the matrix to per-term totals, sorted descending
// by count. Equal counts keep first-encounter order, so the table is
// deterministic.
func (m *TermDocMatrix) Frequencies() FrequencyTable {
	table := make(FrequencyTable, 0, len(m.terms))
	for ti, term := range m.terms {
		table = append(table, TermCount{
			Term:  term,
			Count: int(floats.Sum(m.vectors[ti])),
		})
	}
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})
	return table
}
