package textmine

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Correlations computes the Pearson correlation between the target
// term's per-document occurrence vector and every other term's vector,
// and returns the terms whose correlation meets the threshold, sorted
// descending. The threshold is a value in [-1, 1].
//
// A target term absent from the vocabulary yields an empty result, the
// same observable outcome as no term meeting the threshold. Terms with
// zero variance across documents (including the target) are excluded:
// their correlation is undefined, and exclusion matches dropping the
// NaN the estimator produces for them.
func (m *TermDocMatrix) Correlations(term string, threshold float64) []TermCorrelation {
	ti, ok := m.index[term]
	if !ok {
		return nil
	}
	target := m.vectors[ti]

	var results []TermCorrelation
	for oi, other := range m.terms {
		if oi == ti {
			continue
		}
		r := stat.Correlation(target, m.vectors[oi], nil)
		if math.IsNaN(r) || r < threshold {
			continue
		}
		results = append(results, TermCorrelation{Term: other, Correlation: r})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Correlation > results[j].Correlation
	})
	return results
}
