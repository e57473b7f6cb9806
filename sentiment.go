package textmine

// ScoreByLabel joins the frequency table against a binary-label
// lexicon. The join is inner: terms absent from the lexicon are
// dropped. Totals are sums of term *frequencies* grouped by label, and
// Net = PositiveTotal - NegativeTotal. Rows keep the frequency table's
// order. A join with no matches yields an explicit zero Net.
func ScoreByLabel(ft FrequencyTable, lexicon LabelLexicon) SentimentSummary {
	var summary SentimentSummary
	for _, tc := range ft {
		label, ok := lexicon[tc.Term]
		if !ok {
			continue
		}
		switch label {
		case Positive:
			summary.PositiveTotal += tc.Count
		case Negative:
			summary.NegativeTotal += tc.Count
		default:
			continue
		}
		summary.Rows = append(summary.Rows, SentimentEntry{
			Term:  tc.Term,
			Count: tc.Count,
			Label: label,
		})
	}
	summary.Net = summary.PositiveTotal - summary.NegativeTotal
	return summary
}

// ScoreBySignedScore joins the frequency table against a signed-score
// lexicon. Each term's label is derived from the sign of its score;
// zero-scored entries are excluded. Unlike the label variants, totals
// here sum the *scores*, not the frequencies: PositiveTotal is the sum
// of positive scores and NegativeTotal the magnitude of the negative
// sum, so Net = PositiveTotal - NegativeTotal still holds.
func ScoreBySignedScore(ft FrequencyTable, lexicon ScoreLexicon) SentimentSummary {
	var summary SentimentSummary
	for _, tc := range ft {
		score, ok := lexicon[tc.Term]
		if !ok || score == 0 {
			continue
		}
		label := Positive
		if score < 0 {
			label = Negative
			summary.NegativeTotal += -score
		} else {
			summary.PositiveTotal += score
		}
		summary.Rows = append(summary.Rows, SentimentEntry{
			Term:  tc.Term,
			Count: tc.Count,
			Label: label,
			Score: score,
		})
	}
	summary.Net = summary.PositiveTotal - summary.NegativeTotal
	return summary
}

// ScoreByEmotion joins the frequency table against a categorical
// lexicon, first restricting it to the positive and negative labels.
// Aggregation then matches the binary case: totals sum frequencies per
// label. A term carrying both polarity labels contributes one row, and
// its frequency, to each.
func ScoreByEmotion(ft FrequencyTable, lexicon EmotionLexicon) SentimentSummary {
	polarity := lexicon.Filter(string(Positive), string(Negative))

	var summary SentimentSummary
	for _, tc := range ft {
		labels, ok := polarity[tc.Term]
		if !ok {
			continue
		}
		for _, label := range labels {
			sl := SentimentLabel(label)
			switch sl {
			case Positive:
				summary.PositiveTotal += tc.Count
			case Negative:
				summary.NegativeTotal += tc.Count
			}
			summary.Rows = append(summary.Rows, SentimentEntry{
				Term:  tc.Term,
				Count: tc.Count,
				Label: sl,
			})
		}
	}
	summary.Net = summary.PositiveTotal - summary.NegativeTotal
	return summary
}
