package textmine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// A LabelLexicon maps terms to a binary sentiment label. It models
// reference datasets of the positive/negative word-list kind.
type LabelLexicon map[string]SentimentLabel

// A ScoreLexicon maps terms to a signed integer score, conventionally
// in [-5, 5]. The sign carries the polarity; the magnitude carries the
// strength.
type ScoreLexicon map[string]int

// An EmotionLexicon maps terms to one or more labels from a fixed
// emotion set. Beyond "positive" and "negative" the set typically
// includes categories like "anger", "joy", or "trust"; a term may
// appear under several.
type EmotionLexicon map[string][]string

// Filter returns a copy restricted to the given emotion labels.
func (el EmotionLexicon) Filter(emotions ...string) EmotionLexicon {
	keep := make(map[string]struct{}, len(emotions))
	for _, e := range emotions {
		keep[e] = struct{}{}
	}
	filtered := make(EmotionLexicon)
	for term, labels := range el {
		for _, label := range labels {
			if _, ok := keep[label]; ok {
				filtered[term] = append(filtered[term], label)
			}
		}
	}
	return filtered
}

// ParseLabelLexicon reads tab-separated "term<TAB>label" lines. Blank
// lines and lines starting with # are skipped.
func ParseLabelLexicon(r io.Reader) (LabelLexicon, error) {
	lexicon := make(LabelLexicon)
	err := eachLexiconLine(r, func(lineNum int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("line %d: expected term and label, got %d fields", lineNum, len(fields))
		}
		lexicon[fields[0]] = SentimentLabel(fields[1])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lexicon, nil
}

// ParseScoreLexicon reads tab-separated "term<TAB>score" lines, the
// layout used by signed-score word lists such as AFINN. Terms may
// contain spaces; only the tab separates the columns.
func ParseScoreLexicon(r io.Reader) (ScoreLexicon, error) {
	lexicon := make(ScoreLexicon)
	err := eachLexiconLine(r, func(lineNum int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("line %d: expected term and score, got %d fields", lineNum, len(fields))
		}
		score, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return fmt.Errorf("line %d: bad score %q: %w", lineNum, fields[1], err)
		}
		lexicon[fields[0]] = score
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lexicon, nil
}

// ParseEmotionLexicon reads association lines in the NRC layout,
// "term<TAB>emotion<TAB>flag", keeping only flag-1 associations. The
// two-column form "term<TAB>emotion" is accepted as an implicit 1.
func ParseEmotionLexicon(r io.Reader) (EmotionLexicon, error) {
	lexicon := make(EmotionLexicon)
	err := eachLexiconLine(r, func(lineNum int, fields []string) error {
		switch len(fields) {
		case 2:
			lexicon[fields[0]] = append(lexicon[fields[0]], fields[1])
		case 3:
			flag, err := strconv.Atoi(strings.TrimSpace(fields[2]))
			if err != nil {
				return fmt.Errorf("line %d: bad flag %q: %w", lineNum, fields[2], err)
			}
			if flag != 0 {
				lexicon[fields[0]] = append(lexicon[fields[0]], fields[1])
			}
		default:
			return fmt.Errorf("line %d: expected 2 or 3 fields, got %d", lineNum, len(fields))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lexicon, nil
}

// LoadLabelLexicon reads a LabelLexicon from the named file.
func LoadLabelLexicon(path string) (LabelLexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening lexicon file: %w", err)
	}
	defer f.Close()
	return ParseLabelLexicon(f)
}

// LoadScoreLexicon reads a ScoreLexicon from the named file.
func LoadScoreLexicon(path string) (ScoreLexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening lexicon file: %w", err)
	}
	defer f.Close()
	return ParseScoreLexicon(f)
}

// LoadEmotionLexicon reads an EmotionLexicon from the named file.
func LoadEmotionLexicon(path string) (EmotionLexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening lexicon file: %w", err)
	}
	defer f.Close()
	return ParseEmotionLexicon(f)
}

func eachLexiconLine(r io.Reader, fn func(lineNum int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(lineNum, strings.Split(line, "\t")); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading lexicon: %w", err)
	}
	return nil
}

// BuiltinLabelLexicon returns a small embedded binary-label lexicon of
// common English sentiment words.
func BuiltinLabelLexicon() LabelLexicon {
	return LabelLexicon{
		"beautiful":  Positive,
		"bright":     Positive,
		"dream":      Positive,
		"faith":      Positive,
		"free":       Positive,
		"freedom":    Positive,
		"glory":      Positive,
		"great":      Positive,
		"happy":      Positive,
		"hope":       Positive,
		"joy":        Positive,
		"justice":    Positive,
		"liberty":    Positive,
		"love":       Positive,
		"peace":      Positive,
		"prosperity": Positive,
		"triumph":    Positive,
		"victory":    Positive,

		"brutality":      Negative,
		"cruel":          Negative,
		"despair":        Negative,
		"difficulty":     Negative,
		"discrimination": Negative,
		"hate":           Negative,
		"injustice":      Negative,
		"misery":         Negative,
		"oppression":     Negative,
		"persecution":    Negative,
		"poverty":        Negative,
		"segregation":    Negative,
		"shameful":       Negative,
		"suffering":      Negative,
		"tribulation":    Negative,
		"unjust":         Negative,
	}
}

// BuiltinScoreLexicon returns a small embedded signed-score lexicon in
// the AFINN value range.
func BuiltinScoreLexicon() ScoreLexicon {
	return ScoreLexicon{
		"dream":      1,
		"faith":      3,
		"free":       1,
		"freedom":    2,
		"glory":      2,
		"great":      3,
		"happy":      3,
		"hope":       2,
		"joy":        3,
		"justice":    2,
		"peace":      2,
		"prosperity": 2,
		"triumph":    4,
		"victory":    3,

		"brutality":   -3,
		"cruel":       -3,
		"despair":     -3,
		"difficulty":  -1,
		"hate":        -3,
		"injustice":   -2,
		"misery":      -3,
		"oppression":  -2,
		"persecution": -3,
		"poverty":     -1,
		"suffering":   -2,
		"unjust":      -2,
	}
}

// BuiltinEmotionLexicon returns a small embedded categorical lexicon.
// Terms may carry several labels, mirroring the NRC association style.
func BuiltinEmotionLexicon() EmotionLexicon {
	return EmotionLexicon{
		"brutality":   {"negative", "anger", "fear"},
		"despair":     {"negative", "sadness"},
		"dream":       {"positive", "anticipation"},
		"faith":       {"positive", "trust", "joy"},
		"freedom":     {"positive", "joy", "trust"},
		"glory":       {"positive", "joy", "anticipation"},
		"hate":        {"negative", "anger", "disgust"},
		"hope":        {"positive", "anticipation", "trust"},
		"injustice":   {"negative", "anger"},
		"joy":         {"positive", "joy"},
		"justice":     {"positive", "trust"},
		"liberty":     {"positive", "joy"},
		"misery":      {"negative", "sadness"},
		"oppression":  {"negative", "anger", "sadness", "fear"},
		"peace":       {"positive", "joy", "trust", "anticipation"},
		"persecution": {"negative", "anger", "fear", "sadness"},
		"poverty":     {"negative", "sadness", "fear"},
		"suffering":   {"negative", "sadness", "fear"},
		"triumph":     {"positive", "joy", "anticipation"},
		"victory":     {"positive", "joy", "anticipation", "trust"},
	}
}
