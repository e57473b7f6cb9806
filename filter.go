package textmine

import (
	"regexp"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
)

// A Transform rewrites one Document into a cleaned copy.
type Transform func(doc Document) Document

// A Stage is a named step of the cleaning pipeline. Stages are
// independently applicable, which keeps each one testable on its own.
type Stage struct {
	Name  string
	Apply Transform
}

// A Pipeline is an ordered list of cleaning stages. The order is
// fixed: punctuation removal must run after stop-word filtering, or
// contraction forms ("you'll", "we've") stop matching dictionary
// entries that expect the apostrophe-joined form.
type Pipeline struct {
	stages []Stage
}

// A PipelineOpt represents a setting that changes pipeline creation.
type PipelineOpt func(opts *pipelineOpts)

type pipelineOpts struct {
	language Language
	custom   []string
}

// ForLanguage selects the stop-word dictionary language. English is
// the default.
func ForLanguage(lang Language) PipelineOpt {
	return func(opts *pipelineOpts) {
		opts.language = lang
	}
}

// WithCustomStopWords supplies a caller-specific exclusion list,
// removed as the final pipeline stage.
func WithCustomStopWords(terms ...string) PipelineOpt {
	return func(opts *pipelineOpts) {
		opts.custom = append(opts.custom, terms...)
	}
}

// NewPipeline builds the standard cleaning pipeline:
//
//	1. remove digit sequences
//	2. remove stop words, general dictionary
//	3. remove stop words, supplementary dictionary
//	4. remove punctuation
//	5. collapse whitespace
//	6. remove caller-supplied terms
func NewPipeline(opts ...PipelineOpt) *Pipeline {
	base := pipelineOpts{language: English}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}

	return &Pipeline{stages: []Stage{
		RemoveNumbers(),
		RemoveStopWords(base.language),
		RemoveSupplementaryStopWords(),
		RemovePunctuation(),
		CollapseWhitespace(),
		RemoveTerms(base.custom...),
	}}
}

// Stages returns the stage names in application order.
func (p *Pipeline) Stages() []string {
	names := make([]string, 0, len(p.stages))
	for _, stage := range p.stages {
		names = append(names, stage.Name)
	}
	return names
}

// Clean runs every stage over every Document and returns a new Corpus.
// Document count and order are preserved; a Document may come out
// empty but is never dropped.
func (p *Pipeline) Clean(corpus Corpus) Corpus {
	cleaned := make(Corpus, len(corpus))
	for i, doc := range corpus {
		for _, stage := range p.stages {
			doc = stage.Apply(doc)
		}
		cleaned[i] = doc
	}
	return cleaned
}

var digitRE = regexp.MustCompile(`[0-9]+`)

// RemoveNumbers deletes digit sequences.
func RemoveNumbers() Stage {
	return Stage{
		Name: "remove_numbers",
		Apply: func(doc Document) Document {
			return Document(digitRE.ReplaceAllString(string(doc), ""))
		},
	}
}

// RemoveStopWords filters general function words using the language's
// stop-word dictionary. The dictionary keeps intra-word apostrophes
// intact, so contractions are matched in their joined form.
func RemoveStopWords(lang Language) Stage {
	return Stage{
		Name: "remove_stopwords",
		Apply: func(doc Document) Document {
			return Document(stopwords.CleanString(string(doc), string(lang), false))
		},
	}
}

// RemoveSupplementaryStopWords filters the broader supplementary list
// of high-frequency terms the general dictionary leaves behind.
func RemoveSupplementaryStopWords() Stage {
	return Stage{
		Name:  "remove_supplementary_stopwords",
		Apply: wordListRemover(supplementaryStopWords),
	}
}

var punctRE = regexp.MustCompile(`[\p{P}\p{S}]`)

// RemovePunctuation deletes punctuation and symbol characters. By this
// point stop-word matching is done, so dropping apostrophes is safe.
func RemovePunctuation() Stage {
	return Stage{
		Name: "remove_punctuation",
		Apply: func(doc Document) Document {
			return Document(punctRE.ReplaceAllString(string(doc), ""))
		},
	}
}

// CollapseWhitespace squeezes runs of whitespace to single spaces and
// trims the ends.
func CollapseWhitespace() Stage {
	return Stage{
		Name: "collapse_whitespace",
		Apply: func(doc Document) Document {
			return Document(strings.Join(strings.Fields(string(doc)), " "))
		},
	}
}

// RemoveTerms drops exact whole-token matches of the given terms. It
// runs after whitespace collapsing, so tokens are space-delimited.
func RemoveTerms(terms ...string) Stage {
	drop := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		drop[term] = struct{}{}
	}
	return Stage{
		Name: "remove_custom_terms",
		Apply: func(doc Document) Document {
			if len(drop) == 0 {
				return doc
			}
			var kept []string
			for _, tok := range strings.Fields(string(doc)) {
				if _, excluded := drop[tok]; !excluded {
					kept = append(kept, tok)
				}
			}
			return Document(strings.Join(kept, " "))
		},
	}
}

// wordListRemover compiles a whole-word alternation for the list and
// deletes every match. Longer entries are tried first, so "you'll"
// wins over "you".
func wordListRemover(words []string) Transform {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	quoted := make([]string, 0, len(sorted))
	for _, w := range sorted {
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	re := regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	return func(doc Document) Document {
		return Document(re.ReplaceAllString(string(doc), ""))
	}
}
