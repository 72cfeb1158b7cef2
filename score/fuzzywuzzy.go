package score

import fuzzywuzzy "github.com/paul-mannino/go-fuzzywuzzy"

// FuzzyWuzzyScorer scores with the go-fuzzywuzzy ratio / partial ratio
// pair. This is the default backend.
type FuzzyWuzzyScorer struct{}

var _ Scorer = (*FuzzyWuzzyScorer)(nil)

// NewFuzzyWuzzyScorer creates the default scorer backend.
func NewFuzzyWuzzyScorer() *FuzzyWuzzyScorer {
	return &FuzzyWuzzyScorer{}
}

// Ratio scores the two complete strings.
func (s *FuzzyWuzzyScorer) Ratio(a, b string) int {
	if pinned, score := emptyScore(a, b); pinned {
		return score
	}
	return clamp(fuzzywuzzy.Ratio(a, b))
}

// PartialRatio scores the best substring alignment.
func (s *FuzzyWuzzyScorer) PartialRatio(a, b string) int {
	if pinned, score := emptyScore(a, b); pinned {
		return score
	}
	return clamp(fuzzywuzzy.PartialRatio(a, b))
}
