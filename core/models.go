package core

// DefaultThreshold is the minimum score applied when the caller does not
// supply one.
const DefaultThreshold = 80

// Match is a single fuzzy-search hit. Phrase is the candidate exactly as the
// caller supplied it, never the normalized form.
type Match struct {
	Phrase string
	Score  int
}

// SearchConfig carries the per-call settings of a fuzzy search.
type SearchConfig struct {
	// Threshold is the minimum inclusive score for a candidate to appear in
	// the results. Out-of-range values are accepted: above 100 nothing can
	// match, zero or below matches everything not suppressed.
	Threshold int

	// UsePartialRatio selects best-window substring scoring instead of the
	// whole-string ratio.
	UsePartialRatio bool
}

// DefaultSearchConfig returns the default per-call settings: whole-string
// ratio at DefaultThreshold.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{Threshold: DefaultThreshold}
}

// Abbreviation maps a literal short form to its expansion. Tables are
// ordered: entries apply in declaration order, so overlapping short forms
// produce reproducible output.
type Abbreviation struct {
	Short string
	Long  string
}

// SuppressionRule is a pair of regular-expression patterns. A candidate is
// vetoed when one pattern is found in the normalized query and the other in
// the normalized phrase, in either orientation.
type SuppressionRule struct {
	PatternA string
	PatternB string
}

// Rewrite folds enumerated variants into one equivalence class before
// scoring: every match of Pattern in the lowercased text is replaced with
// Replacement, so "developer 1" and "developer 2" can both score as
// "developer".
type Rewrite struct {
	Pattern     string
	Replacement string
}
