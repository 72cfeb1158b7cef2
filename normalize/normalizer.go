package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pguyard-esurv/fuzzy-search/core"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Normalizer applies deterministic text normalization: abbreviation
// expansion, case folding, and optional equivalence rewrites.
//
// Expansion policy: each table entry is matched as a literal substring
// anywhere in the text, in table order, against the original casing.
// Expansion runs before lowercasing so short forms like "Dr." match as
// written; short forms that carry their punctuation do not fire inside
// unrelated words ("Dr." never matches "Drew").
//
// Rewrites run after lowercasing, in declared order, replacing every match
// of a pattern so enumerated variants fold into one equivalence class.
// Replacements can leave gaps, so the rewrite stage also collapses
// whitespace runs and trims. With no rewrites configured the pipeline is
// exactly expansion plus lowercasing.
type Normalizer struct {
	table    []core.Abbreviation
	rewrites []rewrite
}

type rewrite struct {
	pattern     *regexp.Regexp
	replacement string
}

// Option configures a Normalizer.
type Option func(*Normalizer) error

// WithRewrites appends equivalence rewrites applied after lowercasing.
// A pattern that fails to compile is reported immediately, wrapped in
// core.ErrInvalidRewritePattern.
func WithRewrites(rewrites []core.Rewrite) Option {
	return func(n *Normalizer) error {
		for _, rw := range rewrites {
			pattern, err := regexp.Compile(rw.Pattern)
			if err != nil {
				return fmt.Errorf("%w: %q: %w", core.ErrInvalidRewritePattern, rw.Pattern, err)
			}
			n.rewrites = append(n.rewrites, rewrite{pattern: pattern, replacement: rw.Replacement})
		}
		return nil
	}
}

// NewNormalizer creates a Normalizer over the given abbreviation table.
// The table is not copied; treat it as immutable after construction. An
// entry with an empty short form is rejected.
func NewNormalizer(table []core.Abbreviation, opts ...Option) (*Normalizer, error) {
	for _, abbr := range table {
		if abbr.Short == "" {
			return nil, fmt.Errorf("%w: expansion %q", core.ErrEmptyAbbreviation, abbr.Long)
		}
	}

	n := &Normalizer{table: table}

	// Apply options
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// Normalize expands abbreviations, lowercases text, and applies any
// configured rewrites. It is total and deterministic; empty input yields
// empty output.
func (n *Normalizer) Normalize(text string) string {
	for _, abbr := range n.table {
		text = strings.ReplaceAll(text, abbr.Short, abbr.Long)
	}
	text = strings.ToLower(text)

	if len(n.rewrites) == 0 {
		return text
	}
	for _, rw := range n.rewrites {
		text = rw.pattern.ReplaceAllString(text, rw.replacement)
	}
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
}
