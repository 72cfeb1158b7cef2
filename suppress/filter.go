package suppress

import (
	"fmt"
	"regexp"

	"github.com/pguyard-esurv/fuzzy-search/core"
)

type compiledRule struct {
	a *regexp.Regexp
	b *regexp.Regexp
}

// Filter vetoes (query, phrase) pairs that match a configured rule.
// Patterns are compiled once at construction and searched unanchored, so a
// pattern hits anywhere inside the normalized text.
type Filter struct {
	rules []compiledRule
}

// NewFilter compiles the rule set. A pattern that fails to compile is
// reported immediately, wrapped in core.ErrInvalidRulePattern; no search
// ever runs against a partially compiled filter.
func NewFilter(rules []core.SuppressionRule) (*Filter, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		a, err := regexp.Compile(rule.PatternA)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", core.ErrInvalidRulePattern, rule.PatternA, err)
		}
		b, err := regexp.Compile(rule.PatternB)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", core.ErrInvalidRulePattern, rule.PatternB, err)
		}
		compiled = append(compiled, compiledRule{a: a, b: b})
	}
	return &Filter{rules: compiled}, nil
}

// Suppressed reports whether any rule vetoes the normalized pair. Rules are
// directional as declared, but both orientations are checked so that
// same-shaped phrases suppress each other regardless of which side is the
// query.
func (f *Filter) Suppressed(queryNorm, phraseNorm string) bool {
	for _, rule := range f.rules {
		if rule.a.MatchString(queryNorm) && rule.b.MatchString(phraseNorm) {
			return true
		}
		if rule.b.MatchString(queryNorm) && rule.a.MatchString(phraseNorm) {
			return true
		}
	}
	return false
}
