// Copyright 2026 Esurv
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config holds the process-wide matching configuration: the
// abbreviation table, the suppression rule set, and the scorer backend.
// Configuration is loaded once at startup and read-only afterwards; there
// is no hot reload.
package config

import (
	"fmt"

	"github.com/pguyard-esurv/fuzzy-search/core"
	"github.com/pguyard-esurv/fuzzy-search/normalize"
	"github.com/pguyard-esurv/fuzzy-search/suppress"
)

// Scorer backend names accepted in Algorithm.
const (
	AlgorithmFuzzyWuzzy = "fuzzywuzzy"
	AlgorithmEdlib      = "edlib"
)

// Config is the declarative matching configuration.
type Config struct {
	// Abbreviations is the ordered expansion table. Entries apply in
	// declaration order, so overlapping short forms are reproducible.
	Abbreviations []core.Abbreviation

	// Rules is the suppression rule set. Order does not affect the outcome;
	// any matching rule vetoes a pair.
	Rules []core.SuppressionRule

	// Rewrites are equivalence rewrites applied after lowercasing, in
	// declaration order. Empty by default.
	Rewrites []core.Rewrite

	// Algorithm names the scorer backend.
	// Default: AlgorithmFuzzyWuzzy
	Algorithm string
}

// Option is a functional option for configuring a Config.
type Option func(*Config)

// WithAbbreviation appends one expansion table entry.
func WithAbbreviation(short, long string) Option {
	return func(c *Config) {
		c.Abbreviations = append(c.Abbreviations, core.Abbreviation{Short: short, Long: long})
	}
}

// WithRule appends one suppression rule pattern pair.
func WithRule(patternA, patternB string) Option {
	return func(c *Config) {
		c.Rules = append(c.Rules, core.SuppressionRule{PatternA: patternA, PatternB: patternB})
	}
}

// WithRewrite appends one equivalence rewrite.
func WithRewrite(pattern, replacement string) Option {
	return func(c *Config) {
		c.Rewrites = append(c.Rewrites, core.Rewrite{Pattern: pattern, Replacement: replacement})
	}
}

// WithAlgorithm selects the scorer backend.
func WithAlgorithm(name string) Option {
	return func(c *Config) {
		c.Algorithm = name
	}
}

// DefaultConfig returns a configuration with no expansions and no
// suppression rules, scoring with the default backend.
func DefaultConfig() *Config {
	return &Config{Algorithm: AlgorithmFuzzyWuzzy}
}

// NewConfig creates a Config with the default values and applies the provided
// options. This is the recommended way to create a Config with custom settings.
//
// Example:
//
//	cfg := config.NewConfig(
//	    config.WithAbbreviation("Dr.", "Doctor"),
//	    config.WithRule(`example \d+`, `example \d+`),
//	)
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is valid and complete by running
// the same constructors the engine uses. Every rule and rewrite pattern
// must compile; a bad pattern surfaces here, at load time, never during a
// search.
func (c *Config) Validate() error {
	if _, err := normalize.NewNormalizer(c.Abbreviations, normalize.WithRewrites(c.Rewrites)); err != nil {
		return err
	}

	if _, err := suppress.NewFilter(c.Rules); err != nil {
		return err
	}

	switch c.Algorithm {
	case "", AlgorithmFuzzyWuzzy, AlgorithmEdlib:
	default:
		return fmt.Errorf("%w: %q", core.ErrUnknownAlgorithm, c.Algorithm)
	}
	return nil
}
