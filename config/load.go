package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/pguyard-esurv/fuzzy-search/core"
)

// fileConfig is the on-disk TOML schema. Array-of-tables entries keep their
// file order, which fixes the abbreviation application order.
//
//	algorithm = "fuzzywuzzy"
//
//	[[abbreviations]]
//	short = "Dr."
//	long = "Doctor"
//
//	[[rules]]
//	pattern_a = 'example \d+'
//	pattern_b = 'example \d+'
//
//	[[rewrites]]
//	pattern = 'developer \d+'
//	replacement = "developer"
type fileConfig struct {
	Algorithm     string             `toml:"algorithm"`
	Abbreviations []fileAbbreviation `toml:"abbreviations"`
	Rules         []fileRule         `toml:"rules"`
	Rewrites      []fileRewrite      `toml:"rewrites"`
}

type fileAbbreviation struct {
	Short string `toml:"short"`
	Long  string `toml:"long"`
}

type fileRule struct {
	PatternA string `toml:"pattern_a"`
	PatternB string `toml:"pattern_b"`
}

type fileRewrite struct {
	Pattern     string `toml:"pattern"`
	Replacement string `toml:"replacement"`
}

// Load reads a TOML configuration file and validates it, so an invalid
// suppression pattern fails here rather than at search time.
func Load(path string) (*Config, error) {
	var file fileConfig
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if file.Algorithm != "" {
		cfg.Algorithm = file.Algorithm
	}
	for _, abbr := range file.Abbreviations {
		cfg.Abbreviations = append(cfg.Abbreviations, core.Abbreviation{Short: abbr.Short, Long: abbr.Long})
	}
	for _, rule := range file.Rules {
		cfg.Rules = append(cfg.Rules, core.SuppressionRule{PatternA: rule.PatternA, PatternB: rule.PatternB})
	}
	for _, rw := range file.Rewrites {
		cfg.Rewrites = append(cfg.Rewrites, core.Rewrite{Pattern: rw.Pattern, Replacement: rw.Replacement})
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
