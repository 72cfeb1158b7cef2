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


// Package fuzzysearch performs approximate string matching between a query
// and candidate phrases, after deterministic normalization (abbreviation
// expansion plus case folding) and subject to configured suppression rules
// that veto specific query/phrase pattern pairs.
package fuzzysearch

import (
	"fmt"
	"log/slog"

	"github.com/pguyard-esurv/fuzzy-search/config"
	"github.com/pguyard-esurv/fuzzy-search/core"
	"github.com/pguyard-esurv/fuzzy-search/normalize"
	"github.com/pguyard-esurv/fuzzy-search/score"
	"github.com/pguyard-esurv/fuzzy-search/search"
	"github.com/pguyard-esurv/fuzzy-search/suppress"
)

// Engine bundles the configured matching components behind the package
// entry points.
type Engine struct {
	normalizer *normalize.Normalizer
	filter     *suppress.Filter
	scorer     score.Scorer
	searcher   *search.Searcher
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	logger *slog.Logger
	scorer score.Scorer
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithScorer overrides the scorer backend named in the configuration.
func WithScorer(scorer score.Scorer) EngineOption {
	return func(o *engineOptions) {
		o.scorer = scorer
	}
}

// NewEngine assembles an Engine from cfg. Component construction doubles as
// validation: each constructor compiles its patterns exactly once, so a bad
// suppression or rewrite pattern fails here, before any search can run. A
// nil cfg means the default configuration: no expansions, no suppression
// rules.
func NewEngine(cfg *config.Config, opts ...EngineOption) (*Engine, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	options := &engineOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	normalizer, err := normalize.NewNormalizer(cfg.Abbreviations, normalize.WithRewrites(cfg.Rewrites))
	if err != nil {
		return nil, err
	}

	filter, err := suppress.NewFilter(cfg.Rules)
	if err != nil {
		return nil, err
	}

	scorer := options.scorer
	switch cfg.Algorithm {
	case "", config.AlgorithmFuzzyWuzzy:
		if scorer == nil {
			scorer = score.NewFuzzyWuzzyScorer()
		}
	case config.AlgorithmEdlib:
		if scorer == nil {
			scorer = score.NewEdlibScorer()
		}
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownAlgorithm, cfg.Algorithm)
	}

	searcher, err := search.NewSearcher(normalizer, filter, scorer, search.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	return &Engine{
		normalizer: normalizer,
		filter:     filter,
		scorer:     scorer,
		searcher:   searcher,
	}, nil
}

// FuzzySearch matches query against phrases with the default per-call
// settings: whole-string ratio at core.DefaultThreshold.
func (e *Engine) FuzzySearch(query string, phrases []string) []core.Match {
	return e.searcher.Search(query, phrases, core.DefaultSearchConfig())
}

// Search matches query against phrases with explicit per-call settings.
func (e *Engine) Search(query string, phrases []string, cfg core.SearchConfig) []core.Match {
	return e.searcher.Search(query, phrases, cfg)
}

// NewSearcher builds an additional searcher over the engine's components,
// for callers that want their own logger or monitoring.
func (e *Engine) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(e.normalizer, e.filter, e.scorer, opts...)
}
