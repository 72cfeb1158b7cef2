package search

import (
	"log/slog"

	"github.com/pguyard-esurv/fuzzy-search/core"
	"github.com/pguyard-esurv/fuzzy-search/score"
)

// Normalizer prepares text for scoring. The query and every candidate pass
// through it before any other step.
type Normalizer interface {
	Normalize(text string) string
}

// SuppressionFilter vetoes (query, phrase) pairs regardless of score. Both
// arguments are normalized strings.
type SuppressionFilter interface {
	Suppressed(queryNorm, phraseNorm string) bool
}

// Searcher performs approximate matching of a query against candidate
// phrase lists. It holds no mutable state beyond its read-only
// collaborators, so a single Searcher is safe for concurrent use.
type Searcher struct {
	normalizer Normalizer
	filter     SuppressionFilter
	scorer     score.Scorer
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(normalizer Normalizer, filter SuppressionFilter, scorer score.Scorer, opts ...Option) (*Searcher, error) {
	if normalizer == nil {
		return nil, ErrNormalizerRequired
	}
	if filter == nil {
		return nil, ErrSuppressionFilterRequired
	}
	if scorer == nil {
		return nil, ErrScorerRequired
	}

	s := &Searcher{
		normalizer: normalizer,
		filter:     filter,
		scorer:     scorer,
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search matches query against phrases and returns the candidates scoring
// at or above cfg.Threshold, in input order with their scores. Suppressed
// pairs are excluded regardless of score. Search never fails; at worst it
// returns no matches.
func (s *Searcher) Search(query string, phrases []string, cfg core.SearchConfig) []core.Match {
	return s.SearchWithMonitor(query, phrases, cfg, nil)
}

// SearchWithMonitor is Search with observation hooks. The monitor receives
// a callback at each stage of the scan; pass nil for no monitoring.
func (s *Searcher) SearchWithMonitor(query string, phrases []string, cfg core.SearchConfig, monitor Monitor) []core.Match {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	queryNorm := s.normalizer.Normalize(query)
	monitor.Start(query, queryNorm)

	results := make([]core.Match, 0, len(phrases))
	for _, phrase := range phrases {
		phraseNorm := s.normalizer.Normalize(phrase)

		if s.filter.Suppressed(queryNorm, phraseNorm) {
			s.logger.Debug("suppressed candidate", "query", query, "phrase", phrase)
			monitor.Suppressed(phrase, phraseNorm)
			continue
		}

		var matchScore int
		if cfg.UsePartialRatio {
			matchScore = s.scorer.PartialRatio(queryNorm, phraseNorm)
		} else {
			matchScore = s.scorer.Ratio(queryNorm, phraseNorm)
		}

		accepted := matchScore >= cfg.Threshold
		monitor.Scored(phrase, matchScore, accepted)
		if accepted {
			results = append(results, core.Match{Phrase: phrase, Score: matchScore})
		}
	}

	s.logger.Debug("search finished",
		"query", query,
		"candidates", len(phrases),
		"matches", len(results),
		"partial", cfg.UsePartialRatio)
	monitor.Finish(results)
	return results
}
