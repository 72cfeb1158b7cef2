package fuzzysearch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pguyard-esurv/fuzzy-search/config"
	"github.com/pguyard-esurv/fuzzy-search/core"
	"github.com/pguyard-esurv/fuzzy-search/score"
)

func demoConfig() *config.Config {
	return config.NewConfig(
		config.WithAbbreviation("Dr.", "Doctor"),
		config.WithAbbreviation("e.g.", "for example"),
		config.WithAbbreviation("etc.", "et cetera"),
		config.WithRule(`example \d+`, `example \d+`),
		config.WithRule(`test case \d+`, `test case \d+`),
	)
}

func TestNewEngine(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		engine, err := NewEngine(demoConfig())
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})

	t.Run("nil configuration uses defaults", func(t *testing.T) {
		engine, err := NewEngine(nil)
		require.NoError(t, err)

		matches := engine.FuzzySearch("hello world", []string{"hello world", "goodbye"})
		require.Len(t, matches, 1)
		assert.Equal(t, "hello world", matches[0].Phrase)
		assert.Equal(t, 100, matches[0].Score)
	})

	t.Run("invalid rule pattern fails before any search", func(t *testing.T) {
		_, err := NewEngine(config.NewConfig(config.WithRule(`[unclosed`, `fine`)))
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrInvalidRulePattern))
	})

	t.Run("empty abbreviation short form fails", func(t *testing.T) {
		_, err := NewEngine(config.NewConfig(config.WithAbbreviation("", "Doctor")))
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrEmptyAbbreviation))
	})

	t.Run("invalid rewrite pattern fails before any search", func(t *testing.T) {
		_, err := NewEngine(config.NewConfig(config.WithRewrite(`[unclosed`, "x")))
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrInvalidRewritePattern))
	})

	t.Run("unknown algorithm fails", func(t *testing.T) {
		_, err := NewEngine(config.NewConfig(config.WithAlgorithm("metaphone")))
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrUnknownAlgorithm))
	})

	t.Run("unknown algorithm fails even with a scorer override", func(t *testing.T) {
		_, err := NewEngine(config.NewConfig(config.WithAlgorithm("metaphone")), WithScorer(score.NewEdlibScorer()))
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrUnknownAlgorithm))
	})

	t.Run("edlib backend from configuration", func(t *testing.T) {
		engine, err := NewEngine(config.NewConfig(config.WithAlgorithm(config.AlgorithmEdlib)))
		require.NoError(t, err)

		matches := engine.FuzzySearch("doctor smith", []string{"doctor smith"})
		require.Len(t, matches, 1)
		assert.Equal(t, 100, matches[0].Score)
	})

	t.Run("scorer override wins over configuration", func(t *testing.T) {
		engine, err := NewEngine(demoConfig(), WithScorer(score.NewEdlibScorer()))
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})
}

func TestEngine_FuzzySearch(t *testing.T) {
	engine, err := NewEngine(demoConfig())
	require.NoError(t, err)

	t.Run("abbreviation-equivalent phrases score 100", func(t *testing.T) {
		matches := engine.FuzzySearch(
			"Dr. Smith is a cardiologist",
			[]string{"Doctor Smith is a cardiologist", "123 Main Street"},
		)
		require.Len(t, matches, 1)
		assert.Equal(t, "Doctor Smith is a cardiologist", matches[0].Phrase)
		assert.Equal(t, 100, matches[0].Score)
	})

	t.Run("default threshold filters weak candidates", func(t *testing.T) {
		matches := engine.FuzzySearch("abcdef", []string{"Hello World", "Python Testing"})
		assert.Empty(t, matches)
	})
}

func TestEngine_Search(t *testing.T) {
	engine, err := NewEngine(demoConfig())
	require.NoError(t, err)

	t.Run("partial ratio with suppression", func(t *testing.T) {
		matches := engine.Search(
			"Example 1",
			[]string{"Example 1", "Example 2", "This is an example"},
			core.SearchConfig{Threshold: 80, UsePartialRatio: true},
		)
		require.Len(t, matches, 1)
		assert.Equal(t, "This is an example", matches[0].Phrase)
		assert.GreaterOrEqual(t, matches[0].Score, 80)
	})

	t.Run("partial ratio with suppression under edlib", func(t *testing.T) {
		edlibEngine, err := NewEngine(config.NewConfig(
			config.WithAbbreviation("Dr.", "Doctor"),
			config.WithRule(`example \d+`, `example \d+`),
			config.WithAlgorithm(config.AlgorithmEdlib),
		))
		require.NoError(t, err)

		matches := edlibEngine.Search(
			"Example 1",
			[]string{"Example 1", "Example 2", "This is an example"},
			core.SearchConfig{Threshold: 80, UsePartialRatio: true},
		)
		require.Len(t, matches, 1)
		assert.Equal(t, "This is an example", matches[0].Phrase)
		assert.GreaterOrEqual(t, matches[0].Score, 80)
	})

	t.Run("whole and partial ratio diverge", func(t *testing.T) {
		phrases := []string{"this is an example"}

		whole := engine.Search("example", phrases, core.SearchConfig{Threshold: 80})
		assert.Empty(t, whole)

		partial := engine.Search("example", phrases, core.SearchConfig{Threshold: 80, UsePartialRatio: true})
		require.Len(t, partial, 1)
		assert.Equal(t, 100, partial[0].Score)
	})
}

func TestEngine_Rewrites(t *testing.T) {
	engine, err := NewEngine(config.NewConfig(
		config.WithRewrite(`developer \d+`, "developer"),
	))
	require.NoError(t, err)

	// Numbered variants fold into one equivalence class before scoring.
	matches := engine.FuzzySearch("Developer 1", []string{"Developer 2", "Designer"})
	require.Len(t, matches, 1)
	assert.Equal(t, "Developer 2", matches[0].Phrase)
	assert.Equal(t, 100, matches[0].Score)
}

func TestEngine_NewSearcher(t *testing.T) {
	engine, err := NewEngine(demoConfig())
	require.NoError(t, err)

	searcher, err := engine.NewSearcher()
	require.NoError(t, err)

	matches := searcher.Search("e.g. bananas", []string{"for example bananas"}, core.DefaultSearchConfig())
	require.Len(t, matches, 1)
	assert.Equal(t, 100, matches[0].Score)
}
