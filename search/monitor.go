package search

import "github.com/pguyard-esurv/fuzzy-search/core"

// Monitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during a scan.
type Monitor interface {
	Start(query, queryNorm string)
	Suppressed(phrase, phraseNorm string)
	Scored(phrase string, score int, accepted bool)
	Finish(matches []core.Match)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_, _ string)              {}
func (n *noopMonitor) Suppressed(_, _ string)         {}
func (n *noopMonitor) Scored(_ string, _ int, _ bool) {}
func (n *noopMonitor) Finish(_ []core.Match)          {}
