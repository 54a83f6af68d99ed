package search

import "github.com/yurkevych/parafii/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterCandidateCollection(matches []*core.SearchMatch)
	FieldHit(parishID string, field core.MatchField, score float64)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                  {}
func (n *noopMonitor) AfterCandidateCollection(_ []*core.SearchMatch)  {}
func (n *noopMonitor) FieldHit(_ string, _ core.MatchField, _ float64) {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)                   {}
