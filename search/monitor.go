package search

import "github.com/poiesic/berkut/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterTokenize(words []string)
	AfterExpansion(forms []string)
	RecordScored(material *core.Material, similarity float64, typo bool)
	RecordAccepted(material *core.Material, similarity float64)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                    {}
func (n *noopMonitor) AfterTokenize(_ []string)                          {}
func (n *noopMonitor) AfterExpansion(_ []string)                         {}
func (n *noopMonitor) RecordScored(_ *core.Material, _ float64, _ bool)  {}
func (n *noopMonitor) RecordAccepted(_ *core.Material, _ float64)        {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)                     {}
