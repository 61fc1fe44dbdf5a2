// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics over a Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a read-only snapshot of a Graph's configuration and content.
type GraphStats struct {
	AllowsMulti bool // parallel edges permitted
	AllowsLoops bool // self-loops permitted

	VertexCount int // number of vertices
	EdgeCount   int // number of edges

	// UnvaluedVertices counts vertices whose Value was never assigned.
	UnvaluedVertices int
	// UnweightedEdges counts edges created without a weight.
	UnweightedEdges int
	// TotalValue sums Value over vertices that have one.
	TotalValue float64
	// Categories counts vertices per Category label ("" for unclassified).
	Categories map[string]int
}

// Stats produces a deterministic snapshot of flags, counts and totals.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, snapshot flags and scan vertices.
//   - Stage 2: Under muEdgeAdj.RLock, scan edges.
//
// Both locks are never held together.
//
// Complexity:
//   - Time O(V+E), Space O(#categories).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
		Categories:  make(map[string]int),
	}
	for _, v := range g.vertices {
		if v.HasValue {
			stats.TotalValue += v.Value
		} else {
			stats.UnvaluedVertices++
		}
		stats.Categories[v.Category]++
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if !e.HasWeight {
			stats.UnweightedEdges++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
