package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. Vertex attributes and edge IDs are preserved.
// The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	var opts []GraphOption
	if g.Multigraph() {
		opts = append(opts, WithMultiEdges())
	}
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)

	g.muVert.RLock()
	for id, v := range g.vertices {
		if keep[id] {
			cp := *v
			out.vertices[id] = &cp
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// Carry the counter forward so later AddEdge calls cannot reuse copied IDs.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		ne := *e
		out.edges[eid] = &ne
		if out.adjacencyList[ne.From][ne.To] == nil {
			out.adjacencyList[ne.From][ne.To] = make(map[string]struct{})
		}
		out.adjacencyList[ne.From][ne.To][eid] = struct{}{}
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// CategorySubgraph is InducedSubgraph over all vertices labelled category.
func CategorySubgraph(g *Graph, category string) *Graph {
	keep := make(map[string]bool)
	for _, id := range g.VerticesByCategory(category) {
		keep[id] = true
	}

	return InducedSubgraph(g, keep)
}
