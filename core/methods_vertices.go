// File: methods_vertices.go
// Role: Vertex lifecycle, attributes & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import (
	"fmt"
	"math"
	"sort"
)

// IsNil reports whether the receiver should be treated as nil when stored inside interfaces.
func (v *Vertex) IsNil() bool { return v == nil }

// AddVertex inserts a vertex if missing. Options are applied to a new vertex,
// and to an existing one as an attribute update.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrBadValue: if WithValue carries NaN or ±Inf (the catalog is left unchanged).
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, exists := g.vertices[id]
	if !exists {
		v = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	}

	// Apply options on a scratch copy so that a rejected value leaves no trace.
	next := *v
	for _, opt := range opts {
		opt(&next)
	}
	if next.HasValue && (math.IsNaN(next.Value) || math.IsInf(next.Value, 0)) {
		return fmt.Errorf("AddVertex(%q): %w", id, ErrBadValue)
	}
	*v = next

	if exists {
		return nil
	}
	g.vertices[id] = v

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record.
// The Metadata map is shared with the live vertex.
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// SetValue assigns the intrinsic value of an existing vertex.
func (g *Graph) SetValue(id string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("SetValue(%q): %w", id, ErrBadValue)
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Value, v.HasValue = value, true

	return nil
}

// SetCategory assigns the classification label of an existing vertex.
func (g *Graph) SetCategory(id, category string) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Category = category

	return nil
}

// Value returns the intrinsic value of vertex id.
//
// Errors:
//   - ErrVertexNotFound: if id is unknown.
//   - ErrMissingAttribute: if the value was never assigned.
func (g *Graph) Value(id string) (float64, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return 0, ErrVertexNotFound
	}
	if !v.HasValue {
		return 0, fmt.Errorf("vertex %q has no value: %w", id, ErrMissingAttribute)
	}

	return v.Value, nil
}

// Category returns the classification label of vertex id ("" if unclassified).
func (g *Graph) Category(id string) (string, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return "", ErrVertexNotFound
	}

	return v.Category, nil
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// VerticesByCategory returns the sorted IDs of all vertices labelled category.
func (g *Graph) VerticesByCategory(category string) []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	var ids []string
	for id, v := range g.vertices {
		if v.Category == category {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// OutDegree returns the number of outgoing edges of id, self-loops included.
func (g *Graph) OutDegree(id string) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	n := 0
	for _, set := range g.adjacencyList[id] {
		n += len(set)
	}

	return n, nil
}
