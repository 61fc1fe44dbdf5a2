// SPDX-License-Identifier: MIT
// Package matrix provides graph-aware wrappers over the Matrix API,
// exposing the weighted adjacency matrix and the value vector of a graph.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/influence/core"
)

const opAdjacency = "NewAdjacencyMatrix"

// AdjacencyMatrix wraps a Matrix as a graph adjacency representation.
// VertexIndex maps VertexID → row/col in Mat.
// vertexByIndex provides reverse lookup from index to VertexID.
// Mat[i][j] holds the sum of weights of all edges i→j (0 for no edge).
type AdjacencyMatrix struct {
	Mat           Matrix         // underlying adjacency matrix
	VertexIndex   map[string]int // mapping of VertexID to index
	vertexByIndex []string       // reverse lookup by index
}

// NewAdjacencyMatrix constructs the weighted adjacency matrix of g.
// Stage 1 (Validate): ensure g is non-nil and non-empty.
// Stage 2 (Prepare): index vertices in sorted ID order.
// Stage 3 (Execute): accumulate every edge weight into Mat[from][to].
//
// Parallel edges are summed; every edge must carry a weight.
//
// Errors:
//   - ErrGraphNil for a nil graph; ErrInvalidDimensions for an empty graph.
//   - core.ErrMissingAttribute (wrapped with the edge ID) for an unweighted edge.
//
// Complexity: O(V^2 + E).
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, matrixErrorf(opAdjacency, ErrGraphNil)
	}

	vertices := g.Vertices()
	mat, err := NewDense(len(vertices), len(vertices))
	if err != nil {
		return nil, matrixErrorf(opAdjacency, err)
	}
	idx := make(map[string]int, len(vertices))
	for i, id := range vertices {
		idx[id] = i
	}

	n := mat.c
	for _, e := range g.Edges() {
		if !e.HasWeight {
			return nil, matrixErrorf(opAdjacency, fmt.Errorf("edge %s (%s→%s) has no weight: %w", e.ID, e.From, e.To, core.ErrMissingAttribute))
		}
		mat.data[idx[e.From]*n+idx[e.To]] += e.Weight
	}

	return &AdjacencyMatrix{
		Mat:           mat,
		VertexIndex:   idx,
		vertexByIndex: vertices,
	}, nil
}

// VertexCount returns the number of indexed vertices.
func (am *AdjacencyMatrix) VertexCount() int { return len(am.vertexByIndex) }

// VertexAt returns the vertex ID mapped to index i.
func (am *AdjacencyMatrix) VertexAt(i int) (string, error) {
	if i < 0 || i >= len(am.vertexByIndex) {
		return "", ErrOutOfRange
	}

	return am.vertexByIndex[i], nil
}

// Index returns the row/column of vertex id.
func (am *AdjacencyMatrix) Index(id string) (int, error) {
	i, ok := am.VertexIndex[id]
	if !ok {
		return 0, core.ErrVertexNotFound
	}

	return i, nil
}

// VertexIDs returns the vertex IDs in index order (a copy).
func (am *AdjacencyMatrix) VertexIDs() []string {
	out := make([]string, len(am.vertexByIndex))
	copy(out, am.vertexByIndex)

	return out
}

// ValueVector returns v with v[i] = value of the vertex at index i of am.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - core.ErrMissingAttribute (wrapped with the vertex ID) for an unvalued vertex.
func ValueVector(g *core.Graph, am *AdjacencyMatrix) ([]float64, error) {
	if g == nil {
		return nil, matrixErrorf("ValueVector", ErrGraphNil)
	}
	out := make([]float64, len(am.vertexByIndex))
	for i, id := range am.vertexByIndex {
		v, err := g.Value(id)
		if err != nil {
			return nil, matrixErrorf("ValueVector", err)
		}
		out[i] = v
	}

	return out, nil
}
