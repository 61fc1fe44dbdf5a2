// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph, Vertex, and Edge types of the
// influence module and provides thread-safe primitives for building and
// querying directed weighted graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency). Lock order is always muVert -> muEdgeAdj.
//
// This file declares Vertex, Edge, Graph, GraphOption, VertexOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - weight is negative, NaN or ±Inf.
//	ErrBadValue            - vertex value is NaN or ±Inf.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrMissingAttribute    - a vertex value or an edge weight was never set.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative or non-finite edge weight.
	ErrBadWeight = errors.New("core: weight must be finite and >= 0")

	// ErrBadValue indicates a non-finite vertex value.
	ErrBadValue = errors.New("core: value must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMissingAttribute indicates that a vertex value or an edge weight
	// was read before it was ever assigned.
	ErrMissingAttribute = errors.New("core: missing attribute")
)

// Vertex represents a node in the graph.
//
// Value is the intrinsic amount the vertex contributes to every upstream
// influence index that reaches it. Category is an external classification
// label (for example a bowtie component) used only for tagging.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Value is the intrinsic vertex value; meaningful only if HasValue.
	Value float64

	// HasValue reports whether Value was ever assigned.
	HasValue bool

	// Category is an optional classification label ("" when unclassified).
	Category string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents a directed connection between two vertices.
//
// Weight is the decay factor applied to value propagated along the edge.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the non-negative decay factor; meaningful only if HasWeight.
	Weight float64

	// HasWeight reports whether Weight was assigned at creation.
	HasWeight bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// VertexOption configures attributes of a vertex when it is added.
type VertexOption func(*Vertex)

// WithValue assigns the intrinsic value of the vertex.
func WithValue(value float64) VertexOption {
	return func(v *Vertex) {
		v.Value = value
		v.HasValue = true
	}
}

// WithCategory assigns the classification label of the vertex.
func WithCategory(category string) VertexOption {
	return func(v *Vertex) { v.Category = category }
}

// Graph is a directed, weighted, in-memory graph.
//
// muVert protects the vertices map; muEdgeAdj protects the edges map and
// adjacencyList. nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[from][to][edgeID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty directed Graph with the given options.
// By default, loops and multi-edges are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}
