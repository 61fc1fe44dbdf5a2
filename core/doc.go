// Package core provides the thread-safe, in-memory directed weighted graph
// consumed by the influence engine.
//
// The Graph G = (V,E) carries exactly the attributes influence propagation
// needs:
//
//   - Vertex.Value     intrinsic value contributed when a vertex is reached
//   - Vertex.Category  external classification label (e.g. bowtie IN/SCC/OUT)
//   - Edge.Weight      non-negative decay factor applied along the edge
//
// Value and Weight are optional at construction time: reading an unset one
// through Graph.Value or during a traversal yields ErrMissingAttribute, so
// incomplete external data surfaces at the exact vertex or edge.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()       permits self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//	– WithMultiEdges()  permits parallel edges; otherwise ErrMultiEdgeNotAllowed.
//
// Vertex options (VertexOption): WithValue(v), WithCategory(c).
//
// Core Methods:
//
//	AddVertex(id, opts...) error                      // O(1)
//	AddEdge(from, to, weight) (edgeID, error)         // O(1)†
//	AddUnweightedEdge(from, to) (edgeID, error)       // O(1)†
//	Value(id) / Category(id) / SetValue / SetCategory  // O(1)
//	Neighbors(id) ([]*Edge, error)                     // outgoing, creation order
//	Vertices() []string                                // sorted
//	Edges() []*Edge                                    // creation order
//	Stats() *GraphStats                                // O(V+E)
//	InducedSubgraph(g, keep) / CategorySubgraph(g, c)  // O(V+E)
//
// † amortized: atomic ID generation + nested-map insertion.
//
// Concurrency: muVert guards vertices, muEdgeAdj guards edges and adjacency;
// the lock order is always muVert -> muEdgeAdj.
package core
