// Package dfs implements depth-first orderings of a directed core.Graph.
//
// What:
//
//   - TopologicalSort: linear ordering of an acyclic graph, ErrCycleDetected
//     otherwise. The influence engine agrees with its closed form exactly
//     when this succeeds.
//   - StronglyConnected: Tarjan's algorithm.
//
// Both walks run on an explicit frame stack, so long chains do not grow the
// goroutine stack. They visit roots in sorted vertex order and neighbors in edge
// creation order, so their results are deterministic.
//
// Complexity:
//
//   - TopologicalSort:   Time O(V+E), Memory O(V)
//   - StronglyConnected: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       if the graph pointer is nil.
//   - ErrCycleDetected  if TopologicalSort meets a back-edge.
//   - ErrNeighborFetch  wrapping a neighbor lookup failure.
//   - ctx.Err()         on cancellation.
package dfs
