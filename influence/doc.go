// SPDX-License-Identifier: MIT
//
// Package influence computes the downstream influence index of every node of
// a directed weighted graph.
//
// The influence index of a source n is the sum, over every path that starts
// at n and repeats no node, of the product of the edge weights along the path
// times the value of the path's last node:
//
//	index(n) = Σ_paths (w1·w2·…·wk) · value(last)
//
// A path stops at the first node already on it (the cycle guard), so cycles
// are truncated rather than expanded. Nothing is memoized: a node reached by
// several paths is expanded once per path.
//
// Modes:
//
//   - Engine.Compute: every node is a source.
//   - Engine.ComputeRestricted / Engine.ComputeCumulative: only tagged nodes
//     are sources, every other tagged node is a barrier, and
//     State.EvaluateCumulative sums the tagged indices once per tagging pass.
//   - Analytical / AnalyticalGraph: the closed form (I−A)⁻¹·A·v, which counts
//     every walk including cycles. On acyclic graphs it agrees with Compute
//     (see Compare); on cyclic graphs the two diverge, and I−A is singular
//     whenever the spectral radius of A reaches 1.
//
// The traversal uses an explicit stack, so path depth is bounded by memory
// rather than the goroutine stack; WithMaxDepth and WithMaxSteps turn runaway
// passes into errors. Worst-case time is exponential in graph depth.
//
// Errors:
//
//	ErrGraphNil          - nil graph.
//	ErrMissingAttribute  - unset node value or edge weight on a crawled path.
//	ErrZeroGraphValue    - cumulative percentage over a graph whose values sum to 0.
//	ErrSingularMatrix    - I−A is not invertible.
//	ErrStaleActive       - the on-path set was not empty at a pass boundary.
//	ErrDepthLimit        - a path exceeded WithMaxDepth.
//	ErrStepLimit         - a pass exceeded WithMaxSteps.
package influence
