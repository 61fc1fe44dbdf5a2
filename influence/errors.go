// SPDX-License-Identifier: MIT

package influence

import "errors"

// Sentinel errors for influence computations. Cycles are never errors:
// the cycle guard truncates silently.
var (
	// ErrGraphNil is returned when a nil graph is passed to the engine.
	ErrGraphNil = errors.New("influence: graph is nil")

	// ErrMissingAttribute indicates a node value or an edge weight was absent
	// when the traversal needed it. Errors carrying it also match
	// core.ErrMissingAttribute.
	ErrMissingAttribute = errors.New("influence: missing attribute")

	// ErrZeroGraphValue indicates the graph's total value is 0, so the
	// cumulative percentage is undefined.
	ErrZeroGraphValue = errors.New("influence: total graph value is zero")

	// ErrSingularMatrix indicates I−A is not invertible. Errors carrying it
	// also match matrix.ErrSingular.
	ErrSingularMatrix = errors.New("influence: I-A is singular")

	// ErrStaleActive indicates the on-path set was not empty at the start or
	// end of a pass.
	ErrStaleActive = errors.New("influence: stale active set")

	// ErrDepthLimit is returned when a path grows deeper than WithMaxDepth.
	ErrDepthLimit = errors.New("influence: depth limit exceeded")

	// ErrStepLimit is returned when a pass crawls more edges than WithMaxSteps.
	ErrStepLimit = errors.New("influence: step limit exceeded")
)
