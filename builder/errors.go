// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewVertices reports a Path, Cycle or random size below its minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability reports an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource reports RandomDAG or RandomSparse without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed wraps a nil Constructor or a rejected core mutation.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// builderErrorf renders "<method>: <format>" keeping any %w in format.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf(method+": "+format, args...)
}
