// SPDX-License-Identifier: MIT

package influence

import (
	"math"
	"sort"
)

// DefaultTolerance is the agreement bound Compare uses for tol <= 0.
const DefaultTolerance = 1e-9

// Comparison reports how a recursive result differs from an analytical one.
type Comparison struct {
	// Deltas maps node ID to |recursive − analytical|.
	Deltas map[string]float64

	// MaxDelta is the largest delta; Worst names its node ("" if none).
	MaxDelta float64
	Worst    string

	// Tolerance is the bound that was applied.
	Tolerance float64

	// Agree reports MaxDelta <= Tolerance.
	Agree bool
}

// Compare checks recursive against analytical node by node. A node present
// on only one side counts as 0 on the other.
func Compare(recursive, analytical map[string]float64, tol float64) Comparison {
	if tol <= 0 {
		tol = DefaultTolerance
	}

	ids := make([]string, 0, len(recursive))
	for id := range recursive {
		ids = append(ids, id)
	}
	for id := range analytical {
		if _, ok := recursive[id]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	cmp := Comparison{Deltas: make(map[string]float64, len(ids)), Tolerance: tol}
	for _, id := range ids {
		d := math.Abs(recursive[id] - analytical[id])
		cmp.Deltas[id] = d
		if d > cmp.MaxDelta {
			cmp.MaxDelta, cmp.Worst = d, id
		}
	}
	cmp.Agree = cmp.MaxDelta <= tol

	return cmp
}
