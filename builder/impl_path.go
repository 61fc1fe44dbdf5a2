// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// impl_path.go - directed path and cycle constructors.

package builder

import "github.com/katalvlaran/influence/core"

const (
	methodPath  = "Path"
	methodCycle = "Cycle"

	minPathNodes  = 2
	minCycleNodes = 2
)

// Path builds the directed path 0→1→…→n-1 (n ≥ 2).
// Edge emission order: ascending i. Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return builderErrorf(methodPath, "n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds the directed cycle 0→1→…→n-1→0 (n ≥ 2; n = 2 is the two-cycle).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return builderErrorf(methodCycle, "n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
