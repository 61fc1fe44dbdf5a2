// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// impl_random.go - Erdős–Rényi-like random directed graphs.

package builder

import "github.com/katalvlaran/influence/core"

const (
	methodRandomDAG    = "RandomDAG"
	methodRandomSparse = "RandomSparse"

	minRandomVertices = 1
	probMin           = 0.0
	probMax           = 1.0
)

// RandomDAG builds an acyclic graph on n vertices: each ordered pair i<j
// becomes the edge i→j with probability p. Requires an RNG when 0 < p < 1.
// Pair order is (i asc, j asc), so a fixed seed gives a fixed graph.
// Complexity: O(n^2) pair checks.
func RandomDAG(n int, p float64) Constructor {
	return randomGraph(methodRandomDAG, n, p, true)
}

// RandomSparse is RandomDAG over every ordered pair i≠j, so cycles of any
// length may appear.
func RandomSparse(n int, p float64) Constructor {
	return randomGraph(methodRandomSparse, n, p, false)
}

func randomGraph(method string, n int, p float64, acyclic bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return builderErrorf(method, "n=%d < min=%d: %w", n, minRandomVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return builderErrorf(method, "p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return builderErrorf(method, "rng is required: %w", ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, method, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			start := 0
			if acyclic {
				start = i + 1
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if p < probMax && (p == probMin || cfg.rng.Float64() >= p) {
					continue
				}
				if err := addEdge(g, cfg, method, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
