// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// api.go - thin public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs, options, seed and constructor order give identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/influence/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors (no panics).
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts vertices 0..n-1 with values and categories from cfg.
// Re-adding an existing ID updates its attributes.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		opts := []core.VertexOption{core.WithValue(cfg.valueFn(cfg.rng))}
		if cfg.categoryFn != nil {
			opts = append(opts, core.WithCategory(cfg.categoryFn(i)))
		}
		if err := g.AddVertex(id, opts...); err != nil {
			return builderErrorf(method, "AddVertex(%s): %w", id, err)
		}
	}

	return nil
}

// addEdge inserts u→v with a weight drawn from cfg.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return builderErrorf(method, "AddEdge(%s→%s, w=%g): %w", u, v, w, err)
	}

	return nil
}
