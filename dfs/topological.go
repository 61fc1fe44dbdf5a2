// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/influence/core"
)

// topoFrame is an open vertex of the topological walk.
type topoFrame struct {
	id    string
	edges []*core.Edge
	next  int
}

// TopologicalSort orders the vertices of g so that every edge points from an
// earlier vertex to a later one. Roots are taken in ascending ID order and
// edges in Neighbors order, so the result is deterministic.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrCycleDetected naming the back-edge; self-loops count.
//   - ErrNeighborFetch, ctx.Err() from WithContext.
func TopologicalSort(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := applyOptions(opts)

	verts := g.Vertices()
	color := make(map[string]int, len(verts))
	post := make([]string, 0, len(verts))

	var stack []topoFrame
	open := func(id string) error {
		select {
		case <-o.ctx.Done():
			return o.ctx.Err()
		default:
		}
		edges, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		color[id] = Gray
		stack = append(stack, topoFrame{id: id, edges: edges})

		return nil
	}

	for _, root := range verts {
		if color[root] != White {
			continue
		}
		if err := open(root); err != nil {
			return nil, err
		}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.edges) {
				color[top.id] = Black
				post = append(post, top.id)
				stack = stack[:len(stack)-1]
				continue
			}
			e := top.edges[top.next]
			top.next++

			switch color[e.To] {
			case Gray:
				return nil, fmt.Errorf("%w: back-edge %s→%s", ErrCycleDetected, e.From, e.To)
			case White:
				if err := open(e.To); err != nil {
					return nil, err
				}
			}
		}
	}

	order := make([]string, len(post))
	for i, id := range post {
		order[len(post)-1-i] = id
	}

	return order, nil
}

// IsAcyclic reports whether g has no directed cycle.
func IsAcyclic(g *core.Graph, opts ...Option) (bool, error) {
	_, err := TopologicalSort(g, opts...)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrCycleDetected):
		return false, nil
	default:
		return false, err
	}
}
