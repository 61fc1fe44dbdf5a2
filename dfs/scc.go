// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/influence/core"
)

// sccFrame is one open vertex of the explicit Tarjan stack.
type sccFrame struct {
	id    string
	edges []*core.Edge
	next  int
}

// tarjan carries the lowlink bookkeeping of one StronglyConnected run.
type tarjan struct {
	graph   *core.Graph
	opts    options
	counter int
	index   map[string]int
	low     map[string]int
	onStack map[string]bool
	stack   []string
	comps   [][]string
}

// StronglyConnected returns the strongly connected components of g.
//
// Components come out in reverse topological order of the condensation:
// a component is emitted only after every component it reaches. Vertex IDs
// inside each component are sorted. Every vertex belongs to exactly one
// component; an isolated vertex is a component of size one.
func StronglyConnected(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	verts := g.Vertices()
	t := &tarjan{
		graph:   g,
		opts:    applyOptions(opts),
		index:   make(map[string]int, len(verts)),
		low:     make(map[string]int, len(verts)),
		onStack: make(map[string]bool, len(verts)),
	}
	for _, v := range verts {
		if _, seen := t.index[v]; seen {
			continue
		}
		if err := t.strongConnect(v); err != nil {
			return nil, err
		}
	}

	return t.comps, nil
}

// discover assigns id its index and pushes it on the component stack.
func (t *tarjan) discover(id string) (sccFrame, error) {
	edges, err := t.graph.Neighbors(id)
	if err != nil {
		return sccFrame{}, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	t.index[id] = t.counter
	t.low[id] = t.counter
	t.counter++
	t.stack = append(t.stack, id)
	t.onStack[id] = true

	return sccFrame{id: id, edges: edges}, nil
}

func (t *tarjan) strongConnect(root string) error {
	f, err := t.discover(root)
	if err != nil {
		return err
	}
	call := []sccFrame{f}

	for len(call) > 0 {
		select {
		case <-t.opts.ctx.Done():
			return t.opts.ctx.Err()
		default:
		}

		top := &call[len(call)-1]
		if top.next < len(top.edges) {
			to := top.edges[top.next].To
			top.next++
			if _, seen := t.index[to]; !seen {
				child, err := t.discover(to)
				if err != nil {
					return err
				}
				call = append(call, child)
			} else if t.onStack[to] && t.index[to] < t.low[top.id] {
				t.low[top.id] = t.index[to]
			}
			continue
		}

		// All edges of top explored: close it and propagate lowlink.
		id := top.id
		call = call[:len(call)-1]
		if len(call) > 0 {
			parent := call[len(call)-1].id
			if t.low[id] < t.low[parent] {
				t.low[parent] = t.low[id]
			}
		}
		if t.low[id] == t.index[id] {
			t.emit(id)
		}
	}

	return nil
}

// emit pops the component rooted at id off the stack.
func (t *tarjan) emit(id string) {
	var comp []string
	for {
		n := len(t.stack) - 1
		w := t.stack[n]
		t.stack = t.stack[:n]
		t.onStack[w] = false
		comp = append(comp, w)
		if w == id {
			break
		}
	}
	sort.Strings(comp)
	t.comps = append(t.comps, comp)
}
