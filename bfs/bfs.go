// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/influence/core"
)

type queueItem struct {
	id     string
	depth  int
	parent string
}

// walker holds the BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	reverse map[string][]string // to → from, built only for Backward
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS searches g from a single start vertex.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	return Reach(g, []string{start}, opts...)
}

// Reach runs a multi-source BFS: every start is enqueued at depth 0 (in
// sorted order) and the search expands from all of them at once.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, errors
// returned by OnVisit, and ctx.Err() on cancellation.
func Reach(g *core.Graph, starts []string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	roots := append([]string(nil), starts...)
	sort.Strings(roots)
	for _, id := range roots {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, id)
		}
	}

	w := &walker{
		graph:   g,
		opts:    o,
		visited: make(map[string]bool, g.VertexCount()),
		res: &BFSResult{
			Depth:  make(map[string]int, g.VertexCount()),
			Parent: make(map[string]string),
		},
	}
	if o.Direction == Backward {
		w.reverse = reverseAdjacency(g)
	}
	for _, id := range roots {
		if !w.visited[id] {
			w.enqueue(id, 0, "")
		}
	}
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// reverseAdjacency maps each vertex to its predecessors in edge order.
func reverseAdjacency(g *core.Graph) map[string][]string {
	rev := make(map[string][]string)
	for _, e := range g.Edges() {
		rev[e.To] = append(rev[e.To], e.From)
	}

	return rev
}

// enqueue marks id visited at depth d, records its parent, and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) neighbors(id string) ([]string, error) {
	if w.opts.Direction == Backward {
		return w.reverse[id], nil
	}
	edges, err := w.graph.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out, nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nbrs, err := w.neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range nbrs {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}

	return nil
}
