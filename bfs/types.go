// Package bfs provides breadth-first reachability over a core.Graph,
// following edges forward (successors) or backward (predecessors).
package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStartVertexNotFound: a start ID is not a vertex of the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil: nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation: an Option was given an out-of-domain argument.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors wraps a neighbor lookup failure.
	ErrNeighbors = errors.New("bfs: neighbor lookup failed")
)

// Direction selects which edge endpoint the search follows.
type Direction int

const (
	// Forward follows edges from→to: the result is what the starts reach.
	Forward Direction = iota
	// Backward follows edges to→from: the result is what reaches the starts.
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}

	return "forward"
}

// Option adjusts a BFSOptions. Bad arguments are not applied; the first one
// is kept and returned by BFS or Reach as ErrOptionViolation.
type Option func(*BFSOptions)

// BFSOptions is the resolved configuration of one search.
type BFSOptions struct {
	Ctx       context.Context
	Direction Direction

	// OnVisit runs as each vertex is dequeued; a non-nil error stops the
	// search and is returned as is.
	OnVisit func(id string, depth int) error

	// MaxDepth bounds the edge distance from the starts; 0 means unbounded.
	MaxDepth int

	// FilterNeighbor returning false keeps the search from stepping curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions: Background context, Forward, unbounded, every neighbor
// accepted, OnVisit a no-op.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		Direction:      Forward,
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(string, string) bool { return true },
	}
}

func (o *BFSOptions) reject(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithContext makes the search stop with ctx.Err() once ctx is done. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection picks Forward or Backward.
func WithDirection(d Direction) Option {
	return func(o *BFSOptions) {
		switch d {
		case Forward, Backward:
			o.Direction = d
		default:
			o.reject("unknown direction %d", int(d))
		}
	}
}

// WithOnVisit installs the visit hook. nil is ignored.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the search to d edges from the starts (0: unbounded).
// A negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.reject("MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs the neighbor predicate. nil is ignored.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult captures the outcome of a search.
type BFSResult struct {
	// Order lists vertices in visit order; the starts come first.
	Order []string

	// Depth maps each reached vertex to its edge distance from the nearest start.
	Depth map[string]int

	// Parent maps each non-start vertex to the vertex it was discovered from.
	Parent map[string]string
}

// Reached reports whether id was visited.
func (r *BFSResult) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// Set returns the visited vertices as a set.
func (r *BFSResult) Set() map[string]bool {
	out := make(map[string]bool, len(r.Order))
	for _, id := range r.Order {
		out[id] = true
	}

	return out
}

// PathTo returns the discovery path from a start to dest, both included.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: %q not reached", dest)
	}
	path := make([]string, r.Depth[dest]+1)
	cur := dest
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
