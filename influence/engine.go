// SPDX-License-Identifier: MIT

package influence

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/influence/core"
)

var tracer = otel.Tracer("influence.engine")

// Engine computes influence indices over a GraphView and stores them in its
// State. An Engine runs one pass at a time and is not safe for concurrent use.
type Engine struct {
	state  *State
	opts   Options
	active map[string]struct{} // nodes on the current path; empty between passes
}

// NewEngine returns an Engine writing into state (a fresh State if nil).
func NewEngine(state *State, opts ...Option) *Engine {
	if state == nil {
		state = NewState()
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Engine{state: state, opts: o, active: make(map[string]struct{})}
}

// State returns the annotations the engine writes into.
func (e *Engine) State() *State { return e.state }

// Active returns the nodes currently on the traversal path, sorted.
// Outside a pass the result is always empty.
func (e *Engine) Active() []string {
	out := make([]string, 0, len(e.active))
	for id := range e.active {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Compute runs the full pass: every node of g, in sorted order, is a source
// and its influence index is stored in the State. It returns the indices of
// this pass keyed by node ID.
//
// Errors:
//   - ErrGraphNil, ErrStaleActive.
//   - ErrMissingAttribute for an unset value or weight on a crawled path.
//   - ErrDepthLimit, ErrStepLimit, ctx.Err().
func (e *Engine) Compute(ctx context.Context, g GraphView) (map[string]float64, error) {
	return e.run(ctx, g, false)
}

// ComputeRestricted runs the restricted pass: only tagged, unconsumed nodes
// are sources, and every tagged node stops propagation through it.
func (e *Engine) ComputeRestricted(ctx context.Context, g GraphView) (map[string]float64, error) {
	return e.run(ctx, g, true)
}

func (e *Engine) run(ctx context.Context, g GraphView, restricted bool) (map[string]float64, error) {
	if ctx == nil {
		ctx = e.opts.Ctx
	}
	if isNil(g) {
		return nil, ErrGraphNil
	}

	var sources []string
	if restricted {
		sources = e.state.TaggedIDs()
	} else {
		sources = g.Vertices()
	}

	ctx, span := tracer.Start(ctx, "influence.Compute",
		trace.WithAttributes(
			attribute.Bool("influence.restricted", restricted),
			attribute.Int("influence.sources", len(sources)),
		),
	)
	defer span.End()

	if len(e.active) != 0 {
		err := fmt.Errorf("%w: %d node(s) at pass start", ErrStaleActive, len(e.active))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	w := &walker{
		ctx:        ctx,
		graph:      g,
		state:      e.state,
		opts:       e.opts,
		active:     e.active,
		restricted: restricted,
	}
	out := make(map[string]float64, len(sources))
	for _, id := range sources {
		e.state.index[id] = 0
		idx, err := w.source(id)
		if err == nil {
			err = ctx.Err()
		}
		if err != nil {
			clear(e.active)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			e.opts.Logger.Debug("influence: pass aborted",
				slog.String("source", id),
				slog.Bool("restricted", restricted),
				slog.String("error", err.Error()),
			)

			return out, err
		}
		e.state.index[id] = idx
		out[id] = idx
		e.opts.Observer.SourceDone(id, idx)
	}

	if len(e.active) != 0 {
		err := fmt.Errorf("%w: %d node(s) at pass end", ErrStaleActive, len(e.active))
		clear(e.active)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return out, err
	}

	span.AddEvent("pass_complete", trace.WithAttributes(
		attribute.Int("influence.steps", w.steps),
	))
	e.opts.Logger.Debug("influence: pass complete",
		slog.Bool("restricted", restricted),
		slog.Int("sources", len(sources)),
		slog.Int("steps", w.steps),
	)

	return out, nil
}

// frame is one open node of the explicit traversal stack.
type frame struct {
	node   string       // node whose outgoing edges are crawled
	weight float64      // product of edge weights from the source to node
	edges  []*core.Edge // outgoing edges of node
	next   int          // cursor into edges
	depth  int          // edges between the source and node
}

// walker carries the per-pass traversal state.
type walker struct {
	ctx        context.Context
	graph      GraphView
	state      *State
	opts       Options
	active     map[string]struct{}
	restricted bool
	steps      int
}

// source returns the influence index of id: the sum of pathWeight × value
// over every successor reached along a path that repeats no node, does not
// cross a barrier, and starts at id.
//
// Frames are visited in the same pre-order as a recursive fold over the
// outgoing edges, so the floating-point accumulation order is identical.
func (w *walker) source(id string) (float64, error) {
	edges, err := w.graph.Neighbors(id)
	if err != nil {
		return 0, fmt.Errorf("influence: neighbors of %q: %w", id, err)
	}

	w.active[id] = struct{}{}
	stack := []frame{{node: id, weight: 1.0, edges: edges}}
	acc := 0.0

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.edges) {
			delete(w.active, top.node)
			stack = stack[:len(stack)-1]
			continue
		}
		edge := top.edges[top.next]
		top.next++

		w.steps++
		if w.opts.MaxSteps >= 0 && w.steps > w.opts.MaxSteps {
			return 0, fmt.Errorf("%w: %d steps from %q", ErrStepLimit, w.opts.MaxSteps, id)
		}

		succ := edge.To
		if w.restricted && w.state.IsTagged(succ) {
			w.opts.Observer.Barrier(id, succ)
			continue
		}
		if _, onPath := w.active[succ]; onPath {
			w.opts.Observer.CycleTruncated(id, succ)
			continue
		}

		depth := top.depth + 1
		if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
			return 0, fmt.Errorf("%w: %d edges from %q", ErrDepthLimit, w.opts.MaxDepth, id)
		}
		if !edge.HasWeight {
			return 0, fmt.Errorf("influence: edge %s (%s→%s) has no weight: %w: %w",
				edge.ID, edge.From, edge.To, ErrMissingAttribute, core.ErrMissingAttribute)
		}
		value, err := w.graph.Value(succ)
		if err != nil {
			return 0, wrapMissing(fmt.Sprintf("value of %q", succ), err)
		}

		weight := edge.Weight * top.weight
		contribution := weight * value
		acc += contribution
		w.opts.Observer.Contribution(id, succ, depth, contribution)

		select {
		case <-w.ctx.Done():
			return 0, w.ctx.Err()
		default:
		}

		next, err := w.graph.Neighbors(succ)
		if err != nil {
			return 0, fmt.Errorf("influence: neighbors of %q: %w", succ, err)
		}
		w.active[succ] = struct{}{}
		stack = append(stack, frame{node: succ, weight: weight, edges: next, depth: depth})
	}

	return acc, nil
}
