// SPDX-License-Identifier: MIT

package influence

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CumulativeResult is the aggregate of one cumulative evaluation.
type CumulativeResult struct {
	// Category is the tagged category ("" when EvaluateCumulative is called directly).
	Category string

	// Total is the sum of the positive indices of the counted tagged nodes.
	Total float64

	// Count is the number of tagged, unconsumed nodes visited by the evaluation.
	Count int

	// TotalValue is the sum of every node value in the graph.
	TotalValue float64

	// Percent is Total / TotalValue × 100.
	Percent float64
}

// EvaluateCumulative aggregates the indices of the tagged nodes of g.
//
// Every tagged, unconsumed node is counted; those with a positive index add
// it to Total and become consumed, so a second call in the same tagging pass
// adds nothing. TotalValue covers every node of g regardless of tags.
//
// Errors:
//   - ErrGraphNil, ErrMissingAttribute for an unset node value.
//   - ErrZeroGraphValue when TotalValue is 0; nothing is consumed then.
func (s *State) EvaluateCumulative(g GraphView) (CumulativeResult, error) {
	var res CumulativeResult
	if isNil(g) {
		return res, ErrGraphNil
	}

	for _, id := range g.Vertices() {
		v, err := g.Value(id)
		if err != nil {
			return res, wrapMissing(fmt.Sprintf("value of %q", id), err)
		}
		res.TotalValue += v
	}
	if res.TotalValue == 0 {
		return res, ErrZeroGraphValue
	}

	for _, id := range s.TaggedIDs() {
		res.Count++
		if idx := s.index[id]; idx > 0 {
			res.Total += idx
			s.consumed[id] = true
		}
	}
	res.Percent = res.Total / res.TotalValue * 100

	return res, nil
}

// ComputeCumulative tags every node of category, runs the restricted pass
// and evaluates the tagged subset.
func (e *Engine) ComputeCumulative(ctx context.Context, g GraphView, category string) (CumulativeResult, error) {
	res := CumulativeResult{Category: category}
	if ctx == nil {
		ctx = e.opts.Ctx
	}
	if isNil(g) {
		return res, ErrGraphNil
	}

	ctx, span := tracer.Start(ctx, "influence.ComputeCumulative",
		trace.WithAttributes(attribute.String("influence.category", category)),
	)
	defer span.End()

	fail := func(err error) (CumulativeResult, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return res, err
	}

	n, err := e.state.Tag(g, category)
	if err != nil {
		return fail(err)
	}
	span.AddEvent("tagged", trace.WithAttributes(attribute.Int("influence.tagged", n)))

	if _, err = e.ComputeRestricted(ctx, g); err != nil {
		return fail(err)
	}

	agg, err := e.state.EvaluateCumulative(g)
	if err != nil {
		return fail(err)
	}
	agg.Category = category
	span.SetAttributes(
		attribute.Int("influence.count", agg.Count),
		attribute.Float64("influence.total", agg.Total),
	)
	e.opts.Logger.Info("influence: cumulative index",
		slog.String("category", category),
		slog.Int("tagged", n),
		slog.Int("count", agg.Count),
		slog.Float64("total", agg.Total),
		slog.Float64("percent", agg.Percent),
	)

	return agg, nil
}
