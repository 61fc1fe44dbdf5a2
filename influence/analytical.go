// SPDX-License-Identifier: MIT

package influence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/influence/core"
	"github.com/katalvlaran/influence/matrix"
)

// AnalyticalResult is the closed-form centrality c = (I−A)⁻¹·A·v.
type AnalyticalResult struct {
	// Vertices lists node IDs in matrix index order; nil for raw Analytical calls.
	Vertices []string

	// Centrality holds c[i] in matrix index order.
	Centrality []float64

	// ByVertex maps node ID to c[i]; nil for raw Analytical calls.
	ByVertex map[string]float64

	// Total is Σ c[i].
	Total float64
}

// Analytical computes c = (I−A)⁻¹·A·v and its total.
//
// The result sums value over every walk of every length, cycles included,
// and exists only when the spectral radius of A is below 1.
//
// Errors:
//   - matrix dimension, nil and ErrNaNInf errors for malformed input.
//   - ErrSingularMatrix (also matching matrix.ErrSingular) when I−A is not invertible.
func Analytical(a matrix.Matrix, v []float64) (AnalyticalResult, error) {
	var res AnalyticalResult

	id, err := matrix.IdentityLike(a)
	if err != nil {
		return res, fmt.Errorf("influence: analytical: %w", err)
	}
	if err = matrix.ValidateVecLen(v, a.Rows()); err != nil {
		return res, fmt.Errorf("influence: analytical: %w", err)
	}
	if err = matrix.ValidateFinite(v); err != nil {
		return res, fmt.Errorf("influence: analytical: %w", err)
	}
	m, err := matrix.Sub(id, a)
	if err != nil {
		return res, fmt.Errorf("influence: analytical: %w", err)
	}
	inv, err := matrix.Inverse(m)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return res, fmt.Errorf("influence: analytical: %w: %w", ErrSingularMatrix, err)
		}

		return res, fmt.Errorf("influence: analytical: %w", err)
	}
	walks, err := matrix.Mul(inv, a)
	if err != nil {
		return res, fmt.Errorf("influence: analytical: %w", err)
	}
	c, err := matrix.MatVec(walks, v)
	if err != nil {
		return res, fmt.Errorf("influence: analytical: %w", err)
	}

	res.Centrality = c
	res.Total = matrix.VecSum(c)

	return res, nil
}

// AnalyticalGraph builds the adjacency matrix and value vector of g and
// runs Analytical over them. An empty graph yields an empty result.
//
// Errors:
//   - ErrGraphNil.
//   - ErrMissingAttribute for an unset value or weight anywhere in g.
//   - ErrSingularMatrix.
func AnalyticalGraph(ctx context.Context, g *core.Graph, logger *slog.Logger) (AnalyticalResult, error) {
	var res AnalyticalResult
	if g == nil {
		return res, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = slog.Default()
	}

	_, span := tracer.Start(ctx, "influence.Analytical",
		trace.WithAttributes(
			attribute.Int("influence.vertices", g.VertexCount()),
			attribute.Int("influence.edges", g.EdgeCount()),
		),
	)
	defer span.End()

	fail := func(err error) (AnalyticalResult, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return res, err
	}

	if g.VertexCount() == 0 {
		span.AddEvent("empty_graph")
		res.ByVertex = map[string]float64{}

		return res, nil
	}

	am, err := matrix.NewAdjacencyMatrix(g)
	if err != nil {
		return fail(wrapMissing("adjacency", err))
	}
	v, err := matrix.ValueVector(g, am)
	if err != nil {
		return fail(wrapMissing("value vector", err))
	}

	res, err = Analytical(am.Mat, v)
	if err != nil {
		return fail(err)
	}
	res.Vertices = am.VertexIDs()
	res.ByVertex = make(map[string]float64, len(res.Vertices))
	for i, id := range res.Vertices {
		res.ByVertex[id] = res.Centrality[i]
	}

	span.SetAttributes(attribute.Float64("influence.total", res.Total))
	logger.Debug("influence: analytical centrality",
		slog.Int("vertices", len(res.Vertices)),
		slog.Float64("total", res.Total),
	)

	return res, nil
}
