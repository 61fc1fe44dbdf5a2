package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/influence/core"
	"github.com/katalvlaran/influence/dfs"
	"github.com/katalvlaran/influence/influence"
	"github.com/katalvlaran/influence/metrics"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Full report: every index, the closed form, the cumulative index and traversal metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context())
		},
	}
}

func (a *app) run(ctx context.Context) error {
	g, err := a.graph()
	if err != nil {
		return err
	}
	rec := metrics.NewRecorder()
	e := a.engine(ctx, rec)

	idx, err := e.Compute(ctx, g)
	if err != nil {
		return fmt.Errorf("compute: %w", err)
	}
	a.p.heading("Influence index")
	if err := indexTable(a, g, idx); err != nil {
		return err
	}
	a.p.note("total %s over %d nodes", num(e.State().Total()), len(idx))

	acyclic, err := dfs.IsAcyclic(g, dfs.WithContext(ctx))
	if err != nil {
		return err
	}
	an, err := influence.AnalyticalGraph(ctx, g, a.logger)
	switch {
	case errors.Is(err, influence.ErrSingularMatrix):
		a.p.warning("closed form: I - A is singular")
	case err != nil:
		return fmt.Errorf("closed form: %w", err)
	default:
		cmp := influence.Compare(idx, an.ByVertex, a.cfg.Tolerance)
		a.p.note("closed form total %s, max delta %s at %s, agree=%t",
			num(an.Total), num(cmp.MaxDelta), orDash(cmp.Worst), cmp.Agree)
	}
	if !acyclic {
		a.p.note("network has cycles: the traversal truncates them, the closed form does not")
	}

	e.State().Reset(g)
	res, err := e.ComputeCumulative(ctx, g, a.cfg.Category)
	if err != nil {
		return fmt.Errorf("cumulative %s: %w", a.cfg.Category, err)
	}
	a.p.heading("Cumulative index")
	a.p.grid(cumulativeHeaders, [][]string{cumulativeRow(res)})

	samples, err := rec.Snapshot()
	if err != nil {
		return err
	}
	a.p.heading("Traversal metrics")
	rows := make([][]string, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, []string{s.Name, num(s.Value)})
	}
	a.p.grid([]string{"METRIC", "VALUE"}, rows)

	return nil
}

// indexTable prints one row per vertex of g with its index from idx.
func indexTable(a *app, g *core.Graph, idx map[string]float64) error {
	rows := make([][]string, 0, len(idx))
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return err
		}
		rows = append(rows, []string{id, orDash(v.Category), optNum(v.Value, v.HasValue), num(idx[id])})
	}
	a.p.grid([]string{"NODE", "CATEGORY", "VALUE", "INDEX"}, rows)

	return nil
}

var cumulativeHeaders = []string{"CATEGORY", "TOTAL", "COUNT", "GRAPH VALUE", "PERCENT"}

func cumulativeRow(r influence.CumulativeResult) []string {
	return []string{r.Category, num(r.Total), fmt.Sprint(r.Count), num(r.TotalValue), num(r.Percent)}
}
