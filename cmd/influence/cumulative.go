package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/influence/influence"
)

func newCumulativeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cumulative [CATEGORY...]",
		Short: "Cumulative index of one or more categories (default: --category)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{a.cfg.Category}
			}
			g, err := a.graph()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			e := a.engine(ctx)
			rows := make([][]string, 0, len(args))
			for _, cat := range args {
				e.State().Reset(g)
				res, err := e.ComputeCumulative(ctx, g, cat)
				if err != nil {
					return fmt.Errorf("cumulative %s: %w", cat, err)
				}
				rows = append(rows, cumulativeRow(res))
			}
			a.p.heading("Cumulative index")
			a.p.grid(cumulativeHeaders, rows)

			return nil
		},
	}
}

func newAnalyticalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analytical",
		Short: "Closed-form centrality (I - A)^-1 A v",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			an, err := influence.AnalyticalGraph(cmd.Context(), g, a.logger)
			if err != nil {
				return fmt.Errorf("closed form: %w", err)
			}
			rows := make([][]string, 0, len(an.Vertices))
			for i, id := range an.Vertices {
				rows = append(rows, []string{id, num(an.Centrality[i])})
			}
			a.p.heading("Closed-form centrality")
			a.p.grid([]string{"NODE", "CENTRALITY"}, rows)
			a.p.note("total %s", num(an.Total))

			return nil
		},
	}
}
