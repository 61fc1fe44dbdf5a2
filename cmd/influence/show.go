package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	show := &cobra.Command{
		Use:   "show",
		Short: "Inspect the loaded network",
	}
	show.AddCommand(
		&cobra.Command{
			Use:   "nodes",
			Short: "List nodes with value and category",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				g, err := a.graph()
				if err != nil {
					return err
				}
				rows := make([][]string, 0, g.VertexCount())
				for _, id := range g.Vertices() {
					v, err := g.Vertex(id)
					if err != nil {
						return err
					}
					out, _ := g.OutDegree(id)
					rows = append(rows, []string{id, orDash(v.Category), optNum(v.Value, v.HasValue), fmt.Sprint(out)})
				}
				a.p.grid([]string{"NODE", "CATEGORY", "VALUE", "OUT"}, rows)

				return nil
			},
		},
		&cobra.Command{
			Use:   "edges",
			Short: "List edges in creation order",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				g, err := a.graph()
				if err != nil {
					return err
				}
				edges := g.Edges()
				rows := make([][]string, 0, len(edges))
				for _, e := range edges {
					rows = append(rows, []string{e.ID, e.From, e.To, optNum(e.Weight, e.HasWeight)})
				}
				a.p.grid([]string{"ID", "FROM", "TO", "WEIGHT"}, rows)

				return nil
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Counts, totals and categories",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				g, err := a.graph()
				if err != nil {
					return err
				}
				st := g.Stats()
				cats := make([]string, 0, len(st.Categories))
				for c, n := range st.Categories {
					cats = append(cats, fmt.Sprintf("%s=%d", orDash(c), n))
				}
				sort.Strings(cats)
				a.p.grid([]string{"STAT", "VALUE"}, [][]string{
					{"vertices", fmt.Sprint(st.VertexCount)},
					{"edges", fmt.Sprint(st.EdgeCount)},
					{"unvalued vertices", fmt.Sprint(st.UnvaluedVertices)},
					{"unweighted edges", fmt.Sprint(st.UnweightedEdges)},
					{"total value", num(st.TotalValue)},
					{"categories", strings.Join(cats, " ")},
				})

				return nil
			},
		},
		&cobra.Command{
			Use:   "component CATEGORY",
			Short: "List the nodes whose category is CATEGORY",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				g, err := a.graph()
				if err != nil {
					return err
				}
				ids := g.VerticesByCategory(args[0])
				a.p.heading(fmt.Sprintf("%s (%d)", args[0], len(ids)))
				a.p.line(strings.Join(ids, " "))

				return nil
			},
		},
	)

	return show
}
