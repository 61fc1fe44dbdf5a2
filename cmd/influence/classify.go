package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/influence/bowtie"
	"github.com/katalvlaran/influence/network"
)

func newClassifyCmd(a *app) *cobra.Command {
	var (
		apply bool
		write string
	)
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Bowtie decomposition (IN, SCC, OUT, TT, OCC) around the largest core",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			res, err := bowtie.Classify(cmd.Context(), g)
			if err != nil {
				return err
			}
			miss, err := bowtie.Mismatches(g, res)
			if err != nil {
				return err
			}

			counts := res.Counts()
			rows := make([][]string, 0, len(bowtie.Components))
			for _, label := range bowtie.Components {
				rows = append(rows, []string{label, fmt.Sprint(counts[label]), strings.Join(res.Members(label), " ")})
			}
			a.p.heading("Bowtie components")
			a.p.grid([]string{"COMPONENT", "SIZE", "NODES"}, rows)
			a.p.note("%d strongly connected components, %d node(s) differ from the stored category", res.Components, len(miss))

			if !apply && write == "" {
				return nil
			}
			n, err := bowtie.Apply(g, res)
			if err != nil {
				return err
			}
			a.p.note("relabelled %d node(s)", n)
			if write == "" {
				return nil
			}

			f, err := network.FromGraph("bowtie", g)
			if err != nil {
				return err
			}
			fh, err := os.Create(write)
			if err != nil {
				return fmt.Errorf("write %s: %w", write, err)
			}
			defer fh.Close()
			if err := network.Encode(fh, f); err != nil {
				return fmt.Errorf("write %s: %w", write, err)
			}
			a.p.note("wrote %s", write)

			return nil
		},
	}
	cmd.Flags().BoolVar(&apply, "apply", false, "store the computed labels as node categories")
	cmd.Flags().StringVar(&write, "write", "", "write the relabelled network to this file (implies --apply)")

	return cmd
}
