// SPDX-License-Identifier: MIT

// Package bowtie classifies the vertices of a directed graph into the
// bowtie components around its largest strongly connected core:
//
//	IN   reaches the core but is not reachable from it
//	SCC  the core itself
//	OUT  reachable from the core but does not reach it
//	TT   tubes and tendrils: reached from IN or reaching OUT, outside the above
//	OCC  everything else (disconnected from the bowtie)
//
// The labels are the categories the influence engine tags on; Apply writes
// them onto the graph.
package bowtie

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/influence/bfs"
	"github.com/katalvlaran/influence/core"
	"github.com/katalvlaran/influence/dfs"
)

// Component labels.
const (
	In           = "IN"
	Core         = "SCC"
	Out          = "OUT"
	Tube         = "TT"
	Disconnected = "OCC"
)

// Components lists the labels in reporting order.
var Components = []string{In, Core, Out, Tube, Disconnected}

// ErrGraphNil is returned for a nil graph.
var ErrGraphNil = errors.New("bowtie: graph is nil")

// Result is a bowtie decomposition.
type Result struct {
	// Label maps every vertex to one of the component labels.
	Label map[string]string

	// Core lists the vertices of the largest strongly connected component, sorted.
	Core []string

	// Components is the number of strongly connected components in the graph.
	Components int
}

// Members returns the vertices labelled label, sorted.
func (r *Result) Members(label string) []string {
	var out []string
	for id, l := range r.Label {
		if l == label {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// Counts returns the size of every component label (zero included).
func (r *Result) Counts() map[string]int {
	out := make(map[string]int, len(Components))
	for _, l := range Components {
		out[l] = 0
	}
	for _, l := range r.Label {
		out[l]++
	}

	return out
}

// Classify computes the bowtie decomposition of g.
//
// The core is the largest strongly connected component; ties go to the
// component whose smallest vertex ID sorts first. An empty graph yields an
// empty Result.
func Classify(ctx context.Context, g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	comps, err := dfs.StronglyConnected(g, dfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("bowtie: components: %w", err)
	}
	res := &Result{Label: make(map[string]string, g.VertexCount()), Components: len(comps)}
	if len(comps) == 0 {
		return res, nil
	}
	res.Core = largest(comps)

	reach := func(starts []string, d bfs.Direction) (map[string]bool, error) {
		r, err := bfs.Reach(g, starts, bfs.WithContext(ctx), bfs.WithDirection(d))
		if err != nil {
			return nil, fmt.Errorf("bowtie: %s reach: %w", d, err)
		}
		return r.Set(), nil
	}

	upstream, err := reach(res.Core, bfs.Backward)
	if err != nil {
		return nil, err
	}
	downstream, err := reach(res.Core, bfs.Forward)
	if err != nil {
		return nil, err
	}

	coreSet := make(map[string]bool, len(res.Core))
	for _, id := range res.Core {
		coreSet[id] = true
	}
	var ins, outs []string
	for _, id := range g.Vertices() {
		switch {
		case coreSet[id]:
			res.Label[id] = Core
		case upstream[id]:
			res.Label[id] = In
			ins = append(ins, id)
		case downstream[id]:
			res.Label[id] = Out
			outs = append(outs, id)
		}
	}

	fromIn, err := reach(ins, bfs.Forward)
	if err != nil {
		return nil, err
	}
	toOut, err := reach(outs, bfs.Backward)
	if err != nil {
		return nil, err
	}
	for _, id := range g.Vertices() {
		if _, done := res.Label[id]; done {
			continue
		}
		if fromIn[id] || toOut[id] {
			res.Label[id] = Tube
		} else {
			res.Label[id] = Disconnected
		}
	}

	return res, nil
}

// largest returns the biggest component; ties prefer the smaller first ID.
func largest(comps [][]string) []string {
	best := comps[0]
	for _, c := range comps[1:] {
		if len(c) > len(best) || (len(c) == len(best) && c[0] < best[0]) {
			best = c
		}
	}

	return best
}

// Apply writes res labels onto g as vertex categories and returns how many
// categories changed.
func Apply(g *core.Graph, res *Result) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	changed := 0
	for _, id := range g.Vertices() {
		label, ok := res.Label[id]
		if !ok {
			continue
		}
		cur, err := g.Category(id)
		if err != nil {
			return changed, err
		}
		if cur == label {
			continue
		}
		if err := g.SetCategory(id, label); err != nil {
			return changed, err
		}
		changed++
	}

	return changed, nil
}

// Mismatches returns the vertices whose stored category differs from the
// computed label, sorted.
func Mismatches(g *core.Graph, res *Result) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var out []string
	for _, id := range g.Vertices() {
		cur, err := g.Category(id)
		if err != nil {
			return nil, err
		}
		if res.Label[id] != cur {
			out = append(out, id)
		}
	}

	return out, nil
}
