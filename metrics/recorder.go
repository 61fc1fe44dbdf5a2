// SPDX-License-Identifier: MIT
//
// Package metrics exposes traversal statistics of the influence engine as
// Prometheus metrics on a private registry.
package metrics

import (
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/influence/influence"
)

const namespace = "influence"

// Recorder is an influence.Observer backed by Prometheus collectors.
// All collectors live on the Recorder's own registry; nothing is registered
// globally. Safe for concurrent use.
type Recorder struct {
	reg *prometheus.Registry

	Contributions    prometheus.Counter
	BarrierHits      prometheus.Counter
	CycleTruncations prometheus.Counter
	Sources          prometheus.Counter
	SourceIndex      prometheus.Histogram
	PathDepth        prometheus.Histogram
}

var _ influence.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with freshly registered collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		Contributions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contributions_total",
			Help:      "Successor values added to a source index.",
		}),
		BarrierHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "barrier_hits_total",
			Help:      "Edges not followed because the successor is tagged.",
		}),
		CycleTruncations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycle_truncations_total",
			Help:      "Edges not followed because the successor is on the current path.",
		}),
		Sources: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sources_total",
			Help:      "Sources whose index was computed.",
		}),
		SourceIndex: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "source_index",
			Help:      "Distribution of computed influence indices.",
			Buckets:   []float64{0, 0.5, 1, 2, 5, 10, 20, 50, 100},
		}),
		PathDepth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_depth",
			Help:      "Depth in edges at which contributions were made.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),
	}
	r.reg.MustRegister(
		r.Contributions,
		r.BarrierHits,
		r.CycleTruncations,
		r.Sources,
		r.SourceIndex,
		r.PathDepth,
	)

	return r
}

// Registry returns the registry holding the Recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

func (r *Recorder) Contribution(_, _ string, depth int, _ float64) {
	r.Contributions.Inc()
	r.PathDepth.Observe(float64(depth))
}

func (r *Recorder) Barrier(_, _ string) { r.BarrierHits.Inc() }

func (r *Recorder) CycleTruncated(_, _ string) { r.CycleTruncations.Inc() }

func (r *Recorder) SourceDone(_ string, index float64) {
	r.Sources.Inc()
	r.SourceIndex.Observe(index)
}

// Sample is one gathered metric reduced to a single number: the counter
// value, or the observation count for histograms.
type Sample struct {
	Name  string
	Value float64
}

// Snapshot gathers the registry and returns one Sample per metric, sorted by name.
func (r *Recorder) Snapshot() ([]Sample, error) {
	families, err := r.reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}

	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				out = append(out, Sample{Name: mf.GetName(), Value: m.GetCounter().GetValue()})
			case m.GetHistogram() != nil:
				out = append(out, Sample{Name: mf.GetName() + "_count", Value: float64(m.GetHistogram().GetSampleCount())})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}
