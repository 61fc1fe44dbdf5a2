// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// config.go - resolved, immutable builder configuration.

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig holds the knobs shared by all constructors.
type builderConfig struct {
	// idFn maps a vertex index to its ID.
	idFn func(int) string

	// rng drives stochastic constructors and distributions; nil unless set.
	rng *rand.Rand

	// weightFn draws one edge weight (finite, >= 0).
	weightFn func(*rand.Rand) float64

	// valueFn draws one vertex value.
	valueFn func(*rand.Rand) float64

	// categoryFn labels vertex i; nil leaves vertices unclassified.
	categoryFn func(int) string
}

const (
	defaultConstWeight = 1.0
	defaultConstValue  = 1.0
)

// newBuilderConfig resolves opts over the defaults: decimal IDs, no RNG,
// unit weights, unit values, no categories.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		weightFn: func(*rand.Rand) float64 { return defaultConstWeight },
		valueFn:  func(*rand.Rand) float64 { return defaultConstValue },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func decimalID(i int) string {
	return strconv.Itoa(i)
}

// DecimalID is the default ID scheme: "0", "1", "2", ...
func DecimalID(i int) string { return decimalID(i) }
