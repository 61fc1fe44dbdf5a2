// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// options.go - functional options resolved into builderConfig.
// Option constructors panic on programmer errors (bad ranges, nil funcs);
// constructors themselves only return errors.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption mutates builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID function. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithPrefixIDs names vertex i as prefix+(i+1), e.g. "i1", "i2".
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(func(i int) string { return fmt.Sprintf("%s%d", prefix, i+1) })
}

// WithRand uses r for every stochastic decision. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithConstantWeight gives every edge weight w. Panics if w < 0.
func WithConstantWeight(w float64) BuilderOption {
	if w < 0 {
		panic(fmt.Sprintf("builder: WithConstantWeight(%g): negative", w))
	}

	return func(c *builderConfig) { c.weightFn = func(*rand.Rand) float64 { return w } }
}

// WithUniformWeight draws edge weights from U[min,max). Panics unless 0 <= min <= max.
// Without WithSeed or WithRand every draw is min.
func WithUniformWeight(min, max float64) BuilderOption {
	if min < 0 || max < min {
		panic(fmt.Sprintf("builder: WithUniformWeight(%g,%g): invalid range", min, max))
	}

	return func(c *builderConfig) { c.weightFn = uniform(min, max) }
}

// WithConstantValue gives every vertex value v.
func WithConstantValue(v float64) BuilderOption {
	return func(c *builderConfig) { c.valueFn = func(*rand.Rand) float64 { return v } }
}

// WithUniformValue draws vertex values from U[min,max). Panics if max < min.
func WithUniformValue(min, max float64) BuilderOption {
	if max < min {
		panic(fmt.Sprintf("builder: WithUniformValue(%g,%g): invalid range", min, max))
	}

	return func(c *builderConfig) { c.valueFn = uniform(min, max) }
}

// WithCategory labels every vertex with category.
func WithCategory(category string) BuilderOption {
	return func(c *builderConfig) { c.categoryFn = func(int) string { return category } }
}

// uniform returns a U[min,max) sampler; a nil rng yields min.
func uniform(min, max float64) func(*rand.Rand) float64 {
	return func(r *rand.Rand) float64 {
		if r == nil || max == min {
			return min
		}

		return min + r.Float64()*(max-min)
	}
}
