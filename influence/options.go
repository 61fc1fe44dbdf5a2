// SPDX-License-Identifier: MIT

package influence

import (
	"context"
	"log/slog"
)

// Option configures optional behavior of an Engine.
type Option func(*Options)

// Options holds the configurable parameters of an Engine.
type Options struct {
	// Ctx is used when a Compute call receives a nil context; defaults to
	// context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, aborts a pass with ErrDepthLimit when a path
	// grows longer than MaxDepth edges. Default is -1 (no limit).
	MaxDepth int

	// MaxSteps, if non-negative, aborts a pass with ErrStepLimit after more
	// than MaxSteps crawled edges. Default is -1 (no limit).
	MaxSteps int

	// Observer receives traversal events; defaults to NopObserver.
	Observer Observer

	// Logger receives debug and info records; defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns Options with a background context, no limits,
// no observer and the default logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
		MaxSteps: -1,
		Observer: NopObserver{},
		Logger:   slog.Default(),
	}
}

// WithContext sets the fallback context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits path length to limit edges; negative disables the limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithMaxSteps limits the number of crawled edges per pass; negative disables the limit.
func WithMaxSteps(limit int) Option {
	return func(o *Options) { o.MaxSteps = limit }
}

// WithObserver installs obs as the traversal event sink. A nil obs has no effect.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithLogger installs l as the engine logger. A nil l has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
