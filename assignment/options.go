// SPDX-License-Identifier: MIT

package assignment

import "context"

// Option configures a solve via functional arguments.
type Option func(*Options)

// Options holds the parameters of a solve.
type Options struct {
	// Objective selects minimisation (default) or maximisation.
	Objective Objective

	// Ctx is checked between phases; a done context aborts with ErrCancelled.
	Ctx context.Context
}

// DefaultOptions returns Options with Minimize and context.Background().
func DefaultOptions() Options {
	return Options{
		Objective: Minimize,
		Ctx:       context.Background(),
	}
}

// WithObjective sets the optimisation direction.
func WithObjective(o Objective) Option {
	return func(opts *Options) { opts.Objective = o }
}

// WithMaximize is shorthand for WithObjective(Maximize).
func WithMaximize() Option {
	return WithObjective(Maximize)
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(opts *Options) {
		if ctx != nil {
			opts.Ctx = ctx
		}
	}
}

// buildOptions applies opts over the defaults and validates the result.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Objective != Minimize && o.Objective != Maximize {
		return o, ErrUnknownObjective
	}

	return o, nil
}
