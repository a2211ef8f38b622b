// SPDX-License-Identifier: MIT
// Package: lvroad/roadmap
//
// options.go - functional options for New.
//
// Options go through the same validated setters the parameter set uses, so
// "no change after Initialize" is enforced in one place.

package roadmap

import "log/slog"

// Option configures a HaltonOffDens during New.
type Option func(*HaltonOffDens) error

// WithNumPerBatch sets how many vertices each batch adds.
func WithNumPerBatch(n uint) Option {
	return func(r *HaltonOffDens) error { return r.SetNumPerBatch(n) }
}

// WithRadiusFirstBatch sets the connection radius of batch 0.
func WithRadiusFirstBatch(radius float64) Option {
	return func(r *HaltonOffDens) error { return r.SetRadiusFirstBatch(radius) }
}

// WithSeed sets the seed of the offset draw.
func WithSeed(seed uint64) Option {
	return func(r *HaltonOffDens) error { return r.SetSeed(seed) }
}

// WithLogger routes lifecycle and per-batch records to l. A nil logger
// keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(r *HaltonOffDens) error {
		if l != nil {
			r.logger = l
		}
		return nil
	}
}
