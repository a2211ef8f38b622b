// SPDX-License-Identifier: MIT
// Package roadmap grows deterministic roadmaps for sampling-based motion
// planning, one batch at a time.
//
// HaltonOffDens ("Halton, offset, densification") places vertex v at
//
//	offset + span ⊙ Halton(v)      (wrapped once per axis back into the bounds)
//
// where offset is a single uniform draw made at Initialize from a seeded
// sampler, and connects every new vertex to the existing vertices within the
// batch radius
//
//	r(i) = radiusFirstBatch · (1/(i+1))^(1/dim)
//
// so that the radius shrinks as n^(-1/dim) while the roadmap densifies.
// Everything after the offset draw is a pure function of the vertex index,
// which makes two generators with equal space, seed and parameters produce
// bit-identical roadmaps batch for batch.
//
// Lifecycle:
//
//	r, err := roadmap.New(sp, g, idx, roadmap.WithNumPerBatch(100), roadmap.WithRadiusFirstBatch(0.5))
//	err = r.Initialize()      // once; freezes parameters and draws the offset
//	err = r.Generate()        // any number of times
//
// Parameters may change only before Initialize; afterwards setters report
// ErrAlreadyInitialized unless the value is unchanged. Configuration mistakes
// surface as errors matching ErrConfiguration, lifecycle misuse as errors
// matching ErrInvariant.
//
// A generator owns no locks and assumes exclusive access to its graph and
// index while Generate runs.
package roadmap
