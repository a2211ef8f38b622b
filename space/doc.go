// SPDX-License-Identifier: MIT
// Package space describes the configuration space a roadmap lives in.
//
// A Space reports its kind, dimension and per-axis bounds, measures the
// distance between two points, and hands out seeded uniform samplers. The
// roadmap generators only consume this interface; RealVector is the bounded
// Euclidean implementation shipped with the module.
//
// Seeding is explicit: NewSampler(seed) returns a sampler whose whole stream
// is determined by seed, so two spaces with equal bounds and equal seeds draw
// identical points.
package space
