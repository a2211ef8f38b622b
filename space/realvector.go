// SPDX-License-Identifier: MIT
// Package: lvroad/space
//
// realvector.go - bounded Euclidean space and its seeded uniform sampler.

package space

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// euclidean is the L-norm order passed to floats.Distance.
const euclidean = 2

// goldenGamma decorrelates the two PCG seed words derived from one seed.
const goldenGamma = 0x9e3779b97f4a7c15

// RealVector is an axis-aligned box in R^n with the Euclidean metric.
// It is immutable after construction and safe for concurrent use; the
// samplers it hands out are not.
type RealVector struct {
	bounds Bounds
}

// NewRealVector validates b and returns the space. The bounds are copied.
func NewRealVector(b Bounds) (*RealVector, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("NewRealVector: %w", err)
	}

	return &RealVector{bounds: b.Clone()}, nil
}

// Kind implements Space.
func (s *RealVector) Kind() Kind { return KindRealVector }

// Dimension implements Space.
func (s *RealVector) Dimension() int { return s.bounds.Dim() }

// Bounds returns a copy of the box.
func (s *RealVector) Bounds() Bounds { return s.bounds.Clone() }

// Distance returns the Euclidean distance between a and b.
// Both must have length Dimension(); gonum panics otherwise.
func (s *RealVector) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, euclidean)
}

// NewSampler returns a uniform sampler over the box driven by a PCG stream
// derived from seed. All axes share one stream and are drawn in axis order.
func (s *RealVector) NewSampler(seed uint64) Sampler {
	src := NewSource(seed)
	axes := make([]distuv.Uniform, s.bounds.Dim())
	for i := range axes {
		axes[i] = distuv.Uniform{Min: s.bounds.Low[i], Max: s.bounds.High[i], Src: src}
	}

	return &uniformSampler{axes: axes}
}

// uniformSampler draws each coordinate from its own distuv.Uniform; the
// shared Src keeps the draw order reproducible.
type uniformSampler struct {
	axes []distuv.Uniform
}

// SampleUniform implements Sampler.
func (u *uniformSampler) SampleUniform(dst []float64) {
	for i := range u.axes {
		dst[i] = u.axes[i].Rand()
	}
}

// NewSource returns a PCG source whose two state words are both derived from
// seed, so that nearby seeds still yield unrelated streams.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(mix(seed), mix(seed+goldenGamma))
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
