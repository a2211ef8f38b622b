// SPDX-License-Identifier: MIT
// Package: lvroad/space
//
// types.go - Space/Sampler contracts, Kind, Bounds and sentinel errors.

package space

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for configuration-space construction.
var (
	// ErrBounds indicates malformed bounds: empty, mismatched lengths,
	// non-finite values, or low >= high on some axis.
	ErrBounds = errors.New("space: invalid bounds")

	// ErrDimension indicates a point whose length does not match the space.
	ErrDimension = errors.New("space: dimension mismatch")
)

// Kind classifies a configuration space by its topology.
type Kind int

const (
	// KindUnknown is the zero value; no generator accepts it.
	KindUnknown Kind = iota
	// KindRealVector is a bounded box in R^n with the Euclidean metric.
	KindRealVector
	// KindSO2 is the circle group (planar rotation).
	KindSO2
	// KindCompound is a product of other spaces.
	KindCompound
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindRealVector:
		return "RealVector"
	case KindSO2:
		return "SO2"
	case KindCompound:
		return "Compound"
	default:
		return "Unknown"
	}
}

// Sampler draws points uniformly over a space's bounds.
// A sampler is not safe for concurrent use.
type Sampler interface {
	// SampleUniform overwrites dst with one uniform draw; len(dst) must equal
	// the space dimension.
	SampleUniform(dst []float64)
}

// Space is the configuration-space collaborator consumed by roadmap generators.
type Space interface {
	Kind() Kind
	Dimension() int
	Bounds() Bounds
	// Distance is symmetric and satisfies the triangle inequality.
	Distance(a, b []float64) float64
	// NewSampler returns a sampler whose stream is fully determined by seed.
	NewSampler(seed uint64) Sampler
}

// Bounds is a per-axis [Low[i], High[i]] box.
type Bounds struct {
	Low  []float64
	High []float64
}

// NewBounds builds a Bounds of dimension dim with the same [low, high]
// interval on every axis.
func NewBounds(dim int, low, high float64) Bounds {
	b := Bounds{Low: make([]float64, dim), High: make([]float64, dim)}
	for i := 0; i < dim; i++ {
		b.Low[i], b.High[i] = low, high
	}

	return b
}

// Dim returns the number of axes.
func (b Bounds) Dim() int { return len(b.Low) }

// Span returns High[i] - Low[i].
func (b Bounds) Span(i int) float64 { return b.High[i] - b.Low[i] }

// Contains reports whether p lies inside the closed box.
func (b Bounds) Contains(p []float64) bool {
	if len(p) != len(b.Low) {
		return false
	}
	for i, v := range p {
		if v < b.Low[i] || v > b.High[i] {
			return false
		}
	}

	return true
}

// Clone returns a deep copy that shares no slices with b.
func (b Bounds) Clone() Bounds {
	return Bounds{
		Low:  append([]float64(nil), b.Low...),
		High: append([]float64(nil), b.High...),
	}
}

// Validate checks the box is non-empty, finite and has positive span on
// every axis. Errors wrap ErrBounds.
func (b Bounds) Validate() error {
	if len(b.Low) == 0 {
		return fmt.Errorf("Validate: no axes: %w", ErrBounds)
	}
	if len(b.Low) != len(b.High) {
		return fmt.Errorf("Validate: len(low)=%d != len(high)=%d: %w", len(b.Low), len(b.High), ErrBounds)
	}
	for i := range b.Low {
		lo, hi := b.Low[i], b.High[i]
		if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			return fmt.Errorf("Validate: axis %d not finite [%g,%g]: %w", i, lo, hi, ErrBounds)
		}
		if lo >= hi {
			return fmt.Errorf("Validate: axis %d low=%g >= high=%g: %w", i, lo, hi, ErrBounds)
		}
	}

	return nil
}
