// SPDX-License-Identifier: MIT
// Package: lvroad/halton
//
// halton.go - radical inverse and Halton vectors.
//
// Contract:
//   - Radical(b, n) ∈ [0,1) for every b ≥ 2, n ≥ 0; Radical(b, 0) == 0.
//   - Indices are 0-based: the roadmap feeds vertex IDs straight in.
//   - No shared state: safe to call from many goroutines.

package halton

import (
	"errors"
	"fmt"
	"math"
)

// ErrDimension indicates a Halton vector was requested for more dimensions
// than the prime table can serve.
var ErrDimension = errors.New("halton: dimension exceeds prime table")

// minBase is the smallest radix for which the radical inverse is defined.
const minBase = 2

// belowOne is the largest float64 strictly less than 1.
var belowOne = math.Nextafter(1, 0)

// Radical returns the index-th term of the van der Corput sequence in the
// given base: the digits of index written in that base, mirrored around the
// radix point. For base 2 the indices 1..5 give 0.5, 0.25, 0.75, 0.125, 0.625.
//
// Invalid input (base < 2 or index < 0) yields 0.
// Complexity: O(log_base(index)).
func Radical(base, index int) float64 {
	if base < minBase || index < 0 {
		return 0
	}

	var (
		sample = 0.0
		denom  = float64(base)
	)
	// Peel base-b digits off the low end; each digit lands one place further
	// right of the radix point.
	for n := index; n > 0; n /= base {
		sample += float64(n%base) / denom
		denom *= float64(base)
	}
	// Rounding on very long digit strings must not leak 1.0 out of [0,1).
	if sample >= 1 {
		return belowOne
	}

	return sample
}

// Point fills dst with the Halton vector for index, one prime base per
// coordinate: dst[i] = Radical(Prime(i), index).
// Returns ErrDimension if len(dst) > MaxDimension; dst is left untouched then.
// Complexity: O(len(dst) · log(index)).
func Point(index int, dst []float64) error {
	if len(dst) > MaxDimension {
		return fmt.Errorf("Point: dim=%d > max=%d: %w", len(dst), MaxDimension, ErrDimension)
	}
	for i := range dst {
		dst[i] = Radical(primes[i], index)
	}

	return nil
}
