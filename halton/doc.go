// SPDX-License-Identifier: MIT
// Package halton provides the deterministic low-discrepancy building blocks
// used by the roadmap generators: a fixed table of small primes and the
// radical-inverse (van der Corput) function that turns an integer index into
// a coordinate in [0,1).
//
// A d-dimensional Halton point for index n is
//
//	( Radical(Prime(0), n), Radical(Prime(1), n), …, Radical(Prime(d-1), n) )
//
// The prime table is static, so the number of entries bounds the largest
// configuration-space dimension a Halton roadmap can serve (MaxDimension).
//
// Everything in this package is a pure function of its arguments and is safe
// for concurrent use.
package halton
