// SPDX-License-Identifier: MIT
// Package: lvroad/halton
//
// primes.go - static prime table used as Halton bases.

package halton

// primes holds the first MaxDimension primes in ascending order.
var primes = [...]int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
	127, 131, 137, 139, 149, 151, 157, 163, 167, 173,
	179, 181, 191, 193, 197, 199, 211, 223, 227, 229,
	233, 239, 241, 251, 257, 263, 269, 271, 277, 281,
	283, 293, 307, 311, 313, 317, 331, 337, 347, 349,
	353, 359, 367, 373, 379, 383, 389, 397, 401, 409,
	419, 421, 431, 433, 439, 443, 449, 457, 461, 463,
	467, 479, 487, 491, 499, 503, 509, 521, 523, 541,
}

// MaxDimension is the number of hardcoded primes, and therefore the largest
// dimension for which Point can produce a Halton vector.
const MaxDimension = len(primes)

// NotFound is returned by Prime for indices outside the table.
const NotFound = 0

// Prime returns the i-th prime, 0-indexed (Prime(0) == 2, Prime(1) == 3, …).
// It returns NotFound when i is negative or i >= MaxDimension; callers must
// treat that as a configuration error rather than a usable base.
// Complexity: O(1).
func Prime(i int) int {
	if i < 0 || i >= MaxDimension {
		return NotFound
	}

	return primes[i]
}
