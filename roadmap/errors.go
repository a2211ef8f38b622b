// SPDX-License-Identifier: MIT
// Package: lvroad/roadmap
//
// errors.go - sentinel errors for the roadmap package.
//
// Error policy:
//   • Two classes: ErrConfiguration and ErrInvariant. Every other sentinel
//     wraps exactly one of them, so errors.Is works on both levels.
//   • Call sites attach method context with %w; never match on strings.

package roadmap

import (
	"errors"
	"fmt"
)

// ErrConfiguration marks a configuration mistake: unsupported space, a
// dimension the prime table cannot serve, or a required parameter unset.
var ErrConfiguration = errors.New("roadmap: configuration error")

// ErrInvariant marks lifecycle misuse, such as changing a parameter after
// Initialize or generating before it.
var ErrInvariant = errors.New("roadmap: invariant violation")

// Configuration refinements.
var (
	// ErrUnsupportedSpace indicates a space that is not a bounded real vector space.
	ErrUnsupportedSpace = fmt.Errorf("%w: unsupported configuration space", ErrConfiguration)

	// ErrDimensionTooLarge indicates more dimensions than hardcoded Halton primes.
	ErrDimensionTooLarge = fmt.Errorf("%w: not enough primes hardcoded", ErrConfiguration)

	// ErrNilCollaborator indicates a nil space, graph or index.
	ErrNilCollaborator = fmt.Errorf("%w: nil collaborator", ErrConfiguration)

	// ErrNumPerBatchUnset indicates Initialize with num_per_batch == 0.
	ErrNumPerBatchUnset = fmt.Errorf("%w: num_per_batch not set", ErrConfiguration)

	// ErrRadiusUnset indicates Initialize with radius_first_batch == 0.
	ErrRadiusUnset = fmt.Errorf("%w: radius_first_batch not set", ErrConfiguration)

	// ErrInvalidRadius indicates a negative or non-finite radius_first_batch.
	ErrInvalidRadius = fmt.Errorf("%w: radius_first_batch must be positive and finite", ErrConfiguration)
)

// Invariant refinements.
var (
	// ErrAlreadyInitialized indicates a parameter change or a second Initialize
	// after the generator was initialized.
	ErrAlreadyInitialized = fmt.Errorf("%w: already initialized", ErrInvariant)

	// ErrNotInitialized indicates Generate (or point placement) before Initialize.
	ErrNotInitialized = fmt.Errorf("%w: not initialized", ErrInvariant)

	// ErrGraphOutOfSync indicates the graph handed out a vertex ID other than
	// the next Halton index, i.e. it was mutated behind the generator's back.
	ErrGraphOutOfSync = fmt.Errorf("%w: graph out of sync", ErrInvariant)

	// ErrNotEmpty indicates Replay was given a non-empty graph or index.
	ErrNotEmpty = fmt.Errorf("%w: replay target not empty", ErrInvariant)
)
