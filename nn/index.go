// SPDX-License-Identifier: MIT
// Package: lvroad/nn
//
// index.go - Index contract and sentinel errors.

package nn

import (
	"errors"
	"sort"

	"github.com/katalvlaran/lvroad/core"
)

// Sentinel errors for index operations.
var (
	// ErrDimensionMismatch indicates a point whose length differs from the index dimension.
	ErrDimensionMismatch = errors.New("nn: dimension mismatch")

	// ErrDuplicate indicates Add was called for an ID already stored.
	ErrDuplicate = errors.New("nn: duplicate vertex")

	// ErrNotFound indicates Remove was called for an ID that is not stored.
	ErrNotFound = errors.New("nn: vertex not found")

	// ErrNegativeRadius indicates a radius query with r < 0.
	ErrNegativeRadius = errors.New("nn: negative radius")
)

// Index is a mutable radius-query structure over roadmap vertices.
type Index interface {
	// Add stores the point of vertex id. The index keeps the slice; callers
	// must not mutate it afterwards.
	Add(id core.VertexID, point []float64) error

	// Remove forgets vertex id.
	Remove(id core.VertexID) error

	// NearestR returns every stored vertex within distance r of point
	// (inclusive), sorted by ID. An empty result is nil.
	NearestR(point []float64, r float64) ([]core.VertexID, error)

	// Len returns the number of stored vertices.
	Len() int
}

// sortIDs orders a result set by vertex ID.
func sortIDs(ids []core.VertexID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
