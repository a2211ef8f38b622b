// SPDX-License-Identifier: MIT
// Package: lvroad/nn
//
// linear.go - brute-force index with a caller-supplied metric.

package nn

import (
	"fmt"

	"github.com/katalvlaran/lvroad/core"
)

// DistanceFunc measures the distance between two points of equal length.
type DistanceFunc func(a, b []float64) float64

// Linear scans every stored point on each query. It works with any metric,
// which makes it the reference implementation the KDTree is checked against.
type Linear struct {
	dist   DistanceFunc
	ids    []core.VertexID
	points [][]float64
	pos    map[core.VertexID]int // id → slot in ids/points
}

// NewLinear returns an empty brute-force index using dist.
func NewLinear(dist DistanceFunc) *Linear {
	return &Linear{dist: dist, pos: make(map[core.VertexID]int)}
}

// Add implements Index. Complexity: O(1) amortized.
func (l *Linear) Add(id core.VertexID, point []float64) error {
	if _, ok := l.pos[id]; ok {
		return fmt.Errorf("Linear.Add(%d): %w", id, ErrDuplicate)
	}
	if len(l.points) > 0 && len(point) != len(l.points[0]) {
		return fmt.Errorf("Linear.Add(%d): len=%d want %d: %w", id, len(point), len(l.points[0]), ErrDimensionMismatch)
	}
	l.pos[id] = len(l.ids)
	l.ids = append(l.ids, id)
	l.points = append(l.points, point)

	return nil
}

// Remove implements Index by swapping the last slot into the hole.
// Complexity: O(1).
func (l *Linear) Remove(id core.VertexID) error {
	slot, ok := l.pos[id]
	if !ok {
		return fmt.Errorf("Linear.Remove(%d): %w", id, ErrNotFound)
	}
	last := len(l.ids) - 1
	if slot != last {
		l.ids[slot], l.points[slot] = l.ids[last], l.points[last]
		l.pos[l.ids[slot]] = slot
	}
	l.ids, l.points = l.ids[:last], l.points[:last]
	delete(l.pos, id)

	return nil
}

// NearestR implements Index. Complexity: O(n·dim + k·log k).
func (l *Linear) NearestR(point []float64, r float64) ([]core.VertexID, error) {
	if r < 0 {
		return nil, fmt.Errorf("Linear.NearestR(r=%g): %w", r, ErrNegativeRadius)
	}
	if len(l.points) > 0 && len(point) != len(l.points[0]) {
		return nil, fmt.Errorf("Linear.NearestR: len=%d want %d: %w", len(point), len(l.points[0]), ErrDimensionMismatch)
	}

	var out []core.VertexID
	for i, p := range l.points {
		if l.dist(point, p) <= r {
			out = append(out, l.ids[i])
		}
	}
	sortIDs(out)

	return out, nil
}

// Len implements Index.
func (l *Linear) Len() int { return len(l.ids) }
