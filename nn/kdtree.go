// SPDX-License-Identifier: MIT
// Package: lvroad/nn
//
// kdtree.go - Euclidean radius index backed by gonum's kd-tree.
//
// Policy:
//   - Points are inserted incrementally; the tree is never rebalanced.
//     Halton points arrive well spread, which keeps the tree shallow.
//   - gonum's tree has no deletion, so Remove tombstones the node and the
//     query filters it out.

package nn

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/lvroad/core"
)

// KDTree is a Euclidean radius index.
type KDTree struct {
	dim  int
	tree *kdtree.Tree
	live map[core.VertexID]*treePoint
}

// NewKDTree returns an empty index for points of length dim.
func NewKDTree(dim int) *KDTree {
	return &KDTree{
		dim:  dim,
		tree: &kdtree.Tree{},
		live: make(map[core.VertexID]*treePoint),
	}
}

// Add implements Index. Complexity: O(depth).
func (k *KDTree) Add(id core.VertexID, point []float64) error {
	if len(point) != k.dim {
		return fmt.Errorf("KDTree.Add(%d): len=%d want %d: %w", id, len(point), k.dim, ErrDimensionMismatch)
	}
	if _, ok := k.live[id]; ok {
		return fmt.Errorf("KDTree.Add(%d): %w", id, ErrDuplicate)
	}
	p := &treePoint{id: id, coords: point}
	k.tree.Insert(p, false)
	k.live[id] = p

	return nil
}

// Remove implements Index. Complexity: O(1); the node stays in the tree.
func (k *KDTree) Remove(id core.VertexID) error {
	if _, ok := k.live[id]; !ok {
		return fmt.Errorf("KDTree.Remove(%d): %w", id, ErrNotFound)
	}
	delete(k.live, id)

	return nil
}

// NearestR implements Index. The tree works with squared distances, so the
// keeper is bounded by r².
func (k *KDTree) NearestR(point []float64, r float64) ([]core.VertexID, error) {
	if r < 0 {
		return nil, fmt.Errorf("KDTree.NearestR(r=%g): %w", r, ErrNegativeRadius)
	}
	if len(point) != k.dim {
		return nil, fmt.Errorf("KDTree.NearestR: len=%d want %d: %w", len(point), k.dim, ErrDimensionMismatch)
	}
	if k.tree.Root == nil {
		return nil, nil
	}

	keep := kdtree.NewDistKeeper(r * r)
	k.tree.NearestSet(keep, &treePoint{coords: point})

	var out []core.VertexID
	for _, cd := range keep.Heap {
		p, ok := cd.Comparable.(*treePoint)
		if !ok || k.live[p.id] != p {
			continue // sentinel or tombstone
		}
		out = append(out, p.id)
	}
	sortIDs(out)

	return out, nil
}

// Len implements Index.
func (k *KDTree) Len() int { return len(k.live) }

// treePoint is a kdtree.Comparable carrying its vertex ID.
type treePoint struct {
	id     core.VertexID
	coords []float64
}

// Compare implements kdtree.Comparable.
func (p *treePoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(*treePoint)
	return p.coords[d] - q.coords[d]
}

// Dims implements kdtree.Comparable.
func (p *treePoint) Dims() int { return len(p.coords) }

// Distance implements kdtree.Comparable as squared Euclidean distance.
func (p *treePoint) Distance(c kdtree.Comparable) float64 {
	q := c.(*treePoint)
	var sum float64
	for i, v := range p.coords {
		d := v - q.coords[i]
		sum += d * d
	}

	return sum
}
