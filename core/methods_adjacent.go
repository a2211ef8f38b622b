// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood queries over the mirrored adjacency.
//
// Determinism:
//   - Neighbors() sorted by edge ID; NeighborIDs() sorted by vertex ID.
//
// Policy:
//   - A self-loop appears once in Neighbors() and counts 2 towards Degree().

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns copies of all edges incident to id, sorted by edge ID.
// Complexity: O(d·log d), d = number of incident edges.
func (g *Graph) Neighbors(id VertexID) ([]Edge, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if !g.hasVertexLocked(id) {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []Edge
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			out = append(out, *g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the distinct vertices adjacent to id, ascending.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id VertexID) ([]VertexID, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if !g.hasVertexLocked(id) {
		return nil, fmt.Errorf("NeighborIDs(%d): %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]VertexID, 0, len(g.adjacency[id]))
	for nb := range g.adjacency[id] {
		ids = append(ids, nb)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

// Degree returns the number of edge endpoints at id (loops count twice).
// Complexity: O(d).
func (g *Graph) Degree(id VertexID) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if !g.hasVertexLocked(id) {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.degreeLocked(id), nil
}

// degreeLocked expects both locks held (read is enough).
func (g *Graph) degreeLocked(id VertexID) int {
	deg := 0
	for nb, bucket := range g.adjacency[id] {
		if nb == id {
			deg += 2 * len(bucket)
			continue
		}
		deg += len(bucket)
	}

	return deg
}
