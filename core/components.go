// SPDX-License-Identifier: MIT
// File: components.go
// Role: Connected components of the roadmap (BFS over mirrored adjacency).

package core

import "sort"

// Components returns the connected components of g.
//
// Implementation:
//   - Stage 1: Under both read locks, scan vertex IDs ascending.
//   - Stage 2: From each unseen vertex, BFS over the mirrored adjacency and
//     collect everything reached.
//
// Behavior highlights:
//   - Isolated vertices form singleton components.
//   - Loops and parallel edges do not affect the result.
//
// Returns:
//   - [][]VertexID: one slice per component, each sorted ascending; nil for
//     an empty graph.
//
// Errors:
//   - None.
//
// Determinism:
//   - Components are ordered by their smallest vertex ID.
//
// Complexity:
//   - Time O(V + E) for the traversal plus O(c·log c) to sort each component.
//   - Space O(V) for visited flags and the queue.
func (g *Graph) Components() [][]VertexID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	total := len(g.vertices)
	seen := make([]bool, total)
	var comps [][]VertexID

	for start := 0; start < total; start++ {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue := []VertexID{VertexID(start)}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for nb := range g.adjacency[u] {
				if !seen[nb] {
					seen[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		sort.Slice(queue, func(i, j int) bool { return queue[i] < queue[j] })
		comps = append(comps, queue)
	}

	return comps
}
