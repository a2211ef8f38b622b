// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for configuration flags and catalog snapshots.

package core

// Looped reports whether self-loops are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted by policy.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Stats produces a deterministic, read-only snapshot of flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, copy flags, count vertices, shadows and batches.
//   - Stage 2: Under muEdgeAdj.RLock, count edges.
//
// Determinism:
//   - Each phase reads a consistent state; concurrent mutation between the
//     phases can make the counts belong to slightly different moments.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	for _, v := range g.vertices {
		if v.Shadow {
			stats.ShadowCount++
		}
		if v.Batch+1 > stats.Batches {
			stats.Batches = v.Batch + 1
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	g.muEdgeAdj.RUnlock()

	return &stats
}
