// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Whole-graph maintenance: Truncate (rollback), Clear, Clone.
//
// Concurrency:
//   - Mutators take both write locks (muVert → muEdgeAdj).
//   - Clone takes read locks on the source only.

package core

import "fmt"

// Truncate removes every vertex with ID >= n and every edge incident to one.
//
// Implementation:
//   - Stage 1: Under both write locks, walk the tail vertices from the highest
//     ID down, deleting each incident edge from the catalog and unlinking it
//     from the surviving endpoint's bucket.
//   - Stage 2: Shrink the vertex and adjacency slices to n.
//   - Stage 3: Rewind nextEdgeID past the trailing run of freed IDs.
//
// Behavior highlights:
//   - Afterwards VertexCount() == n and the next AddVertex returns n again.
//   - The edge counter ends one past the highest surviving edge, so a
//     rolled-back tail is regenerated with the same edge IDs.
//   - n == VertexCount() is a no-op.
//
// Inputs:
//   - n: number of vertices to keep, 0 <= n <= VertexCount().
//
// Returns:
//   - error: nil on success.
//
// Errors:
//   - ErrBadTruncate if n < 0 or n > VertexCount().
//
// Determinism:
//   - The surviving graph, including edge IDs, is independent of map order.
//
// Complexity:
//   - Time O(removed vertices + their incident edges). The rewind only steps
//     over IDs above the highest survivor, each of which was freed by this or
//     an earlier Truncate that already stepped over it.
//   - Space O(1).
func (g *Graph) Truncate(n int) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if n < 0 || n > len(g.vertices) {
		return fmt.Errorf("Truncate(%d): have %d vertices: %w", n, len(g.vertices), ErrBadTruncate)
	}
	if n == len(g.vertices) {
		return nil
	}

	for vi := len(g.vertices) - 1; vi >= n; vi-- {
		v := VertexID(vi)
		for nb, bucket := range g.adjacency[v] {
			for eid := range bucket {
				delete(g.edges, eid)
				if nb != v {
					g.unlinkLocked(nb, v, eid)
				}
			}
		}
		g.adjacency[vi] = nil
		g.vertices[vi] = nil
	}
	g.adjacency = g.adjacency[:n]
	g.vertices = g.vertices[:n]

	for g.nextEdgeID > 0 {
		if _, ok := g.edges[g.nextEdgeID-1]; ok {
			break
		}
		g.nextEdgeID--
	}

	return nil
}

// Clear resets the graph to empty state but preserves flags.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = nil
	g.edges = make(map[EdgeID]*Edge)
	g.adjacency = nil
	g.nextEdgeID = 0
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// Clone returns a deep copy: flags, vertices (points copied), edges and adjacency.
// Complexity: O(V·dim + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	clone.allowLoops = g.allowLoops
	clone.allowMulti = g.allowMulti
	clone.nextEdgeID = g.nextEdgeID

	clone.vertices = make([]*Vertex, len(g.vertices))
	clone.adjacency = make([]map[VertexID]map[EdgeID]struct{}, len(g.adjacency))
	for i, v := range g.vertices {
		nv := *v
		nv.Point = append([]float64(nil), v.Point...)
		clone.vertices[i] = &nv
		clone.adjacency[i] = make(map[VertexID]map[EdgeID]struct{}, len(g.adjacency[i]))
	}
	for eid, e := range g.edges {
		ne := *e
		clone.edges[eid] = &ne
		clone.linkLocked(e.From, e.To, eid)
		if e.From != e.To {
			clone.linkLocked(e.To, e.From, eid)
		}
	}

	return clone
}
