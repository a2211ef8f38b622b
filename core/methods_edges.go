// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Policy:
//   - Edges are undirected; adjacency is mirrored for u != v.
//   - Loops and parallel edges are rejected unless enabled at construction.
//   - Edges() is sorted by ID, i.e. creation order.

package core

import (
	"fmt"
	"sort"
)

// AddEdge joins from and to with a new undirected edge, applies opts, and
// returns the edge ID.
//
// Implementation:
//   - Stage 1: Under muVert read lock, verify both endpoints exist and apply
//     the loop policy. The read lock is held to the end so Truncate cannot
//     shrink adjacency mid-call.
//   - Stage 2: Under muEdgeAdj write lock, enforce the multi-edge policy,
//     allocate the ID and insert into catalog and mirrored adjacency.
//
// Behavior highlights:
//   - From/To are stored as given; roadmap generators pass (new, existing).
//   - Options set attributes only (Batch, Distance); ID and endpoints are
//     always the ones allocated here.
//   - A loop is linked once; a regular edge is linked in both directions.
//
// Inputs:
//   - from, to: existing vertex IDs.
//   - opts: EdgeOption values applied left-to-right.
//
// Returns:
//   - EdgeID: the next value of the monotonic edge counter.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is missing.
//   - ErrLoopNotAllowed if from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed if from–to already exists without WithMultiEdges.
//
// Determinism:
//   - Edge IDs follow call order; identical call sequences give identical IDs.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(from, to VertexID, opts ...EdgeOption) (EdgeID, error) {
	// Hold muVert for the whole call so Truncate cannot shrink adjacency under us.
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if !g.hasVertexLocked(from) {
		return 0, fmt.Errorf("AddEdge(%d,%d): from: %w", from, to, ErrVertexNotFound)
	}
	if !g.hasVertexLocked(to) {
		return 0, fmt.Errorf("AddEdge(%d,%d): to: %w", from, to, ErrVertexNotFound)
	}
	if from == to && !g.allowLoops {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	eid := g.nextEdgeID
	g.nextEdgeID++

	e := &Edge{From: from, To: to}
	for _, opt := range opts {
		opt(e)
	}
	e.ID, e.From, e.To = eid, from, to // options only set attributes

	g.edges[eid] = e
	g.linkLocked(from, to, eid)
	if from != to {
		g.linkLocked(to, from, eid)
	}

	return eid, nil
}

// Edge returns a copy of the edge record.
// Complexity: O(1).
func (g *Graph) Edge(id EdgeID) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return Edge{}, fmt.Errorf("Edge(%d): %w", id, ErrEdgeNotFound)
	}

	return *e, nil
}

// HasEdge reports whether at least one edge joins u and v.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v VertexID) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if u < 0 || int(u) >= len(g.adjacency) {
		return false
	}

	return len(g.adjacency[u][v]) > 0
}

// Edges returns copies of all edges sorted by ID.
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// linkLocked expects muEdgeAdj held for writing.
func (g *Graph) linkLocked(u, v VertexID, eid EdgeID) {
	bucket := g.adjacency[u][v]
	if bucket == nil {
		bucket = make(map[EdgeID]struct{})
		g.adjacency[u][v] = bucket
	}
	bucket[eid] = struct{}{}
}

// unlinkLocked expects muEdgeAdj held for writing.
func (g *Graph) unlinkLocked(u, v VertexID, eid EdgeID) {
	if int(u) >= len(g.adjacency) {
		return
	}
	if bucket := g.adjacency[u][v]; bucket != nil {
		delete(bucket, eid)
		if len(bucket) == 0 {
			delete(g.adjacency[u], v)
		}
	}
}
