// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - AddVertex hands out 0, 1, 2, … in call order.
//   - Vertices() returns IDs ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert → muEdgeAdj).

package core

import "fmt"

// AddVertex appends a new vertex and returns its ID, which equals the vertex
// count before the call.
//
// Implementation:
//   - Stage 1: Under muVert write lock, allocate the Vertex and apply opts.
//   - Stage 2: Under muEdgeAdj write lock, bootstrap an empty adjacency bucket.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(opts ...VertexOption) VertexID {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	id := VertexID(len(g.vertices))
	v := &Vertex{ID: id}
	for _, opt := range opts {
		opt(v)
	}
	v.ID = id // options must not rename the vertex
	g.vertices = append(g.vertices, v)

	g.muEdgeAdj.Lock()
	g.adjacency = append(g.adjacency, make(map[VertexID]map[EdgeID]struct{}))
	g.muEdgeAdj.Unlock()

	return id
}

// HasVertex reports whether id names an existing vertex.
// Complexity: O(1).
func (g *Graph) HasVertex(id VertexID) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.hasVertexLocked(id)
}

// Vertex returns a copy of the vertex record. The Point slice is copied too.
// Returns ErrVertexNotFound for unknown IDs.
// Complexity: O(dim).
func (g *Graph) Vertex(id VertexID) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if !g.hasVertexLocked(id) {
		return Vertex{}, fmt.Errorf("Vertex(%d): %w", id, ErrVertexNotFound)
	}
	v := *g.vertices[id]
	v.Point = append([]float64(nil), v.Point...)

	return v, nil
}

// Point returns the stored coordinates of id without copying.
// The slice must be treated as read-only.
// Complexity: O(1).
func (g *Graph) Point(id VertexID) ([]float64, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if !g.hasVertexLocked(id) {
		return nil, fmt.Errorf("Point(%d): %w", id, ErrVertexNotFound)
	}

	return g.vertices[id].Point, nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []VertexID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]VertexID, len(g.vertices))
	for i := range ids {
		ids[i] = VertexID(i)
	}

	return ids
}

// VertexCount returns the number of vertices, which is also the next ID
// AddVertex will return.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// hasVertexLocked expects muVert held.
func (g *Graph) hasVertexLocked(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}
