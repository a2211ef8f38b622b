// SPDX-License-Identifier: MIT
// Package: lvroad/core
//
// types.go - Vertex, Edge, Graph, options and sentinel errors.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadTruncate indicates Truncate was asked for a size outside [0, VertexCount()].
	ErrBadTruncate = errors.New("core: truncate size out of range")
)

// VertexID identifies a vertex; IDs are dense and start at 0.
type VertexID int

// EdgeID identifies an edge; IDs are assigned from a monotone counter.
type EdgeID int

// Vertex is a roadmap vertex and its attributes.
type Vertex struct {
	// ID is the position of the vertex in creation order.
	ID VertexID

	// Batch is the generation batch that created the vertex.
	Batch int

	// Shadow marks non-primary vertices.
	Shadow bool

	// Point holds the configuration-space coordinates. Treat as read-only.
	Point []float64
}

// Edge is an undirected roadmap edge and its attributes.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID EdgeID

	// From is the endpoint passed first to AddEdge.
	From VertexID

	// To is the endpoint passed second to AddEdge.
	To VertexID

	// Batch is the generation batch that created the edge.
	Batch int

	// Distance is the metric distance between the endpoints.
	Distance float64
}

// Other returns the endpoint of e that is not v.
func (e Edge) Other(v VertexID) VertexID {
	if e.From == v {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// VertexOption sets attributes of a vertex when it is added.
type VertexOption func(*Vertex)

// WithVertexBatch tags the vertex with its generation batch.
func WithVertexBatch(batch int) VertexOption {
	return func(v *Vertex) { v.Batch = batch }
}

// WithShadow sets the shadow flag.
func WithShadow(shadow bool) VertexOption {
	return func(v *Vertex) { v.Shadow = shadow }
}

// WithPoint attaches configuration-space coordinates. The slice is stored
// as-is; the caller must not mutate it afterwards.
func WithPoint(p []float64) VertexOption {
	return func(v *Vertex) { v.Point = p }
}

// EdgeOption sets attributes of an edge when it is added.
type EdgeOption func(*Edge)

// WithEdgeBatch tags the edge with its generation batch.
func WithEdgeBatch(batch int) EdgeOption {
	return func(e *Edge) { e.Batch = batch }
}

// WithDistance records the endpoint distance on the edge.
func WithDistance(d float64) EdgeOption {
	return func(e *Edge) { e.Distance = d }
}

// Graph is the roadmap graph store.
//
// muVert protects vertices; muEdgeAdj protects edges, adjacency and nextEdgeID.
// adjacency[v][u] is the set of edge IDs joining v and u (mirrored for u != v).
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID EdgeID                             // next edge ID to hand out
	vertices   []*Vertex                          // vertex ID → Vertex
	edges      map[EdgeID]*Edge                   // edge ID → Edge
	adjacency  []map[VertexID]map[EdgeID]struct{} // vertex ID → neighbor → edges
}

// NewGraph creates an empty undirected Graph.
// By default there are no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		edges: make(map[EdgeID]*Edge),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsMulti bool
	AllowsLoops bool

	VertexCount int
	EdgeCount   int
	ShadowCount int

	// Batches is one past the largest vertex batch tag, or 0 for an empty graph.
	Batches int
}
