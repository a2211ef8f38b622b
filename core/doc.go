// Package core provides the in-memory roadmap graph: an undirected graph whose
// vertices are numbered contiguously from zero and whose vertices and edges
// carry the attributes a roadmap generator records.
//
// Vertex attributes:
//
//   - Batch  – index of the generation batch that created the vertex
//   - Shadow – reserved flag for non-primary vertices (Halton roadmaps never set it)
//   - Point  – the configuration-space coordinates of the vertex
//
// Edge attributes:
//
//   - Batch    – index of the generation batch that created the edge
//   - Distance – precomputed metric distance between the two endpoints
//
// Identity:
//
//   - AddVertex returns IDs 0, 1, 2, … in strictly increasing order.
//   - Edge IDs come from a monotone counter (0, 1, 2, …).
//   - The only removal primitive is Truncate(n), which drops every vertex with
//     ID >= n together with its incident edges. Generators use it to roll back
//     a vertex whose insertion failed half-way.
//
// Configuration options (GraphOption):
//
//	– WithLoops()       permit self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed
//	– WithMultiEdges()  permit parallel edges; otherwise a second AddEdge(u,v) → ErrMultiEdgeNotAllowed
//
// Core methods:
//
//	AddVertex(opts ...VertexOption) VertexID              // O(1)
//	AddEdge(u, v VertexID, opts ...EdgeOption) (EdgeID, error) // O(1)†
//	Vertex(id) / Point(id) / Edge(id)                      // O(1)
//	Neighbors(id) / NeighborIDs(id) / Degree(id)           // O(d·log d)
//	Vertices() / Edges()                                   // O(V) / O(E·log E)
//	Truncate(n) / Clear() / Clone()
//	Stats() / Components()
//
// All methods are safe for concurrent use. Locks follow the order
// muVert → muEdgeAdj everywhere.
//
// † amortized; the multi-edge check is a map lookup.
package core
