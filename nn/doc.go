// SPDX-License-Identifier: MIT
// Package nn provides the nearest-neighbour index a roadmap generator
// queries when it connects a new vertex.
//
// The index stores (vertex ID, point) pairs and answers radius queries.
// Results are sorted by vertex ID and include the query vertex itself when it
// is stored; callers filter self-matches. Two implementations are provided:
//
//   - Linear: brute-force scan with any metric supplied by the caller.
//   - KDTree: gonum kd-tree, Euclidean metric only, sub-linear queries.
//
// Because both sort their output by ID, a roadmap built with either index
// receives the same neighbour sequence and therefore the same edges.
//
// Indexes are not safe for concurrent mutation; the generator that owns the
// graph also owns the index for the duration of a batch.
package nn
