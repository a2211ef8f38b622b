// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvroad/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Avoid magic numbers in test bodies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroad/core"
)

// Common batch tags and sizes used across core tests.
const (
	Batch0 = 0
	Batch1 = 1
	Batch2 = 2

	NConcurrentAdds = 200
	NReaders        = 50
)

// NewSquare builds the 4-cycle 0-1-2-3-0 on the unit square corners,
// tagging vertices and edges with Batch0 and unit distances.
func NewSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	corners := [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for _, p := range corners {
		g.AddVertex(core.WithVertexBatch(Batch0), core.WithPoint(p))
	}
	for i := 0; i < 4; i++ {
		_, err := g.AddEdge(core.VertexID(i), core.VertexID((i+1)%4),
			core.WithEdgeBatch(Batch0), core.WithDistance(1))
		require.NoError(t, err)
	}

	return g
}

// EdgeIDs extracts IDs in slice order.
func EdgeIDs(edges []core.Edge) []core.EdgeID {
	ids := make([]core.EdgeID, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}

	return ids
}
