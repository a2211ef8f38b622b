// SPDX-License-Identifier: MIT
// Package core_test verifies vertex/edge lifecycle, attributes, rollback and snapshots.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroad/core"
)

func TestAddVertex_ContiguousIDsAndAttributes(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		id := g.AddVertex(core.WithVertexBatch(i/2), core.WithShadow(false), core.WithPoint([]float64{float64(i)}))
		require.Equal(t, core.VertexID(i), id)
	}
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, []core.VertexID{0, 1, 2, 3, 4}, g.Vertices())

	v, err := g.Vertex(3)
	require.NoError(t, err)
	assert.Equal(t, core.VertexID(3), v.ID)
	assert.Equal(t, Batch1, v.Batch)
	assert.False(t, v.Shadow)
	assert.Equal(t, []float64{3}, v.Point)

	v.Point[0] = 99
	p, err := g.Point(3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, p[0], "Vertex must return a copy of the point")

	assert.True(t, g.HasVertex(4))
	assert.False(t, g.HasVertex(5))
	assert.False(t, g.HasVertex(-1))
	_, err = g.Vertex(5)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Point(-1)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestAddEdge_AttributesAndPolicy(t *testing.T) {
	g := core.NewGraph()
	a, b := g.AddVertex(), g.AddVertex()

	eid, err := g.AddEdge(a, b, core.WithEdgeBatch(Batch2), core.WithDistance(0.25))
	require.NoError(t, err)
	e, err := g.Edge(eid)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{ID: eid, From: a, To: b, Batch: Batch2, Distance: 0.25}, e)
	assert.Equal(t, b, e.Other(a))
	assert.Equal(t, a, e.Other(b))

	assert.True(t, g.HasEdge(a, b))
	assert.True(t, g.HasEdge(b, a), "undirected edges are mirrored")

	_, err = g.AddEdge(b, a)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge(a, a)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge(a, 7)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Edge(42)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_LoopsAndMultiEdgesWhenEnabled(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())
	a, b := g.AddVertex(), g.AddVertex()

	_, err := g.AddEdge(a, a)
	require.NoError(t, err)
	_, err = g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(b, a)
	require.NoError(t, err)

	deg, err := g.Degree(a)
	require.NoError(t, err)
	assert.Equal(t, 4, deg, "loop counts twice plus two parallel edges")

	nbs, err := g.Neighbors(a)
	require.NoError(t, err)
	assert.Len(t, nbs, 3, "loop appears once")
}

func TestNeighbors_Sorted(t *testing.T) {
	g := NewSquare(t)

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeID{0, 3}, EdgeIDs(nbs))

	ids, err := g.NeighborIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{1, 3}, ids)

	deg, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	_, err = g.Neighbors(9)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs(9)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(9)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestTruncate_RollsBackTail(t *testing.T) {
	g := NewSquare(t)
	v := g.AddVertex(core.WithVertexBatch(Batch1))
	_, err := g.AddEdge(v, 0)
	require.NoError(t, err)
	_, err = g.AddEdge(v, 2)
	require.NoError(t, err)
	require.Equal(t, 6, g.EdgeCount())

	require.NoError(t, g.Truncate(4))
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	ids, err := g.NeighborIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{1, 3}, ids, "mirrored adjacency cleaned")

	// The rolled-back tail is regenerated with identical IDs.
	again := g.AddVertex()
	assert.Equal(t, v, again)
	eid, err := g.AddEdge(again, 0)
	require.NoError(t, err)
	assert.Equal(t, core.EdgeID(4), eid)
}

func TestTruncate_RewindStopsAtHighestSurvivor(t *testing.T) {
	g := NewSquare(t) // edges 0..3
	v := g.AddVertex()
	_, err := g.AddEdge(v, 0) // edge 4, removed below
	require.NoError(t, err)
	_, err = g.AddEdge(1, 3) // edge 5, survives
	require.NoError(t, err)
	tail, err := g.AddEdge(v, 2) // edge 6, removed below
	require.NoError(t, err)
	require.Equal(t, core.EdgeID(6), tail)

	require.NoError(t, g.Truncate(4))
	assert.Equal(t, []core.EdgeID{0, 1, 2, 3, 5}, EdgeIDs(g.Edges()))

	// Edge 4 stays a gap; the counter resumes right after edge 5.
	again := g.AddVertex()
	eid, err := g.AddEdge(again, 0)
	require.NoError(t, err)
	assert.Equal(t, core.EdgeID(6), eid)

	require.NoError(t, g.Truncate(0))
	eid, err = g.AddEdge(g.AddVertex(), g.AddVertex())
	require.NoError(t, err)
	assert.Equal(t, core.EdgeID(0), eid, "empty graph restarts edge IDs")
}

func TestTruncate_Bounds(t *testing.T) {
	g := NewSquare(t)
	require.ErrorIs(t, g.Truncate(-1), core.ErrBadTruncate)
	require.ErrorIs(t, g.Truncate(5), core.ErrBadTruncate)
	require.NoError(t, g.Truncate(4), "no-op at current size")
	require.NoError(t, g.Truncate(0))
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestCloneAndClear(t *testing.T) {
	g := NewSquare(t)
	c := g.Clone()
	assert.Equal(t, g.Edges(), c.Edges())
	assert.Equal(t, g.VertexCount(), c.VertexCount())

	p, err := c.Point(1)
	require.NoError(t, err)
	p[0] = 42
	orig, err := g.Point(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, orig[0], "Clone must deep-copy points")

	g.Clear()
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Equal(t, 4, c.EdgeCount(), "clone unaffected by Clear")
	assert.Equal(t, core.VertexID(0), g.AddVertex())
}

func TestStats(t *testing.T) {
	g := NewSquare(t)
	g.AddVertex(core.WithVertexBatch(Batch2), core.WithShadow(true))
	st := g.Stats()
	assert.Equal(t, 5, st.VertexCount)
	assert.Equal(t, 4, st.EdgeCount)
	assert.Equal(t, 1, st.ShadowCount)
	assert.Equal(t, 3, st.Batches)
	assert.False(t, st.AllowsLoops)
	assert.False(t, st.AllowsMulti)

	assert.Zero(t, core.NewGraph().Stats().Batches)
}

func TestComponents(t *testing.T) {
	g := NewSquare(t)
	a := g.AddVertex()
	b := g.AddVertex()
	g.AddVertex()
	_, err := g.AddEdge(b, a)
	require.NoError(t, err)

	comps := g.Components()
	assert.Equal(t, [][]core.VertexID{{0, 1, 2, 3}, {4, 5}, {6}}, comps)
}
