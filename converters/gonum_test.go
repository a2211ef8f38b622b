// SPDX-License-Identifier: MIT
package converters_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvroad/converters"
	"github.com/katalvlaran/lvroad/core"
)

// pathGraph builds 0-1-2 with distances 1 and 2, plus an isolated vertex 3.
func pathGraph(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for i := 0; i < 4; i++ {
		g.AddVertex(core.WithPoint([]float64{float64(i)}))
	}
	_, err := g.AddEdge(1, 0, core.WithDistance(1))
	require.NoError(t, err)
	_, err = g.AddEdge(2, 1, core.WithDistance(2))
	require.NoError(t, err)

	return g
}

func TestToGonum_NodesAndWeights(t *testing.T) {
	out := converters.ToGonum(pathGraph(t))

	assert.Equal(t, 4, out.Nodes().Len())
	assert.Equal(t, 2, out.Edges().Len())

	w, ok := out.Weight(0, 1)
	require.True(t, ok)
	assert.Equal(t, 1.0, w)
	w, ok = out.Weight(2, 1)
	require.True(t, ok)
	assert.Equal(t, 2.0, w)

	w, ok = out.Weight(0, 3)
	assert.False(t, ok)
	assert.True(t, math.IsInf(w, 1))
}

func TestToGonum_ShortestPath(t *testing.T) {
	out := converters.ToGonum(pathGraph(t))

	shortest := path.DijkstraFrom(out.Node(0), out)
	nodes, weight := shortest.To(2)
	require.Len(t, nodes, 3)
	assert.Equal(t, 3.0, weight)

	_, weight = shortest.To(3)
	assert.True(t, math.IsInf(weight, 1))
	assert.Len(t, topo.ConnectedComponents(out), 2)
}

func TestToGonum_LoopsAndParallelEdges(t *testing.T) {
	g := pathGraph(t, core.WithLoops(), core.WithMultiEdges())
	_, err := g.AddEdge(0, 0, core.WithDistance(0))
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, core.WithDistance(0.5))
	require.NoError(t, err)
	_, err = g.AddEdge(1, 0, core.WithDistance(4))
	require.NoError(t, err)

	out := converters.ToGonum(g)
	assert.Equal(t, 2, out.Edges().Len())
	w, ok := out.Weight(1, 0)
	require.True(t, ok)
	assert.Equal(t, 0.5, w)
}
