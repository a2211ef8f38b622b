// SPDX-License-Identifier: MIT
// Package: lvroad/converters
//
// gonum.go - core.Graph → gonum simple.WeightedUndirectedGraph.
//
// Mapping:
//   • Vertex v        → simple.Node(v)
//   • Edge (u,v,d)    → weighted edge u–v with weight d
//   • Self-loops are skipped (gonum's simple graphs reject them).
//   • Parallel edges collapse to the shortest one.

package converters

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvroad/core"
)

// ToGonum exports g as an undirected weighted gonum graph. Missing edges
// report weight +Inf and self weight 0, which is what gonum/path expects.
//
// Complexity: O(V + E).
func ToGonum(g *core.Graph) *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for _, id := range g.Vertices() {
		out.AddNode(simple.Node(int64(id)))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		from, to := int64(e.From), int64(e.To)
		if prev := out.WeightedEdge(from, to); prev != nil && prev.Weight() <= e.Distance {
			continue
		}
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(from), simple.Node(to), e.Distance))
	}

	return out
}
