// SPDX-License-Identifier: MIT
// Package summary computes read-only statistics of a generated roadmap:
// sizes, per-batch growth, degree and edge-length distributions, and
// connectivity. Distribution statistics come from montanaflynn/stats.
package summary

import (
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/lvroad/core"
)

// BatchCount records how many vertices and edges one batch contributed.
type BatchCount struct {
	Batch    int `json:"batch" yaml:"batch"`
	Vertices int `json:"vertices" yaml:"vertices"`
	Edges    int `json:"edges" yaml:"edges"`
}

// Summary is a snapshot of roadmap statistics. Distribution fields are zero
// for an empty roadmap (no vertices, or no edges for the length fields).
type Summary struct {
	Vertices   int          `json:"vertices" yaml:"vertices"`
	Edges      int          `json:"edges" yaml:"edges"`
	Batches    int          `json:"batches" yaml:"batches"`
	PerBatch   []BatchCount `json:"per_batch" yaml:"per_batch"`
	Components int          `json:"components" yaml:"components"`
	Isolated   int          `json:"isolated" yaml:"isolated"`

	DegreeMean   float64 `json:"degree_mean" yaml:"degree_mean"`
	DegreeMedian float64 `json:"degree_median" yaml:"degree_median"`
	DegreeMax    int     `json:"degree_max" yaml:"degree_max"`

	EdgeLengthMin  float64 `json:"edge_length_min" yaml:"edge_length_min"`
	EdgeLengthMean float64 `json:"edge_length_mean" yaml:"edge_length_mean"`
	EdgeLengthMax  float64 `json:"edge_length_max" yaml:"edge_length_max"`
}

// Summarize walks g once for vertices and once for edges.
//
// Complexity: O(V log V + E log E), dominated by the median and sorted edge walk.
func Summarize(g *core.Graph) (Summary, error) {
	var s Summary

	ids := g.Vertices()
	s.Vertices = len(ids)
	perBatch := make(map[int]*BatchCount)
	batchOf := func(b int) *BatchCount {
		bc, ok := perBatch[b]
		if !ok {
			bc = &BatchCount{Batch: b}
			perBatch[b] = bc
		}
		return bc
	}

	degrees := make(stats.Float64Data, 0, len(ids))
	for _, id := range ids {
		v, err := g.Vertex(id)
		if err != nil {
			return Summary{}, fmt.Errorf("Summarize: %w", err)
		}
		batchOf(v.Batch).Vertices++

		d, err := g.Degree(id)
		if err != nil {
			return Summary{}, fmt.Errorf("Summarize: %w", err)
		}
		if d == 0 {
			s.Isolated++
		}
		if d > s.DegreeMax {
			s.DegreeMax = d
		}
		degrees = append(degrees, float64(d))
	}

	edges := g.Edges()
	s.Edges = len(edges)
	lengths := make(stats.Float64Data, 0, len(edges))
	for _, e := range edges {
		batchOf(e.Batch).Edges++
		lengths = append(lengths, e.Distance)
	}

	keys := make([]int, 0, len(perBatch))
	for b := range perBatch {
		keys = append(keys, b)
	}
	sort.Ints(keys)
	for _, b := range keys {
		s.PerBatch = append(s.PerBatch, *perBatch[b])
	}
	if len(keys) > 0 {
		s.Batches = keys[len(keys)-1] + 1
	}
	s.Components = len(g.Components())

	var err error
	if len(degrees) > 0 {
		if s.DegreeMean, err = degrees.Mean(); err != nil {
			return Summary{}, fmt.Errorf("Summarize: degree mean: %w", err)
		}
		if s.DegreeMedian, err = degrees.Median(); err != nil {
			return Summary{}, fmt.Errorf("Summarize: degree median: %w", err)
		}
	}
	if len(lengths) > 0 {
		if s.EdgeLengthMin, err = lengths.Min(); err != nil {
			return Summary{}, fmt.Errorf("Summarize: edge length min: %w", err)
		}
		if s.EdgeLengthMean, err = lengths.Mean(); err != nil {
			return Summary{}, fmt.Errorf("Summarize: edge length mean: %w", err)
		}
		if s.EdgeLengthMax, err = lengths.Max(); err != nil {
			return Summary{}, fmt.Errorf("Summarize: edge length max: %w", err)
		}
	}

	return s, nil
}
