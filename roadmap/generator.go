// SPDX-License-Identifier: MIT
// Package: lvroad/roadmap
//
// generator.go - contracts shared by roadmap generators and their drivers.

package roadmap

import "github.com/katalvlaran/lvroad/core"

// Generator is the driver-facing surface of a batch roadmap generator.
type Generator interface {
	// Name identifies the generator family, e.g. "HaltonOffDens".
	Name() string
	// Initialize freezes parameters; it must be called exactly once.
	Initialize() error
	Initialized() bool
	// Generate appends one batch to the roadmap.
	Generate() error
	BatchesGenerated() int
	// VertexCount reports the current size of the underlying graph.
	VertexCount() int
}

// Graph is the graph store a generator appends to. *core.Graph satisfies it.
type Graph interface {
	VertexCount() int
	AddVertex(opts ...core.VertexOption) core.VertexID
	AddEdge(from, to core.VertexID, opts ...core.EdgeOption) (core.EdgeID, error)
	Point(id core.VertexID) ([]float64, error)
	// Truncate drops vertices with ID >= n and their edges.
	Truncate(n int) error
}

var _ Graph = (*core.Graph)(nil)
