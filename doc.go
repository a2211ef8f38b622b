// SPDX-License-Identifier: MIT
// Package lvroad builds deterministic, densifying roadmaps for
// sampling-based motion planning.
//
// A roadmap is grown in batches over a bounded real vector space: batch k
// adds vertices [k·n, (k+1)·n) at offset Halton positions and connects each
// new vertex to every earlier vertex within a radius that shrinks as
// (1/(k+1))^(1/dim). Given the same space, seed and parameters, two runs
// produce bit-identical roadmaps batch for batch.
//
// Packages:
//
//	halton/     - prime table and radical-inverse (van der Corput) sequences
//	space/      - configuration-space bounds, Euclidean metric, seeded sampler
//	core/       - thread-safe roadmap graph with batch-tagged vertices and edges
//	nn/         - radius-query indices: brute-force Linear and gonum KD-tree
//	param/      - typed, named parameters for host applications
//	roadmap/    - the HaltonOffDens generator
//	driver/     - budgeted runs and concurrent seed ensembles
//	summary/    - degree, edge-length and connectivity statistics
//	converters/ - export to gonum graphs
//	config/     - YAML + .env + environment configuration
//	cmd/lvroad  - command-line front end
//
// Quick start:
//
//	sp, _ := space.NewRealVector(space.NewBounds(2, 0, 1))
//	g := core.NewGraph()
//	r, _ := roadmap.New(sp, g, nn.NewKDTree(2),
//		roadmap.WithNumPerBatch(100), roadmap.WithRadiusFirstBatch(0.5), roadmap.WithSeed(42))
//	_ = r.Initialize()
//	for i := 0; i < 4; i++ {
//		_ = r.Generate()
//	}
package lvroad
