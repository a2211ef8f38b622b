// SPDX-License-Identifier: MIT
// Package: lvroad/roadmap
//
// halton_off_dens.go - the offset Halton densifying roadmap generator.
//
// Lifecycle:
//   • New validates the space (bounded real vector, dim <= halton.MaxDimension)
//     and applies options through the setters.
//   • Initialize checks num_per_batch and radius_first_batch, then draws the
//     offset once from space.NewSampler(seed).
//   • Generate appends vertices [k·n, (k+1)·n) for batch k, connecting each to
//     every earlier vertex within Radius(k).
//
// Atomicity:
//   • One vertex is the unit of rollback: if indexing or connecting vertex v
//     fails, the graph is truncated back to v and v is removed from the index.
//     The batch counter only moves once the whole batch succeeded, so a retried
//     Generate resumes at the failed vertex.
//
// Complexity (n vertices so far, b per batch, q = index query cost):
//   • Generate: O(b·(dim + q + deg)).

package roadmap

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvroad/core"
	"github.com/katalvlaran/lvroad/halton"
	"github.com/katalvlaran/lvroad/nn"
	"github.com/katalvlaran/lvroad/param"
	"github.com/katalvlaran/lvroad/space"
)

// Name is the generator family reported by HaltonOffDens.Name.
const Name = "HaltonOffDens"

// Parameter names exposed through Params.
const (
	ParamNumPerBatch      = "num_per_batch"
	ParamRadiusFirstBatch = "radius_first_batch"
	ParamSeed             = "seed"
)

// HaltonOffDens is a deterministic densifying roadmap over a bounded real
// vector space. Construct with New; the zero value is not usable.
type HaltonOffDens struct {
	space  space.Space
	graph  Graph
	nn     nn.Index
	logger *slog.Logger
	params *param.Set

	dim    int
	bounds space.Bounds
	bases  []int // bases[i] = i-th prime

	numPerBatch      uint
	radiusFirstBatch float64
	seed             uint64

	initialized      bool
	offset           []float64
	batchesGenerated int
}

var _ Generator = (*HaltonOffDens)(nil)

// New binds a generator to a space, a graph and a nearest-neighbor index.
// The space must be a bounded real vector space of dimension 1..halton.MaxDimension;
// violations return errors matching ErrConfiguration.
func New(sp space.Space, g Graph, idx nn.Index, opts ...Option) (*HaltonOffDens, error) {
	if sp == nil || g == nil || idx == nil {
		return nil, fmt.Errorf("New: %w", ErrNilCollaborator)
	}
	if sp.Kind() != space.KindRealVector {
		return nil, fmt.Errorf("New: kind %s: %w", sp.Kind(), ErrUnsupportedSpace)
	}
	dim := sp.Dimension()
	if dim < 1 {
		return nil, fmt.Errorf("New: dimension %d: %w", dim, ErrUnsupportedSpace)
	}
	if dim > halton.MaxDimension {
		return nil, fmt.Errorf("New: dimension %d > %d: %w", dim, halton.MaxDimension, ErrDimensionTooLarge)
	}
	bounds := sp.Bounds()
	if bounds.Dim() != dim {
		return nil, fmt.Errorf("New: bounds dimension %d != %d: %w", bounds.Dim(), dim, ErrUnsupportedSpace)
	}
	if err := bounds.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w: %w", ErrUnsupportedSpace, err)
	}

	r := &HaltonOffDens{
		space:  sp,
		graph:  g,
		nn:     idx,
		logger: slog.New(slog.DiscardHandler),
		dim:    dim,
		bounds: bounds,
		bases:  make([]int, dim),
	}
	for i := range r.bases {
		r.bases[i] = halton.Prime(i)
	}
	if err := r.declareParams(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}

	return r, nil
}

func (r *HaltonOffDens) declareParams() error {
	r.params = param.NewSet()
	if err := param.Declare(r.params, ParamNumPerBatch, r.SetNumPerBatch, r.NumPerBatch); err != nil {
		return err
	}
	if err := param.Declare(r.params, ParamRadiusFirstBatch, r.SetRadiusFirstBatch, r.RadiusFirstBatch); err != nil {
		return err
	}
	return param.Declare(r.params, ParamSeed, r.SetSeed, r.Seed)
}

// Name returns "HaltonOffDens".
func (r *HaltonOffDens) Name() string { return Name }

// Params exposes num_per_batch, radius_first_batch and seed by name.
// Setting a parameter through the set obeys the same rules as the setters.
func (r *HaltonOffDens) Params() *param.Set { return r.params }

// SetNumPerBatch sets the batch size. After Initialize, only a value equal
// to the current one is accepted.
func (r *HaltonOffDens) SetNumPerBatch(n uint) error {
	if n == r.numPerBatch {
		return nil
	}
	if r.initialized {
		return fmt.Errorf("SetNumPerBatch(%d): %w", n, ErrAlreadyInitialized)
	}
	r.numPerBatch = n
	return nil
}

// NumPerBatch returns the batch size.
func (r *HaltonOffDens) NumPerBatch() uint { return r.numPerBatch }

// SetRadiusFirstBatch sets the batch-0 connection radius. Zero means unset;
// negative, NaN and infinite values are rejected.
func (r *HaltonOffDens) SetRadiusFirstBatch(radius float64) error {
	if radius == r.radiusFirstBatch {
		return nil
	}
	if r.initialized {
		return fmt.Errorf("SetRadiusFirstBatch(%g): %w", radius, ErrAlreadyInitialized)
	}
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return fmt.Errorf("SetRadiusFirstBatch(%g): %w", radius, ErrInvalidRadius)
	}
	r.radiusFirstBatch = radius
	return nil
}

// RadiusFirstBatch returns the batch-0 connection radius.
func (r *HaltonOffDens) RadiusFirstBatch() float64 { return r.radiusFirstBatch }

// SetSeed sets the seed of the offset draw.
func (r *HaltonOffDens) SetSeed(seed uint64) error {
	if seed == r.seed {
		return nil
	}
	if r.initialized {
		return fmt.Errorf("SetSeed(%d): %w", seed, ErrAlreadyInitialized)
	}
	r.seed = seed
	return nil
}

// Seed returns the seed of the offset draw.
func (r *HaltonOffDens) Seed() uint64 { return r.seed }

// Initialize freezes the parameters and draws the offset. It must be called
// exactly once, before the first Generate.
func (r *HaltonOffDens) Initialize() error {
	if r.initialized {
		return fmt.Errorf("Initialize: %w", ErrAlreadyInitialized)
	}
	if r.numPerBatch == 0 {
		return fmt.Errorf("Initialize: %w", ErrNumPerBatchUnset)
	}
	if r.radiusFirstBatch == 0 {
		return fmt.Errorf("Initialize: %w", ErrRadiusUnset)
	}

	r.offset = make([]float64, r.dim)
	r.space.NewSampler(r.seed).SampleUniform(r.offset)
	r.initialized = true

	r.logger.Info("roadmap initialized",
		slog.String("generator", Name),
		slog.Int("dim", r.dim),
		slog.Uint64("num_per_batch", uint64(r.numPerBatch)),
		slog.Float64("radius_first_batch", r.radiusFirstBatch),
		slog.Uint64("seed", r.seed),
		slog.Any("offset", r.offset),
	)
	return nil
}

// Initialized reports whether Initialize succeeded.
func (r *HaltonOffDens) Initialized() bool { return r.initialized }

// BatchesGenerated returns the number of completed batches.
func (r *HaltonOffDens) BatchesGenerated() int { return r.batchesGenerated }

// VertexCount returns the number of vertices in the underlying graph.
func (r *HaltonOffDens) VertexCount() int { return r.graph.VertexCount() }

// Dimension returns the space dimension.
func (r *HaltonOffDens) Dimension() int { return r.dim }

// Bounds returns a copy of the space bounds captured by New.
func (r *HaltonOffDens) Bounds() space.Bounds { return r.bounds.Clone() }

// Offset returns a copy of the offset, or nil before Initialize.
func (r *HaltonOffDens) Offset() []float64 {
	if !r.initialized {
		return nil
	}
	out := make([]float64, len(r.offset))
	copy(out, r.offset)
	return out
}

// Radius returns the connection radius of the given batch:
//
//	radiusFirstBatch · (1/(batch+1))^(1/dim)
//
// A negative batch is treated as batch 0.
func (r *HaltonOffDens) Radius(batch int) float64 {
	if batch < 0 {
		batch = 0
	}
	return r.radiusFirstBatch * math.Pow(1.0/float64(batch+1), 1.0/float64(r.dim))
}

// PointAt writes the position of Halton index v into dst, which must have
// length Dimension(). It is valid only after Initialize.
func (r *HaltonOffDens) PointAt(v int, dst []float64) error {
	if !r.initialized {
		return fmt.Errorf("PointAt(%d): %w", v, ErrNotInitialized)
	}
	if len(dst) != r.dim {
		return fmt.Errorf("PointAt(%d): len %d != %d: %w", v, len(dst), r.dim, space.ErrDimension)
	}
	if v < 0 {
		return fmt.Errorf("PointAt(%d): negative index: %w", v, ErrInvariant)
	}
	r.place(v, dst)
	return nil
}

// place computes offset + span·Halton(v) and wraps each coordinate once.
// The offset lies in [low, high) and the radical inverse in [0, 1), so one
// subtraction of the span always lands back inside the bounds.
func (r *HaltonOffDens) place(v int, dst []float64) {
	for i := 0; i < r.dim; i++ {
		span := r.bounds.Span(i)
		value := r.offset[i] + span*halton.Radical(r.bases[i], v)
		if value > r.bounds.High[i] {
			value -= span
		}
		dst[i] = value
	}
}

// Generate appends one batch of NumPerBatch vertices and their edges.
// On error the batch counter is unchanged, the failing vertex is rolled back,
// and vertices completed earlier in the batch are kept; calling Generate
// again resumes at the failed vertex.
func (r *HaltonOffDens) Generate() error {
	if !r.initialized {
		return fmt.Errorf("Generate: %w", ErrNotInitialized)
	}

	batch := r.batchesGenerated
	radius := r.Radius(batch)
	target := (batch + 1) * int(r.numPerBatch)
	start := r.graph.VertexCount()

	edges := 0
	for v := start; v < target; v++ {
		added, err := r.addVertex(v, batch, radius)
		if err != nil {
			return fmt.Errorf("Generate: batch %d vertex %d: %w", batch, v, err)
		}
		edges += added
	}
	r.batchesGenerated++

	r.logger.Debug("batch generated",
		slog.String("generator", Name),
		slog.Int("batch", batch),
		slog.Float64("radius", radius),
		slog.Int("vertices", target-start),
		slog.Int("edges", edges),
		slog.Int("total_vertices", r.graph.VertexCount()),
	)
	return nil
}

// addVertex places, indexes and connects Halton index v, returning the
// number of edges added. On failure v is rolled back from graph and index.
func (r *HaltonOffDens) addVertex(v, batch int, radius float64) (int, error) {
	point := make([]float64, r.dim)
	r.place(v, point)

	id := r.graph.AddVertex(
		core.WithVertexBatch(batch),
		core.WithShadow(false),
		core.WithPoint(point),
	)
	if int(id) != v {
		return 0, r.rollback(id, false, fmt.Errorf("got vertex %d: %w", id, ErrGraphOutOfSync))
	}
	if err := r.nn.Add(id, point); err != nil {
		return 0, r.rollback(id, false, err)
	}

	near, err := r.nn.NearestR(point, radius)
	if err != nil {
		return 0, r.rollback(id, true, err)
	}

	added := 0
	for _, u := range near {
		if u == id {
			continue
		}
		other, err := r.graph.Point(u)
		if err != nil {
			return 0, r.rollback(id, true, err)
		}
		_, err = r.graph.AddEdge(id, u,
			core.WithDistance(r.space.Distance(point, other)),
			core.WithEdgeBatch(batch),
		)
		if err != nil {
			return 0, r.rollback(id, true, err)
		}
		added++
	}

	return added, nil
}

// rollback removes vertex id (and its edges) from the graph and, if indexed,
// from the index. Rollback failures are joined onto cause.
func (r *HaltonOffDens) rollback(id core.VertexID, indexed bool, cause error) error {
	errs := []error{cause}
	if err := r.graph.Truncate(int(id)); err != nil {
		errs = append(errs, fmt.Errorf("rollback graph: %w", err))
	}
	if indexed {
		if err := r.nn.Remove(id); err != nil {
			errs = append(errs, fmt.Errorf("rollback index: %w", err))
		}
	}
	r.logger.Warn("vertex rolled back",
		slog.String("generator", Name),
		slog.Int("vertex", int(id)),
		slog.Any("error", cause),
	)
	return errors.Join(errs...)
}

// Replay builds a sibling generator with the same space and parameters over
// the empty g and idx, initializes it and regenerates batches batches.
// The result is identical to this generator's roadmap at that batch count.
func (r *HaltonOffDens) Replay(g Graph, idx nn.Index, batches int) (*HaltonOffDens, error) {
	if g == nil || idx == nil {
		return nil, fmt.Errorf("Replay: %w", ErrNilCollaborator)
	}
	if g.VertexCount() != 0 || idx.Len() != 0 {
		return nil, fmt.Errorf("Replay: %w", ErrNotEmpty)
	}
	sibling, err := New(r.space, g, idx,
		WithNumPerBatch(r.numPerBatch),
		WithRadiusFirstBatch(r.radiusFirstBatch),
		WithSeed(r.seed),
		WithLogger(r.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("Replay: %w", err)
	}
	if err = sibling.Initialize(); err != nil {
		return nil, fmt.Errorf("Replay: %w", err)
	}
	for i := 0; i < batches; i++ {
		if err = sibling.Generate(); err != nil {
			return nil, fmt.Errorf("Replay: %w", err)
		}
	}
	return sibling, nil
}
