// SPDX-License-Identifier: MIT
// Package: lvroad/driver
//
// driver.go - budgets, single runs and concurrent ensembles.

package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvroad/core"
	"github.com/katalvlaran/lvroad/roadmap"
)

// Sentinel errors for driver.
var (
	// ErrNilGenerator indicates Run was given no generator.
	ErrNilGenerator = errors.New("driver: nil generator")

	// ErrBudget indicates a budget that is negative or bounds nothing.
	ErrBudget = errors.New("driver: invalid budget")
)

// StopReason tells which budget ended a run.
type StopReason string

const (
	// StopBatches means the batch budget was met.
	StopBatches StopReason = "batches"
	// StopVertices means one more batch would exceed the vertex budget.
	StopVertices StopReason = "max_vertices"
)

// Budget bounds a run. Zero fields are unbounded, but at least one must be set.
type Budget struct {
	Batches     int `json:"batches" yaml:"batches"`
	MaxVertices int `json:"max_vertices" yaml:"max_vertices"`
}

// Validate reports ErrBudget for negative or all-zero budgets.
func (b Budget) Validate() error {
	if b.Batches < 0 || b.MaxVertices < 0 {
		return fmt.Errorf("Budget %+v: negative field: %w", b, ErrBudget)
	}
	if b.Batches == 0 && b.MaxVertices == 0 {
		return fmt.Errorf("Budget %+v: unbounded: %w", b, ErrBudget)
	}

	return nil
}

// Result describes a finished run.
type Result struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	Generator string        `json:"generator" yaml:"generator"`
	Seed      uint64        `json:"seed" yaml:"seed"`
	Batches   int           `json:"batches" yaml:"batches"`
	Vertices  int           `json:"vertices" yaml:"vertices"`
	Stop      StopReason    `json:"stop" yaml:"stop"`
	Elapsed   time.Duration `json:"elapsed" yaml:"elapsed"`

	// Graph is the roadmap built by an Ensemble member; Run leaves it nil.
	Graph *core.Graph `json:"-" yaml:"-"`
}

// Option configures Run and Ensemble.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes per-run records to l. Nil keeps the discard default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// batchSizer is implemented by generators with a fixed batch size, which
// lets Run stop before a batch that would overshoot MaxVertices.
type batchSizer interface {
	NumPerBatch() uint
}

// seeded is implemented by generators that expose their seed.
type seeded interface {
	Seed() uint64
}

// Run initializes gen if needed and generates batches until the budget is
// met. Batches already generated before the call count toward the budget.
// On a Generate error or context cancellation the partial Result is
// returned together with the error.
func Run(ctx context.Context, gen roadmap.Generator, budget Budget, opts ...Option) (Result, error) {
	if gen == nil {
		return Result{}, fmt.Errorf("Run: %w", ErrNilGenerator)
	}
	if err := budget.Validate(); err != nil {
		return Result{}, fmt.Errorf("Run: %w", err)
	}
	o := newOptions(opts)

	res := Result{RunID: uuid.NewString(), Generator: gen.Name()}
	if s, ok := gen.(seeded); ok {
		res.Seed = s.Seed()
	}
	logger := o.logger.With(slog.String("run_id", res.RunID), slog.String("generator", res.Generator))

	start := time.Now()
	finish := func(err error) (Result, error) {
		res.Batches = gen.BatchesGenerated()
		res.Vertices = gen.VertexCount()
		res.Elapsed = time.Since(start)
		if err != nil {
			logger.Error("run failed", slog.Int("batches", res.Batches), slog.Any("error", err))
			return res, err
		}
		logger.Info("run finished",
			slog.Int("batches", res.Batches),
			slog.Int("vertices", res.Vertices),
			slog.String("stop", string(res.Stop)),
			slog.Duration("elapsed", res.Elapsed),
		)
		return res, nil
	}

	if !gen.Initialized() {
		if err := gen.Initialize(); err != nil {
			return finish(fmt.Errorf("Run: %w", err))
		}
	}

	for {
		if budget.Batches > 0 && gen.BatchesGenerated() >= budget.Batches {
			res.Stop = StopBatches
			return finish(nil)
		}
		if budget.MaxVertices > 0 && wouldExceed(gen, budget.MaxVertices) {
			res.Stop = StopVertices
			return finish(nil)
		}
		if err := ctx.Err(); err != nil {
			return finish(fmt.Errorf("Run: %w", err))
		}
		if err := gen.Generate(); err != nil {
			return finish(fmt.Errorf("Run: %w", err))
		}
	}
}

// wouldExceed reports whether the next batch takes the roadmap past maxVertices.
// Without a known batch size it stops once maxVertices is reached.
func wouldExceed(gen roadmap.Generator, maxVertices int) bool {
	n := gen.VertexCount()
	if bs, ok := gen.(batchSizer); ok {
		return n+int(bs.NumPerBatch()) > maxVertices
	}

	return n >= maxVertices
}

// BuildFunc constructs a fresh generator and the graph it writes to for one
// ensemble member. It is called from the member's goroutine.
type BuildFunc func(seed uint64) (roadmap.Generator, *core.Graph, error)

// Ensemble runs one roadmap per seed with at most limit running at once
// (limit <= 0 means unbounded). Results are in seed order. The first error
// cancels the other members and is returned.
func Ensemble(ctx context.Context, seeds []uint64, build BuildFunc, budget Budget, limit int, opts ...Option) ([]Result, error) {
	if err := budget.Validate(); err != nil {
		return nil, fmt.Errorf("Ensemble: %w", err)
	}

	results := make([]Result, len(seeds))
	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, seed := range seeds {
		eg.Go(func() error {
			gen, g, err := build(seed)
			if err != nil {
				return fmt.Errorf("Ensemble: seed %d: %w", seed, err)
			}
			res, err := Run(egCtx, gen, budget, opts...)
			res.Seed = seed
			res.Graph = g
			results[i] = res
			if err != nil {
				return fmt.Errorf("Ensemble: seed %d: %w", seed, err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
