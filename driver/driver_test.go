// SPDX-License-Identifier: MIT
package driver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroad/core"
	"github.com/katalvlaran/lvroad/driver"
	"github.com/katalvlaran/lvroad/nn"
	"github.com/katalvlaran/lvroad/roadmap"
	"github.com/katalvlaran/lvroad/space"
)

const perBatch = 10

// build is a BuildFunc over the unit square with a KD-tree index.
func build(seed uint64) (roadmap.Generator, *core.Graph, error) {
	sp, err := space.NewRealVector(space.NewBounds(2, 0, 1))
	if err != nil {
		return nil, nil, err
	}
	g := core.NewGraph()
	r, err := roadmap.New(sp, g, nn.NewKDTree(2),
		roadmap.WithNumPerBatch(perBatch), roadmap.WithRadiusFirstBatch(0.5), roadmap.WithSeed(seed))
	if err != nil {
		return nil, nil, err
	}

	return r, g, nil
}

func mustBuild(t *testing.T, seed uint64) (roadmap.Generator, *core.Graph) {
	t.Helper()
	gen, g, err := build(seed)
	require.NoError(t, err)

	return gen, g
}

func TestBudget_Validate(t *testing.T) {
	assert.ErrorIs(t, driver.Budget{}.Validate(), driver.ErrBudget)
	assert.ErrorIs(t, driver.Budget{Batches: -1}.Validate(), driver.ErrBudget)
	assert.NoError(t, driver.Budget{Batches: 1}.Validate())
	assert.NoError(t, driver.Budget{MaxVertices: 1}.Validate())
}

func TestRun_BatchBudget(t *testing.T) {
	gen, g := mustBuild(t, 42)
	res, err := driver.Run(context.Background(), gen, driver.Budget{Batches: 3})
	require.NoError(t, err)

	assert.Equal(t, driver.StopBatches, res.Stop)
	assert.Equal(t, 3, res.Batches)
	assert.Equal(t, 3*perBatch, res.Vertices)
	assert.Equal(t, 3*perBatch, g.VertexCount())
	assert.Equal(t, roadmap.Name, res.Generator)
	assert.Equal(t, uint64(42), res.Seed)
	assert.NotEmpty(t, res.RunID)

	// A second run continues from the current batch count.
	res, err = driver.Run(context.Background(), gen, driver.Budget{Batches: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Batches)
}

func TestRun_VertexBudget(t *testing.T) {
	gen, g := mustBuild(t, 1)
	res, err := driver.Run(context.Background(), gen, driver.Budget{MaxVertices: 35})
	require.NoError(t, err)

	assert.Equal(t, driver.StopVertices, res.Stop)
	assert.Equal(t, 3, res.Batches)
	assert.Equal(t, 30, g.VertexCount())
}

func TestRun_CancelledContext(t *testing.T) {
	gen, g := mustBuild(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := driver.Run(ctx, gen, driver.Budget{Batches: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, gen.Initialized())
	assert.Equal(t, 0, res.Batches)
	assert.Equal(t, 0, g.VertexCount())
}

func TestRun_Errors(t *testing.T) {
	_, err := driver.Run(context.Background(), nil, driver.Budget{Batches: 1})
	assert.ErrorIs(t, err, driver.ErrNilGenerator)

	gen, _ := mustBuild(t, 1)
	_, err = driver.Run(context.Background(), gen, driver.Budget{})
	assert.ErrorIs(t, err, driver.ErrBudget)

	sp, err := space.NewRealVector(space.NewBounds(2, 0, 1))
	require.NoError(t, err)
	unset, err := roadmap.New(sp, core.NewGraph(), nn.NewLinear(sp.Distance))
	require.NoError(t, err)
	_, err = driver.Run(context.Background(), unset, driver.Budget{Batches: 1})
	assert.ErrorIs(t, err, roadmap.ErrConfiguration)
}

func TestEnsemble_SeedOrderAndDeterminism(t *testing.T) {
	seeds := []uint64{5, 1, 5, 9}
	results, err := driver.Ensemble(context.Background(), seeds, build, driver.Budget{Batches: 2}, 2)
	require.NoError(t, err)
	require.Len(t, results, len(seeds))

	for i, res := range results {
		assert.Equal(t, seeds[i], res.Seed)
		assert.Equal(t, 2, res.Batches)
		require.NotNil(t, res.Graph)
		assert.Equal(t, 2*perBatch, res.Graph.VertexCount())
	}
	assert.Equal(t, results[0].Graph.Edges(), results[2].Graph.Edges())
	assert.NotEqual(t, results[0].RunID, results[2].RunID)

	p5, err := results[0].Graph.Point(0)
	require.NoError(t, err)
	p1, err := results[1].Graph.Point(0)
	require.NoError(t, err)
	assert.NotEqual(t, p5, p1)
}

func TestEnsemble_BuildError(t *testing.T) {
	errBuild := errors.New("boom")
	failing := func(seed uint64) (roadmap.Generator, *core.Graph, error) {
		if seed == 2 {
			return nil, nil, errBuild
		}
		return build(seed)
	}

	_, err := driver.Ensemble(context.Background(), []uint64{1, 2, 3}, failing, driver.Budget{Batches: 1}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBuild)
}

func TestEnsemble_InvalidBudget(t *testing.T) {
	_, err := driver.Ensemble(context.Background(), []uint64{1}, build, driver.Budget{}, 1)
	assert.ErrorIs(t, err, driver.ErrBudget)
}
