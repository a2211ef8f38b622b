// SPDX-License-Identifier: MIT
package space_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroad/space"
)

func TestBounds_Validate(t *testing.T) {
	tests := []struct {
		name string
		b    space.Bounds
		ok   bool
	}{
		{"unit square", space.NewBounds(2, 0, 1), true},
		{"mixed axes", space.Bounds{Low: []float64{-1, 5}, High: []float64{1, 6}}, true},
		{"empty", space.Bounds{}, false},
		{"length mismatch", space.Bounds{Low: []float64{0, 0}, High: []float64{1}}, false},
		{"inverted", space.Bounds{Low: []float64{1}, High: []float64{0}}, false},
		{"degenerate", space.Bounds{Low: []float64{1}, High: []float64{1}}, false},
		{"nan", space.Bounds{Low: []float64{math.NaN()}, High: []float64{1}}, false},
		{"inf", space.Bounds{Low: []float64{0}, High: []float64{math.Inf(1)}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.b.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, space.ErrBounds)
		})
	}
}

func TestBounds_Helpers(t *testing.T) {
	b := space.Bounds{Low: []float64{-1, 2}, High: []float64{3, 2.5}}
	assert.Equal(t, 2, b.Dim())
	assert.InDelta(t, 4.0, b.Span(0), 1e-12)
	assert.InDelta(t, 0.5, b.Span(1), 1e-12)
	assert.True(t, b.Contains([]float64{3, 2}))
	assert.False(t, b.Contains([]float64{3.1, 2}))
	assert.False(t, b.Contains([]float64{0}))

	c := b.Clone()
	c.Low[0] = 100
	assert.Equal(t, -1.0, b.Low[0], "Clone must not alias")
}

func TestRealVector(t *testing.T) {
	_, err := space.NewRealVector(space.Bounds{})
	require.ErrorIs(t, err, space.ErrBounds)

	s, err := space.NewRealVector(space.NewBounds(3, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, space.KindRealVector, s.Kind())
	assert.Equal(t, "RealVector", s.Kind().String())
	assert.Equal(t, 3, s.Dimension())
	assert.InDelta(t, 5.0, s.Distance([]float64{0, 0, 0}, []float64{0, 3, 4}), 1e-12)
	assert.InDelta(t, s.Distance([]float64{1, 2, 0}, []float64{0, 0, 1}),
		s.Distance([]float64{0, 0, 1}, []float64{1, 2, 0}), 1e-15, "symmetric")

	b := s.Bounds()
	b.High[0] = -5
	assert.Equal(t, 2.0, s.Bounds().High[0], "Bounds must return a copy")
}

func TestSampler_DeterministicAndInBounds(t *testing.T) {
	bounds := space.Bounds{Low: []float64{-2, 10}, High: []float64{-1, 20}}
	s, err := space.NewRealVector(bounds)
	require.NoError(t, err)

	a, b := s.NewSampler(42), s.NewSampler(42)
	other := s.NewSampler(43)
	pa, pb, po := make([]float64, 2), make([]float64, 2), make([]float64, 2)
	differs := false
	for i := 0; i < 100; i++ {
		a.SampleUniform(pa)
		b.SampleUniform(pb)
		other.SampleUniform(po)
		require.Equal(t, pa, pb, "equal seeds must give equal streams")
		require.True(t, bounds.Contains(pa), "sample %v outside bounds", pa)
		if pa[0] != po[0] || pa[1] != po[1] {
			differs = true
		}
	}
	assert.True(t, differs, "different seeds should give different streams")
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "SO2", space.KindSO2.String())
	assert.Equal(t, "Compound", space.KindCompound.String())
	assert.Equal(t, "Unknown", space.KindUnknown.String())
}
