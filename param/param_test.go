// SPDX-License-Identifier: MIT
package param_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroad/param"
)

var errFrozen = errors.New("frozen")

// knobs is a small component with validated setters.
type knobs struct {
	count  uint
	scale  float64
	seed   uint64
	label  string
	frozen bool
}

func (k *knobs) setCount(v uint) error {
	if k.frozen {
		return errFrozen
	}
	k.count = v
	return nil
}

func newKnobSet(t *testing.T, k *knobs) *param.Set {
	t.Helper()
	s := param.NewSet()
	require.NoError(t, param.Declare(s, "count", k.setCount, func() uint { return k.count }))
	require.NoError(t, param.Declare(s, "scale",
		func(v float64) error { k.scale = v; return nil }, func() float64 { return k.scale }))
	require.NoError(t, param.Declare(s, "seed",
		func(v uint64) error { k.seed = v; return nil }, func() uint64 { return k.seed }))
	require.NoError(t, param.Declare(s, "label",
		func(v string) error { k.label = v; return nil }, func() string { return k.label }))

	return s
}

func TestSet_RoundTrip(t *testing.T) {
	k := &knobs{}
	s := newKnobSet(t, k)

	require.NoError(t, s.Set("count", "10"))
	require.NoError(t, s.Set("scale", "0.5"))
	require.NoError(t, s.Set("seed", "18446744073709551615"))
	require.NoError(t, s.Set("label", "halton"))

	assert.Equal(t, uint(10), k.count)
	assert.Equal(t, 0.5, k.scale)
	assert.Equal(t, uint64(1<<64-1), k.seed)

	v, err := s.Get("scale")
	require.NoError(t, err)
	assert.Equal(t, "0.5", v)
	assert.Equal(t, map[string]string{
		"count": "10", "label": "halton", "scale": "0.5", "seed": "18446744073709551615",
	}, s.Values())
	assert.Equal(t, []string{"count", "label", "scale", "seed"}, s.Names())
}

func TestSet_Errors(t *testing.T) {
	k := &knobs{}
	s := newKnobSet(t, k)

	require.ErrorIs(t, param.Declare(s, "count", k.setCount, func() uint { return 0 }), param.ErrDuplicate)
	require.ErrorIs(t, s.Set("nope", "1"), param.ErrUnknown)
	_, err := s.Get("nope")
	require.ErrorIs(t, err, param.ErrUnknown)
	require.ErrorIs(t, s.Set("count", "-3"), param.ErrParse)
	require.ErrorIs(t, s.Set("scale", "abc"), param.ErrParse)
	assert.False(t, s.Has("nope"))

	k.frozen = true
	require.ErrorIs(t, s.Set("count", "4"), errFrozen, "setter errors propagate")
}

func TestSet_Apply(t *testing.T) {
	k := &knobs{}
	s := newKnobSet(t, k)

	require.ErrorIs(t, s.Apply(map[string]string{"count": "3", "bogus": "1"}), param.ErrUnknown)
	assert.Zero(t, k.count, "unknown names are rejected before any setter runs")

	require.NoError(t, s.Apply(map[string]string{"count": "3", "scale": "2"}))
	assert.Equal(t, uint(3), k.count)
	assert.Equal(t, 2.0, k.scale)
}

func TestDeclare_BoolAndInt(t *testing.T) {
	var (
		on bool
		n  int
	)
	s := param.NewSet()
	require.NoError(t, param.Declare(s, "on", func(v bool) error { on = v; return nil }, func() bool { return on }))
	require.NoError(t, param.Declare(s, "n", func(v int) error { n = v; return nil }, func() int { return n }))

	require.NoError(t, s.Set("on", "true"))
	require.NoError(t, s.Set("n", "-7"))
	assert.True(t, on)
	assert.Equal(t, -7, n)
	require.ErrorIs(t, s.Set("on", "maybe"), param.ErrParse)
}
