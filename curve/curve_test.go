package curve_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/plus3/tween/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCurveEndpoints(t *testing.T) {
	c := curve.Default()

	assert.Equal(t, 0.0, c.Evaluate(0))
	assert.Equal(t, 1.0, c.Evaluate(1))
}

func TestLastSampleIsPinned(t *testing.T) {
	handles := [][4]float64{
		{0.5, 0.0, 0.5, 0.9},
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{-2, 3, 4, -5},
		{0.9, 0.1, 0.1, 0.9},
	}

	for _, h := range handles {
		c := curve.New(h[0], h[1], h[2], h[3])
		samples := c.Samples()
		require.Len(t, samples, curve.SampleCount)
		assert.Equal(t, curve.Vec2{X: 1, Y: 1}, samples[curve.SampleCount-1], "handles %v", h)
	}
}

func TestRecreateIsDeterministic(t *testing.T) {
	a := curve.New(0.17, 0.67, 0.83, 0.67)
	b := curve.New(0.17, 0.67, 0.83, 0.67)
	assert.Equal(t, a.Samples(), b.Samples())

	before := a.Samples()
	a.Recreate()
	assert.Equal(t, before, a.Samples())
}

func TestFirstSampleIsOrigin(t *testing.T) {
	c := curve.New(0.3, 0.8, 0.6, 0.1)
	assert.Equal(t, curve.Vec2{}, c.Samples()[0])
}

func TestSampleSpacing(t *testing.T) {
	c := curve.Linear()
	samples := c.Samples()

	for i := 0; i < curve.SampleCount-1; i++ {
		assert.InDelta(t, float64(i)/curve.SampleCount, samples[i].X, 1e-12)
		assert.InDelta(t, samples[i].X, samples[i].Y, 1e-12)
	}
}

func TestLinearIsIdentity(t *testing.T) {
	c := curve.Linear()

	for i := 0; i <= 98; i++ {
		x := float64(i) / 100
		assert.InDelta(t, x, c.Evaluate(x), 1e-9, "t=%v", x)
	}
}

func TestEvaluateOutsideUnitRange(t *testing.T) {
	c := curve.Default()

	t.Run("negative t does not read before the table", func(t *testing.T) {
		assert.Equal(t, 0.0, c.Evaluate(-0.5))
	})

	t.Run("t beyond one", func(t *testing.T) {
		assert.Equal(t, 1.0, c.Evaluate(1.5))
	})

	t.Run("nan", func(t *testing.T) {
		assert.Equal(t, 1.0, c.Evaluate(math.NaN()))
	})

	t.Run("infinities", func(t *testing.T) {
		assert.Equal(t, 1.0, c.Evaluate(math.Inf(1)))
		assert.Equal(t, 0.0, c.Evaluate(math.Inf(-1)))
	})
}

func TestEvaluateBetweenLastSamples(t *testing.T) {
	c := curve.Linear()
	samples := c.Samples()

	// the pinned last sample sits at x=1 while its neighbour sits at 0.98
	x := 0.99
	prev := samples[curve.SampleCount-2]
	expected := prev.Y + (1-prev.Y)*(x-prev.X)/(1-prev.X)
	assert.InDelta(t, expected, c.Evaluate(x), 1e-12)
}

func TestMonotoneInUnitSquare(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 200 {
		c := curve.New(rng.Float64(), rng.Float64(), rng.Float64(), rng.Float64())
		require.True(t, c.Monotone(), "curve %s", c)

		last := c.Evaluate(0)
		for step := 1; step <= 1000; step++ {
			x := float64(step) / 1000
			v := c.Evaluate(x)
			if v < last-1e-12 {
				t.Fatalf("curve %s decreased at t=%v: %v < %v", c, x, v, last)
			}
			last = v
		}
	}
}

func TestNonMonotoneHandles(t *testing.T) {
	// x handles outside [0,1] fold the curve back on itself
	c := curve.New(2.0, 0.2, -1.0, 0.8)
	assert.False(t, c.Monotone())

	for step := 0; step <= 100; step++ {
		x := float64(step) / 100
		v := c.Evaluate(x)
		assert.False(t, math.IsNaN(v), "t=%v", x)
		assert.False(t, math.IsInf(v, 0), "t=%v", x)
	}
	assert.Equal(t, c.Evaluate(0.4), c.Evaluate(0.4))
}

func TestSetHandlesRebuildsTable(t *testing.T) {
	c := curve.Default()
	before := c.Evaluate(0.5)

	c.SetHandles(curve.Vec2{X: 1.0 / 3.0, Y: 1.0 / 3.0}, curve.Vec2{X: 2.0 / 3.0, Y: 2.0 / 3.0})

	assert.NotEqual(t, before, c.Evaluate(0.5))
	assert.InDelta(t, 0.5, c.Evaluate(0.5), 1e-9)
}

func TestClone(t *testing.T) {
	c := curve.Default()
	clone := c.Clone()
	clone.SetHandles(curve.Vec2{X: 0.1, Y: 0.9}, curve.Vec2{X: 0.9, Y: 0.1})

	assert.Equal(t, curve.Default().Samples(), c.Samples())
	assert.NotEqual(t, c.Samples(), clone.Samples())
}

func TestString(t *testing.T) {
	assert.Equal(t, "(0.5, 0) - (0.5, 0.9)", curve.Default().String())
}

func TestPresets(t *testing.T) {
	for _, name := range curve.PresetNames() {
		c, err := curve.Preset(name)
		require.NoError(t, err, name)
		assert.Equal(t, 0.0, c.Evaluate(0), name)
		assert.Equal(t, 1.0, c.Evaluate(1), name)
	}

	_, err := curve.Preset("bounce")
	assert.ErrorIs(t, err, curve.ErrUnknownPreset)
}
