// Package curve implements cubic Bezier easing curves that are sampled once into a
// lookup table and evaluated per tick without solving the Bezier parametrization.
package curve

import "fmt"

// SampleCount is the length of every curve's sample table.
const SampleCount = 100

// Vec2 is a point in the unit square the curve is drawn in.
type Vec2 struct {
	X, Y float64
}

// Curve is a cubic Bezier from (0,0) to (1,1) shaped by two interior control handles.
// Handles are not validated; values outside the unit square produce overshooting or
// non-monotone curves.
type Curve struct {
	Handle1 Vec2
	Handle2 Vec2

	samples [SampleCount]Vec2
}

// New creates a curve from two control handles and builds its sample table.
func New(x1, y1, x2, y2 float64) *Curve {
	c := &Curve{
		Handle1: Vec2{X: x1, Y: y1},
		Handle2: Vec2{X: x2, Y: y2},
	}
	c.Recreate()
	return c
}

// Default returns the curve animators use when no easing is configured.
func Default() *Curve {
	return New(0.5, 0.0, 0.5, 0.9)
}

// Linear returns a curve whose evaluation is the identity up to sampling error.
func Linear() *Curve {
	return New(1.0/3.0, 1.0/3.0, 2.0/3.0, 2.0/3.0)
}

// Recreate regenerates the whole sample table from the current handles.
// The last sample is always exactly (1,1).
func (c *Curve) Recreate() {
	p0 := Vec2{}
	p1 := Vec2{X: 1, Y: 1}
	for i := 0; i < SampleCount-1; i++ {
		t := float64(i) / SampleCount
		c.samples[i] = cubicPoint(t, p0, c.Handle1, c.Handle2, p1)
	}
	c.samples[SampleCount-1] = p1
}

// SetHandles replaces both handles and rebuilds the table.
func (c *Curve) SetHandles(h1, h2 Vec2) {
	c.Handle1 = h1
	c.Handle2 = h2
	c.Recreate()
}

// Evaluate maps linear progress t to eased progress.
//
// The first sample whose x exceeds t is interpolated against its predecessor, so a
// non-monotone table still yields a deterministic, bounded value. The predecessor of
// the first sample is the origin. When no sample exceeds t the result is exactly 1.
func (c *Curve) Evaluate(t float64) float64 {
	prev := Vec2{}
	for i := range c.samples {
		item := c.samples[i]
		if item.X > t {
			if i > 0 {
				prev = c.samples[i-1]
			}
			rangeX := item.X - prev.X
			if rangeX <= 0 {
				return item.Y
			}
			percent := (t - prev.X) / rangeX
			return prev.Y + (item.Y-prev.Y)*percent
		}
	}
	return 1
}

// Samples returns a copy of the sample table.
func (c *Curve) Samples() []Vec2 {
	out := make([]Vec2, SampleCount)
	copy(out, c.samples[:])
	return out
}

// Monotone reports whether sample x values strictly increase.
func (c *Curve) Monotone() bool {
	for i := 1; i < SampleCount; i++ {
		if c.samples[i].X <= c.samples[i-1].X {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the curve.
func (c *Curve) Clone() *Curve {
	clone := *c
	return &clone
}

func (c *Curve) String() string {
	return fmt.Sprintf("(%g, %g) - (%g, %g)", c.Handle1.X, c.Handle1.Y, c.Handle2.X, c.Handle2.Y)
}

func cubicPoint(t float64, p0, c1, c2, p1 Vec2) Vec2 {
	return Vec2{
		X: cubicValue(t, p0.X, c1.X, c2.X, p1.X),
		Y: cubicValue(t, p0.Y, c1.Y, c2.Y, p1.Y),
	}
}

func cubicValue(t, p0, c1, c2, p1 float64) float64 {
	u := 1 - t
	return u*u*u*p0 + 3*u*u*t*c1 + 3*u*t*t*c2 + t*t*t*p1
}
