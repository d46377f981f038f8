package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tween/anim"
)

const boxSize = 48

// Box is an on-screen square driven by one configured animation.
type Box struct {
	ID    uint64
	Name  string
	Color color.RGBA
	Alpha float64
	anim.Transform

	home anim.Vec3
}

func newBox(id uint64, name string, home anim.Vec3) *Box {
	b := &Box{
		ID:    id,
		Name:  name,
		Color: palette[int(id)%len(palette)],
		home:  home,
	}
	b.Reset()
	return b
}

var palette = []color.RGBA{
	{R: 0x4c, G: 0x9a, B: 0xd9, A: 0xff},
	{R: 0xe0, G: 0x7a, B: 0x3c, A: 0xff},
	{R: 0x6a, G: 0xc2, B: 0x6a, A: 0xff},
	{R: 0xc9, G: 0x5a, B: 0xb8, A: 0xff},
	{R: 0xe8, G: 0xc5, B: 0x47, A: 0xff},
}

// Reset puts the box back at its home position at full size and opacity.
func (b *Box) Reset() {
	b.Position = b.home
	b.Rotation = anim.Vec3{}
	b.Scale = anim.Vec3{X: 1, Y: 1, Z: 1}
	b.Alpha = 1
}

// SetPosition offsets the animated position by the box's home slot.
func (b *Box) SetPosition(v anim.Vec3) {
	b.Position = b.home.Add(v)
}

func (b *Box) SetAlpha(v float64) {
	b.Alpha = math.Max(0, math.Min(1, v))
}

var pixel *ebiten.Image

func (b *Box) Draw(screen *ebiten.Image) {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(boxSize*b.Scale.X, boxSize*b.Scale.Y)
	op.GeoM.Rotate(b.Rotation.Z * math.Pi / 180)
	op.GeoM.Translate(b.Position.X, b.Position.Y)
	op.ColorScale.ScaleWithColor(b.Color)
	op.ColorScale.ScaleAlpha(float32(b.Alpha))
	screen.DrawImage(pixel, op)

	vector.StrokeRect(screen, float32(b.home.X-boxSize/2), float32(b.home.Y-boxSize/2), boxSize, boxSize, 1, color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}, false)
}
