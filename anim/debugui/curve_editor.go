package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tween/config"
	"github.com/plus3/tween/curve"
)

const canvasSize = 180

// CurveEditor edits the shared curves of a library in place. Animators holding a
// curve see the new shape on their next tick.
type CurveEditor struct {
	lib      *config.Library
	selected string
	plot     []float32
}

func NewCurveEditor(lib *config.Library) *CurveEditor {
	return &CurveEditor{
		lib:  lib,
		plot: make([]float32, curve.SampleCount),
	}
}

func (ce *CurveEditor) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 420), imgui.CondOnce)
	if !imgui.BeginV("Curves", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, name := range ce.lib.Names() {
		if imgui.SelectableBoolV(name, ce.selected == name, imgui.SelectableFlagsNone, imgui.NewVec2(0, 0)) {
			ce.selected = name
		}
	}

	c, err := ce.lib.Get(ce.selected)
	if ce.selected == "" || err != nil {
		imgui.Text("Select a curve")
		imgui.End()
		return
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("%s %s", ce.selected, c))
	if imgui.TreeNodeStr("Presets") {
		for _, name := range curve.PresetNames() {
			if imgui.Button(name) {
				preset, _ := curve.Preset(name)
				c.SetHandles(preset.Handle1, preset.Handle2)
			}
			imgui.SameLine()
		}
		imgui.NewLine()
		imgui.TreePop()
	}

	ce.renderHandles(c)

	if !c.Monotone() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "curve folds back on x")
	}

	fillPlot(ce.plot, c)
	imgui.PlotLinesFloatPtr("##samples", &ce.plot[0], int32(len(ce.plot)))

	drawCurve(c)

	imgui.End()
}

func (ce *CurveEditor) renderHandles(c *curve.Curve) {
	h := c.Handles()
	values := [4]float32{float32(h[0]), float32(h[1]), float32(h[2]), float32(h[3])}
	labels := [4]string{"x1", "y1", "x2", "y2"}

	changed := false
	for i := range values {
		imgui.SetNextItemWidth(120)
		if imgui.InputFloat(labels[i], &values[i]) {
			changed = true
		}
	}
	if changed {
		c.SetHandles(
			curve.Vec2{X: float64(values[0]), Y: float64(values[1])},
			curve.Vec2{X: float64(values[2]), Y: float64(values[3])},
		)
	}
}

// fillPlot writes the eased value of every sample into dst.
func fillPlot(dst []float32, c *curve.Curve) {
	for i, s := range c.Samples() {
		if i >= len(dst) {
			return
		}
		dst[i] = float32(s.Y)
	}
}

func drawCurve(c *curve.Curve) {
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	background := imgui.ColorU32Vec4(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	line := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 1.0))
	handle := imgui.ColorU32Vec4(imgui.NewVec4(0.9, 0.5, 0.2, 1.0))

	drawList.AddRectFilled(origin, imgui.NewVec2(origin.X+canvasSize, origin.Y+canvasSize), background)

	toScreen := func(p curve.Vec2) imgui.Vec2 {
		return imgui.NewVec2(origin.X+float32(p.X)*canvasSize, origin.Y+(1-float32(p.Y))*canvasSize)
	}

	prev := toScreen(curve.Vec2{})
	for _, s := range c.Samples() {
		next := toScreen(s)
		drawList.AddLine(prev, next, line)
		prev = next
	}

	drawList.AddLine(toScreen(curve.Vec2{}), toScreen(c.Handle1), handle)
	drawList.AddLine(toScreen(curve.Vec2{X: 1, Y: 1}), toScreen(c.Handle2), handle)

	imgui.Dummy(imgui.NewVec2(canvasSize, canvasSize))
}
