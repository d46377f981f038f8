// Package debugui provides Dear ImGui windows for inspecting animators, curves and
// scheduler statistics at runtime.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tween/anim"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function to the end of the scheduler pass,
// after all animators were ticked, and refreshes Input.
type ImguiSystem struct {
	Items []*ImguiItem
	Input ImguiInputState
}

// Add appends a render function and returns its item.
func (i *ImguiSystem) Add(render func()) *ImguiItem {
	item := &ImguiItem{Render: render}
	i.Items = append(i.Items, item)
	return item
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *anim.UpdateFrame) {
	io := imgui.CurrentIO()
	i.Input.WantCaptureMouse = io.WantCaptureMouse()
	i.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}
