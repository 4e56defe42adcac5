// Package debugui draws Dear ImGui windows from ECS entities: any entity
// with an ImguiItem is rendered each frame, and the input capture state of
// ImGui is published as a singleton so game input can back off.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/astro/ecs"
)

// ImguiItem holds a render function called once per frame inside the ImGui
// frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState reports whether ImGui wants the mouse or keyboard.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function to the command flush at
// the end of the tick, which the caller brackets with BeginFrame/EndFrame.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if state := i.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for item := range i.Items.Values() {
		if item.ImguiItem.Render != nil {
			frame.Commands.Defer(item.ImguiItem.Render)
		}
	}
}

func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}
