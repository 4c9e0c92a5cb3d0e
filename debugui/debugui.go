// Package debugui renders Dear ImGui inspector windows for a running game.
// Windows are collected in a singleton and drawn by ImguiSystem at the end
// of each tick.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/playfield/sim"
)

// ImguiWindows holds the render functions drawn every frame.
type ImguiWindows struct {
	Render []func()
}

// Add registers a window render function.
func (w *ImguiWindows) Add(render func()) {
	w.Render = append(w.Render, render)
}

// ImguiInputState tracks whether ImGui wants the mouse or keyboard this
// frame, so game input can be suppressed while a window has focus.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates the input state and defers every window render to the
// end of the tick.
type ImguiSystem struct {
	Windows    sim.Singleton[ImguiWindows]
	InputState sim.Singleton[ImguiInputState]
}

func (s *ImguiSystem) Execute(frame *sim.UpdateFrame) {
	if state := s.InputState.Get(); state != nil {
		state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
		state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	windows := s.Windows.Get()
	if windows == nil {
		return
	}
	for _, render := range windows.Render {
		frame.Commands.Defer(render)
	}
}

// Install adds the singletons ImguiSystem needs to world.
func Install(world *sim.World) *sim.Singleton[ImguiWindows] {
	sim.NewSingleton(world, ImguiInputState{})
	return sim.NewSingleton(world, ImguiWindows{})
}
