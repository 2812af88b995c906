// Package debugui renders Dear ImGui inspector windows for a running engine.
// Windows are collected by an Overlay system and drawn after every other
// system has run for the frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/gokyotris/loop"
)

// Item holds a Dear ImGui render function.
type Item struct {
	Name   string
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input,
// so game input can be suppressed while a debug widget has focus.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay defers the render function of every visible item to the end of
// the frame and refreshes InputState.
type Overlay struct {
	Items   []Item
	Input   InputState
	Visible bool
}

func NewOverlay(items ...Item) *Overlay {
	return &Overlay{Items: items, Visible: true}
}

func (o *Overlay) Add(name string, render func()) {
	o.Items = append(o.Items, Item{Name: name, Render: render})
}

// Toggle flips visibility and returns the new state.
func (o *Overlay) Toggle() bool {
	o.Visible = !o.Visible
	return o.Visible
}

// Execute updates input state and queues all render functions for execution.
func (o *Overlay) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = o.Visible && io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = o.Visible && io.WantCaptureKeyboard()

	if !o.Visible {
		return
	}
	for _, item := range o.Items {
		frame.Commands.Defer(item.Render)
	}
}
