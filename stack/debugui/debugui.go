// Package debugui provides immediate-mode inspection panels for a running
// game using Dear ImGui. Front-ends drive it between the backend's
// BeginFrame and EndFrame calls.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/ziggurat/stack"
)

// Overlay bundles the inspection panels and renders them as one unit.
type Overlay struct {
	Structure *StructureBrowserComponent
	Run       *RunPanelComponent
	Perf      *PerformanceStatsComponent

	visible bool
}

// NewOverlay creates an overlay with all panels enabled.
func NewOverlay() *Overlay {
	return &Overlay{
		Structure: NewStructureBrowserComponent(64),
		Run:       NewRunPanelComponent(),
		Perf:      NewPerformanceStatsComponent(120),
		visible:   true,
	}
}

// Toggle flips overlay visibility.
func (o *Overlay) Toggle() {
	o.visible = !o.visible
}

// Visible reports whether the overlay renders.
func (o *Overlay) Visible() bool {
	return o.visible
}

// WantCapture reports whether ImGui is consuming mouse or keyboard input.
// Front-ends should skip game input handling while it is true.
func (o *Overlay) WantCapture() bool {
	io := imgui.CurrentIO()
	return io.WantCaptureMouse() || io.WantCaptureKeyboard()
}

// Render draws every panel. Call between the backend's BeginFrame and
// EndFrame with the frame's delta time in seconds.
func (o *Overlay) Render(game *stack.Game, deltaTime float32) {
	if !o.visible {
		return
	}
	o.Structure.Render(game)
	o.Run.Render(game)
	o.Perf.Render(game, deltaTime)
}
