package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlAction reports what the user clicked in the controls panel.
type ControlAction int

const (
	ActionNone ControlAction = iota
	ActionResetCamera
	ActionToggleOverlay
)

// ControlsPanel renders overlay toggle buttons and a camera reset button.
type ControlsPanel struct {
	renderer *Renderer
	x, y     float32
	width    float32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width float32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders one button per overlay plus the camera reset button and
// applies overlay toggles. Returns the action taken this frame.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) ControlAction {
	theme := c.renderer.Theme
	pad := float32(theme.Panel.Padding)
	h := theme.ButtonHeight

	descs := overlays.All()
	panelH := float32(len(descs)+1)*(h+4) + pad*2 + float32(theme.Text.LineHeight)
	c.renderer.DrawPanel(int32(c.x), int32(c.y), int32(c.width), int32(panelH))

	y := float32(c.renderer.DrawHeader(int32(c.x+pad), int32(c.y+pad), "Overlays"))

	action := ActionNone
	for _, desc := range descs {
		label := fmt.Sprintf("%s [%s]", desc.Name, desc.KeyLabel)
		if overlays.IsEnabled(desc.ID) {
			label = "* " + label
		}
		if gui.Button(rl.Rectangle{X: c.x + pad, Y: y, Width: c.width - pad*2, Height: h}, label) {
			overlays.Toggle(desc.ID)
			action = ActionToggleOverlay
		}
		y += h + 4
	}

	if gui.Button(rl.Rectangle{X: c.x + pad, Y: y, Width: c.width - pad*2, Height: h}, "Reset Camera [R]") {
		action = ActionResetCamera
	}
	return action
}
