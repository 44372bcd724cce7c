package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/forage/camera"
	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/game"
	"github.com/pthm-cable/forage/systems"
	"github.com/pthm-cable/forage/telemetry"
	"github.com/pthm-cable/forage/ui"
)

// PerfSource supplies frame timing for the performance panel.
type PerfSource interface {
	PerfStats() telemetry.PerfStats
}

// panUnits is how far one arrow-key press moves the camera, in world units.
const panUnits = 10

// Window is a raylib window that draws one frame per Redraw call.
// All methods must be called from the goroutine that opened it.
type Window struct {
	cam       *camera.Camera
	overlays  *ui.OverlayRegistry
	hud       *ui.HUD
	controls  *ui.ControlsPanel
	perfPanel *ui.PerfPanel
	widgets   *ui.Renderer
	phases    *systems.SystemRegistry
	perf      PerfSource

	initialLife  float32
	showControls bool
	closed       bool
}

// Open creates the window at the configured screen size.
func Open(cfg *config.Config, perf PerfSource) *Window {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Forage")
	// The tick loop paces frames; raylib must not sleep in EndDrawing.
	rl.SetTargetFPS(0)

	w := float32(cfg.Screen.Width)
	return &Window{
		cam:          camera.New(w, float32(cfg.Screen.Height)),
		overlays:     ui.NewOverlayRegistry(),
		hud:          ui.NewHUD(),
		controls:     ui.NewControlsPanel(w-190, 10, 180),
		perfPanel:    ui.NewPerfPanel(10, 90),
		widgets:      ui.NewRenderer(),
		phases:       systems.NewSystemRegistry(),
		perf:         perf,
		initialLife:  float32(cfg.Bot.InitialLife),
		showControls: true,
	}
}

// Closed reports whether the user asked to close the window.
func (w *Window) Closed() bool {
	return w.closed
}

// Close destroys the window.
func (w *Window) Close() {
	rl.CloseWindow()
}

// Redraw draws frame and processes input.
func (w *Window) Redraw(frame game.Frame) {
	if rl.WindowShouldClose() {
		w.closed = true
		return
	}

	if rl.IsWindowResized() {
		sw, sh := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
		w.cam.Resize(sw, sh)
		w.controls = ui.NewControlsPanel(sw-190, 10, 180)
	}
	w.handleInput()

	rl.BeginDrawing()
	rl.ClearBackground(background)

	for _, v := range frame.Structures {
		w.drawEntity(v)
	}
	if w.overlays.IsEnabled(ui.OverlayTargets) {
		for _, v := range frame.Bots {
			w.drawTarget(v)
		}
	}
	for _, v := range frame.Bots {
		w.drawEntity(v)
	}

	w.drawHUD(frame)
	if w.showControls {
		if w.controls.Draw(w.overlays) == ui.ActionResetCamera {
			w.cam.Reset()
		}
	}

	rl.EndDrawing()
}

// handleInput applies keyboard camera movement and overlay hotkeys.
func (w *Window) handleInput() {
	if rl.IsKeyDown(rl.KeyLeft) {
		w.cam.MoveX(-panUnits)
	}
	if rl.IsKeyDown(rl.KeyRight) {
		w.cam.MoveX(panUnits)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		w.cam.MoveY(-panUnits)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		w.cam.MoveY(panUnits)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		w.cam.Pan(-d.X, -d.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		w.cam.ZoomBy(1 + 0.1*wheel)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		w.cam.Reset()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		w.showControls = !w.showControls
	}

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		w.overlays.HandleKeyPress(key)
	}
}

func (w *Window) drawEntity(v game.EntityView) {
	s := sprites[v.Kind]
	x, y := float32(v.X), float32(v.Y)
	if s.Centered {
		x -= s.W / 2
		y -= s.H / 2
	}
	if !w.cam.IsVisible(x+s.W/2, y+s.H/2, s.W) {
		return
	}

	sx, sy := w.cam.WorldToScreen(x, y)
	sw, sh := w.cam.Size(s.W, s.H)
	rl.DrawRectangle(int32(sx), int32(sy), int32(sw), int32(sh), s.Fill)

	if label, ok := w.label(v); ok {
		tw := rl.MeasureText(label, 10)
		rl.DrawText(label, int32(sx+sw/2)-tw/2, int32(sy+sh/2)-5, 10, s.LabelTint)
	}

	if v.Kind == components.KindBot && w.overlays.IsEnabled(ui.OverlayLifeBars) {
		w.widgets.DrawFillBar(int32(sx), int32(sy+sh+2), int32(sw), float32(v.Life)/w.initialLife)
	}
}

// label returns the text drawn on an entity under the active overlays.
func (w *Window) label(v game.EntityView) (string, bool) {
	switch {
	case v.Kind == components.KindBot && w.overlays.IsEnabled(ui.OverlayLifeText):
		return fmt.Sprintf("%.0f", v.Life), true
	case !w.overlays.IsEnabled(ui.OverlayCounts):
		return "", false
	case v.Kind == components.KindBot:
		return fmt.Sprint(v.Inventory), true
	case v.Kind == components.KindResourceSpawner:
		return fmt.Sprint(v.Stock), true
	case v.Kind == components.KindSpawnpoint:
		return fmt.Sprint(v.Deposits), true
	}
	return "", false
}

func (w *Window) drawTarget(v game.EntityView) {
	if !v.HasTarget {
		return
	}
	s := sprites[components.KindBot]
	fx, fy := w.cam.WorldToScreen(float32(v.X)+s.W/2, float32(v.Y)+s.H/2)
	tx, ty := w.cam.WorldToScreen(float32(v.TargetX), float32(v.TargetY))
	rl.DrawLine(int32(fx), int32(fy), int32(tx), int32(ty), targetLine)
}

func (w *Window) drawHUD(frame game.Frame) {
	data := ui.HUDData{
		Title: "Forage",
		Bots:  len(frame.Bots),
		Tick:  frame.Tick,
		FPS:   rl.GetFPS(),
	}
	for _, v := range frame.Structures {
		switch v.Kind {
		case components.KindResourceSpawner:
			data.Spawners++
		case components.KindSpawnpoint:
			data.Spawnpoints++
			data.Deposits += v.Deposits
		}
	}
	w.hud.Draw(data)
	w.hud.DrawControls(int32(w.cam.ViewportH), "Arrows/right-drag: pan | Wheel: zoom | R: reset camera | H: controls | C/L/B/T/P: overlays | Esc: quit")

	if w.overlays.IsEnabled(ui.OverlayPerfPanel) && w.perf != nil {
		stats := w.perf.PerfStats()
		w.perfPanel.Draw(ui.PerfPanelData{
			PhaseTimes: stats.PhaseAvg,
			Total:      stats.AvgWork,
			FPS:        stats.FPS,
			Load:       stats.Load,
			Registry:   w.phases,
		})
	}
}
