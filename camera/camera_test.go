package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNew(t *testing.T) {
	cam := New(960, 540)

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected camera at origin, got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
	if cam.WidthRatio != 0.5 || cam.HeightRatio != 0.5 {
		t.Errorf("expected ratios 0.5, got (%f, %f)", cam.WidthRatio, cam.HeightRatio)
	}
}

func TestWorldToScreen(t *testing.T) {
	tests := []struct {
		name           string
		vw, vh         float32
		panX, panY     float32
		wx, wy         float32
		wantSX, wantSY float32
	}{
		{"reference screen", 1920, 1080, 0, 0, 100, 200, 100, 200},
		{"half screen", 960, 540, 0, 0, 100, 200, 50, 100},
		{"panned", 1920, 1080, 30, -20, 100, 200, 70, 220},
		{"panned half screen", 960, 540, 100, 100, 300, 300, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := New(tt.vw, tt.vh)
			cam.X, cam.Y = tt.panX, tt.panY
			sx, sy := cam.WorldToScreen(tt.wx, tt.wy)
			if !near(sx, tt.wantSX) || !near(sy, tt.wantSY) {
				t.Errorf("WorldToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.wx, tt.wy, sx, sy, tt.wantSX, tt.wantSY)
			}
		})
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720)
	cam.MoveX(250)
	cam.MoveY(-40)
	cam.SetZoom(2)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},
		{100, 100},
		{1200, 600},
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestSizeScalesByRatio(t *testing.T) {
	cam := New(960, 720)
	w, h := cam.Size(40, 40)
	if !near(w, 20) || !near(h, 26.67) {
		t.Errorf("Size(40, 40) = (%v, %v), want (20, 26.67)", w, h)
	}
}

func TestMoveByUnits(t *testing.T) {
	cam := New(1920, 1080)
	cam.MoveX(5)
	cam.MoveX(-2)
	cam.MoveY(7)
	if cam.X != 3 || cam.Y != 7 {
		t.Errorf("camera at (%v, %v), want (3, 7)", cam.X, cam.Y)
	}
}

func TestPanInScreenPixels(t *testing.T) {
	cam := New(960, 540)
	cam.Pan(10, 20)
	// Half-size screen: one pixel covers two world units
	if !near(cam.X, 20) || !near(cam.Y, 40) {
		t.Errorf("camera at (%v, %v), want (20, 40)", cam.X, cam.Y)
	}
}

func TestZoomKeepsCentre(t *testing.T) {
	cam := New(1920, 1080)
	cx, cy := cam.ScreenToWorld(960, 540)

	cam.ZoomBy(2)
	gx, gy := cam.ScreenToWorld(960, 540)
	if !near(cx, gx) || !near(cy, gy) {
		t.Errorf("centre moved from (%v, %v) to (%v, %v)", cx, cy, gx, gy)
	}

	cam.SetZoom(100)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("zoom %v not clamped to %v", cam.Zoom, cam.MaxZoom)
	}
	cam.SetZoom(0)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("zoom %v not clamped to %v", cam.Zoom, cam.MinZoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1920, 1080)

	if !cam.IsVisible(500, 500, 10) {
		t.Error("point inside view reported invisible")
	}
	if !cam.IsVisible(-5, 500, 10) {
		t.Error("box overlapping the left edge reported invisible")
	}
	if cam.IsVisible(-50, 500, 10) {
		t.Error("point off the left edge reported visible")
	}
	if cam.IsVisible(500, 2000, 10) {
		t.Error("point below the view reported visible")
	}
}

func TestReset(t *testing.T) {
	cam := New(1280, 720)
	cam.MoveX(100)
	cam.Pan(50, 50)
	cam.ZoomBy(2)

	cam.Reset()
	if cam.X != 0 || cam.Y != 0 || cam.Zoom != 1 {
		t.Errorf("after Reset: (%v, %v) zoom %v", cam.X, cam.Y, cam.Zoom)
	}
}
