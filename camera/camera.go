// Package camera provides a 2D camera system for viewport control.
package camera

import "github.com/pthm-cable/forage/config"

// Camera maps world coordinates onto the screen.
// The world is laid out against the reference resolution; positions and
// sizes scale by screen/reference on each axis, then by zoom.
type Camera struct {
	// X, Y is the pan offset: the world coordinate drawn at the screen's top-left
	X, Y float32

	// Zoom level (1.0 = the reference layout scaled to the screen)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Screen size over reference size, per axis
	WidthRatio, HeightRatio float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera at the world origin with 1:1 zoom.
func New(viewportW, viewportH float32) *Camera {
	c := &Camera{
		Zoom:    1.0,
		MinZoom: 0.25,
		MaxZoom: 4.0,
	}
	c.Resize(viewportW, viewportH)
	return c
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = (wx - c.X) * c.WidthRatio * c.Zoom
	sy = (wy - c.Y) * c.HeightRatio * c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + sx/(c.WidthRatio*c.Zoom)
	wy = c.Y + sy/(c.HeightRatio*c.Zoom)
	return wx, wy
}

// Size scales a width and height given in reference pixels to the screen.
func (c *Camera) Size(w, h float32) (sw, sh float32) {
	return w * c.WidthRatio * c.Zoom, h * c.HeightRatio * c.Zoom
}

// IsVisible returns true if a box of the given reference-pixel half extent
// centred on (wx, wy) could be visible on screen.
func (c *Camera) IsVisible(wx, wy, halfExtent float32) bool {
	sx, sy := c.WorldToScreen(wx, wy)
	hw, hh := c.Size(halfExtent, halfExtent)
	return sx+hw >= 0 && sy+hh >= 0 && sx-hw <= c.ViewportW && sy-hh <= c.ViewportH
}

// Resize updates viewport dimensions and the reference scale ratios.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.WidthRatio = viewportW / config.ReferenceWidth
	c.HeightRatio = viewportH / config.ReferenceHeight
}

// MoveX shifts the view along x by world units.
func (c *Camera) MoveX(units float32) {
	c.X += units
}

// MoveY shifts the view along y by world units.
func (c *Camera) MoveY(units float32) {
	c.Y += units
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.X += dx / (c.WidthRatio * c.Zoom)
	c.Y += dy / (c.HeightRatio * c.Zoom)
}

// SetZoom sets the zoom level, clamped to min/max, keeping the world point
// at the screen centre fixed.
func (c *Camera) SetZoom(zoom float32) {
	cx, cy := c.ScreenToWorld(c.ViewportW/2, c.ViewportH/2)
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.X = cx - c.ViewportW/2/(c.WidthRatio*c.Zoom)
	c.Y = cy - c.ViewportH/2/(c.HeightRatio*c.Zoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the origin and 1:1 zoom.
func (c *Camera) Reset() {
	c.X = 0
	c.Y = 0
	c.Zoom = 1.0
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	minX, minY = c.ScreenToWorld(0, 0)
	maxX, maxY = c.ScreenToWorld(c.ViewportW, c.ViewportH)
	return
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
