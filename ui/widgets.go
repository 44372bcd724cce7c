package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Renderer draws themed primitives.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a bordered panel background.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	p := r.Theme.Panel
	rl.DrawRectangle(x, y, width, height, p.Fill)
	rl.DrawRectangleLines(x, y, width, height, p.Border)
}

// DrawHeader draws a section title and returns the next line's y.
func (r *Renderer) DrawHeader(x, y int32, title string) int32 {
	t := r.Theme.Text
	rl.DrawText(title, x, y, t.HeaderSize, t.Header)
	return y + t.LineHeight
}

// DrawFillBar draws a bar filled to frac of width, coloured by level.
func (r *Renderer) DrawFillBar(x, y, width int32, frac float32) {
	b := r.Theme.Bar
	frac = min(max(frac, 0), 1)
	color := b.Ok
	switch {
	case frac < b.Low:
		color = b.Empty
	case frac < b.Mid:
		color = b.Half
	}
	rl.DrawRectangle(x, y, width, b.Height, b.Track)
	rl.DrawRectangle(x, y, int32(float32(width)*frac), b.Height, color)
}
