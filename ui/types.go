// Package ui provides the HUD, overlay toggles, and control panels drawn
// over the simulation view.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// PanelStyle styles panel backgrounds.
type PanelStyle struct {
	Fill    rl.Color
	Border  rl.Color
	Padding int32
}

// TextStyle styles panel text.
type TextStyle struct {
	Header     rl.Color
	HeaderSize int32
	Body       rl.Color
	BodySize   int32
	LineHeight int32
}

// BarStyle styles fill bars. Fills below Low use Empty, below Mid use Half.
type BarStyle struct {
	Track           rl.Color
	Empty, Half, Ok rl.Color
	Low, Mid        float32
	Height          int32
}

// Theme holds UI styling.
type Theme struct {
	Panel        PanelStyle
	Text         TextStyle
	Bar          BarStyle
	ButtonHeight float32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		Panel: PanelStyle{
			Fill:    rl.Color{R: 20, G: 25, B: 30, A: 220},
			Border:  rl.Color{R: 60, G: 70, B: 80, A: 255},
			Padding: 10,
		},
		Text: TextStyle{
			Header:     rl.Yellow,
			HeaderSize: 14,
			Body:       rl.LightGray,
			BodySize:   12,
			LineHeight: 16,
		},
		Bar: BarStyle{
			Track:  rl.Color{R: 40, G: 40, B: 40, A: 255},
			Empty:  rl.Color{R: 200, G: 100, B: 100, A: 255},
			Half:   rl.Color{R: 200, G: 180, B: 100, A: 255},
			Ok:     rl.Color{R: 100, G: 200, B: 100, A: 255},
			Low:    0.25,
			Mid:    0.5,
			Height: 4,
		},
		ButtonHeight: 24,
	}
}
