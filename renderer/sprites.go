// Package renderer draws simulation frames in a raylib window.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/forage/components"
)

// Sprite is how one entity kind is drawn, in reference pixels.
type Sprite struct {
	W, H      float32
	Centered  bool // drawn centred on the position rather than from its top-left
	Fill      rl.Color
	LabelTint rl.Color
}

// Sprites by kind.
var sprites = map[components.Kind]Sprite{
	components.KindBot:             {W: 25, H: 25, Fill: rl.Pink, LabelTint: rl.Black},
	components.KindResourceSpawner: {W: 20, H: 20, Fill: rl.Gray, LabelTint: rl.White},
	components.KindSpawnpoint:      {W: 36, H: 36, Centered: true, Fill: rl.Blue, LabelTint: rl.Yellow},
}

var (
	background = rl.Color{R: 18, G: 20, B: 24, A: 255}
	targetLine = rl.Color{R: 255, G: 255, B: 255, A: 60}
)
