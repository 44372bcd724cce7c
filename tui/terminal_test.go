package tui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/game"
)

func newSimTerminal(t *testing.T, cols, rows int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := New(screen)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(term.Close)
	return term, screen
}

func TestViewportCell(t *testing.T) {
	v := viewport{cols: 80, rows: 20, worldW: 1920, worldH: 1080}

	tests := []struct {
		name     string
		x, y     float64
		col, row int
		ok       bool
	}{
		{"origin", 0, 0, 0, 0, true},
		{"centre", 960, 540, 40, 10, true},
		{"far corner", 1919, 1079, 79, 19, true},
		{"right edge", 1920, 0, 0, 0, false},
		{"negative", -5, 10, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row, ok := v.cell(tt.x, tt.y)
			if ok != tt.ok || (ok && (col != tt.col || row != tt.row)) {
				t.Errorf("cell(%v, %v) = (%d, %d, %v), want (%d, %d, %v)", tt.x, tt.y, col, row, ok, tt.col, tt.row, tt.ok)
			}
		})
	}

	v.panX, v.panY = 10, 5
	if col, row, ok := v.cell(960, 540); !ok || col != 30 || row != 5 {
		t.Errorf("panned cell = (%d, %d, %v), want (30, 5, true)", col, row, ok)
	}
}

func TestRedrawPlotsEntities(t *testing.T) {
	term, screen := newSimTerminal(t, 80, 21)

	term.Redraw(game.Frame{
		Tick:   7,
		WorldW: 1920,
		WorldH: 1080,
		Structures: []game.EntityView{
			{Kind: components.KindSpawnpoint, X: 960, Y: 540, Deposits: 4},
			{Kind: components.KindResourceSpawner, X: 0, Y: 0, Stock: 10},
		},
		Bots: []game.EntityView{
			{Kind: components.KindBot, X: 480, Y: 270, Inventory: 3},
			{Kind: components.KindBot, X: 1440, Y: 810},
		},
	})

	tests := []struct {
		col, row int
		want     rune
	}{
		{40, 11, 'H'}, // row offset by the status line
		{0, 1, '#'},
		{20, 6, '3'},
		{60, 16, '@'},
	}
	for _, tt := range tests {
		r, _, _, _ := screen.GetContent(tt.col, tt.row)
		if r != tt.want {
			t.Errorf("cell (%d, %d) = %q, want %q", tt.col, tt.row, r, tt.want)
		}
	}

	if r, _, _, _ := screen.GetContent(1, 0); r != 't' {
		t.Errorf("status line starts with %q, want 't'", r)
	}
}

func TestQuitKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"escape", tcell.KeyEscape, 0},
		{"q", tcell.KeyRune, 'q'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, screen := newSimTerminal(t, 40, 10)
			if term.Closed() {
				t.Fatal("closed before any input")
			}
			screen.InjectKey(tt.key, tt.r, tcell.ModNone)

			deadline := time.Now().Add(2 * time.Second)
			for !term.Closed() {
				if time.Now().After(deadline) {
					t.Fatal("quit key not observed")
				}
				time.Sleep(time.Millisecond)
			}
		})
	}
}
