// Package tui draws simulation frames in a terminal with tcell.
package tui

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/game"
)

// panCells is how far one arrow key moves the view, in terminal cells.
const panCells = 2

var (
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleBot        = tcell.StyleDefault.Foreground(tcell.ColorHotPink)
	styleSpawner    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSpawnpoint = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
)

// Terminal renders frames to a tcell screen. Input is read on its own
// goroutine, which only flips atomic state; drawing happens in Redraw on the
// caller's goroutine.
type Terminal struct {
	screen tcell.Screen
	closed atomic.Bool
	panX   atomic.Int64 // view offset in cells
	panY   atomic.Int64
	done   chan struct{}
}

// Open initializes the real terminal.
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return New(screen)
}

// New takes ownership of screen, initializes it, and starts reading input.
func New(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{screen: screen, done: make(chan struct{})}
	go t.pollEvents()
	return t, nil
}

// Closed reports whether the user asked to quit.
func (t *Terminal) Closed() bool {
	return t.closed.Load()
}

// Close restores the terminal and waits for the input goroutine to exit.
func (t *Terminal) Close() {
	t.screen.Fini()
	<-t.done
}

// Redraw draws frame scaled to fit the terminal below a status line.
func (t *Terminal) Redraw(frame game.Frame) {
	cols, rows := t.screen.Size()
	t.screen.Clear()
	if cols <= 0 || rows <= 1 {
		t.screen.Show()
		return
	}

	view := viewport{
		cols: cols, rows: rows - 1,
		worldW: frame.WorldW, worldH: frame.WorldH,
		panX: int(t.panX.Load()), panY: int(t.panY.Load()),
	}

	var spawners, homes, deposits int
	for _, v := range frame.Structures {
		switch v.Kind {
		case components.KindResourceSpawner:
			spawners++
			t.plot(view, v, '#', styleSpawner)
		case components.KindSpawnpoint:
			homes++
			deposits += v.Deposits
			t.plot(view, v, 'H', styleSpawnpoint)
		}
	}
	for _, v := range frame.Bots {
		r := '@'
		if v.Inventory > 0 && v.Inventory < 10 {
			r = rune('0' + v.Inventory)
		}
		t.plot(view, v, r, styleBot)
	}

	status := fmt.Sprintf(" tick %d  bots %d  spawners %d  spawnpoints %d  deposits %d  [arrows] pan [q] quit ",
		frame.Tick, len(frame.Bots), spawners, homes, deposits)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		t.screen.SetContent(x, 0, r, nil, styleStatus)
	}

	t.screen.Show()
}

func (t *Terminal) plot(view viewport, v game.EntityView, r rune, style tcell.Style) {
	col, row, ok := view.cell(v.X, v.Y)
	if !ok {
		return
	}
	t.screen.SetContent(col, row+1, r, nil, style)
}

func (t *Terminal) pollEvents() {
	defer close(t.done)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			t.handleKey(ev)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *Terminal) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.closed.Store(true)
	case tcell.KeyLeft:
		t.panX.Add(-panCells)
	case tcell.KeyRight:
		t.panX.Add(panCells)
	case tcell.KeyUp:
		t.panY.Add(-panCells)
	case tcell.KeyDown:
		t.panY.Add(panCells)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			t.closed.Store(true)
		case '0':
			t.panX.Store(0)
			t.panY.Store(0)
		}
	}
}

// viewport maps world coordinates onto a grid of terminal cells.
type viewport struct {
	cols, rows     int
	worldW, worldH float64
	panX, panY     int
}

// cell returns the grid cell for a world position, false if off-grid.
func (v viewport) cell(x, y float64) (col, row int, ok bool) {
	if v.worldW <= 0 || v.worldH <= 0 {
		return 0, 0, false
	}
	col = int(x/v.worldW*float64(v.cols)) - v.panX
	row = int(y/v.worldH*float64(v.rows)) - v.panY
	if x < 0 || y < 0 || col < 0 || row < 0 || col >= v.cols || row >= v.rows {
		return 0, 0, false
	}
	return col, row, true
}
