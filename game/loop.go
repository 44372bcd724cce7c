package game

import (
	"runtime"
	"time"
)

// Clock reports monotonic time since an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// WallClock reads the monotonic wall clock.
type WallClock struct {
	start time.Time
}

// NewWallClock returns a clock whose origin is now.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *WallClock) Now() time.Duration {
	return time.Since(c.start)
}

// StepClock advances by a fixed step every time it is read, so a loop
// driven by it processes exactly one frame per spin.
type StepClock struct {
	now  time.Duration
	step time.Duration
}

// NewStepClock returns a virtual clock advancing by step per read.
func NewStepClock(step time.Duration) *StepClock {
	return &StepClock{step: step}
}

// Now advances the clock by one step and returns the new time.
func (c *StepClock) Now() time.Duration {
	c.now += c.step
	return c.now
}

// Loop paces a Game at a fixed frame rate by spinning on a clock.
type Loop struct {
	game   *Game
	redraw Redrawer
	clock  Clock
	budget time.Duration
	last   time.Duration
	frames int64
}

// NewLoop creates a loop for g. The frame budget comes from the game's
// configured frame rate. redraw may be nil.
func NewLoop(g *Game, clock Clock, redraw Redrawer) *Loop {
	return &Loop{
		game:   g,
		redraw: redraw,
		clock:  clock,
		budget: g.cfg.Derived.FrameBudget,
		last:   clock.Now(),
	}
}

// Spin reads the clock once and processes a frame if the budget has
// elapsed since the previous one. The frame's delta is the true elapsed
// time, never clamped. Returns whether a frame ran.
func (l *Loop) Spin() bool {
	now := l.clock.Now()
	if now-l.last < l.budget {
		return false
	}
	delta := now - l.last
	l.last = now
	l.game.Step(delta, l.redraw)
	l.frames++
	return true
}

// Run spins until stop returns true. stop is checked between spins.
// A nil stop runs forever.
func (l *Loop) Run(stop func() bool) {
	for stop == nil || !stop() {
		if !l.Spin() {
			runtime.Gosched()
		}
	}
}

// Frames returns the number of frames processed.
func (l *Loop) Frames() int64 {
	return l.frames
}
