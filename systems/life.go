package systems

import "time"

// DrainLife subtracts the elapsed seconds from life. Returns false when the
// bot has run out: life is clamped to 0 and the caller must kill it.
func DrainLife(life *float64, delta time.Duration) bool {
	if *life <= 0 {
		*life = 0
		return false
	}
	*life -= delta.Seconds()
	if *life <= 0 {
		*life = 0
		return false
	}
	return true
}

// DrainWait counts the wait timer down by whole elapsed milliseconds.
// Returns true if the bot was waiting this tick, in which case it does
// nothing else.
func DrainWait(waitMs *float64, delta time.Duration) bool {
	if *waitMs <= 0 {
		return false
	}
	*waitMs -= float64(delta / time.Millisecond)
	if *waitMs < 0 {
		*waitMs = 0
	}
	return true
}
