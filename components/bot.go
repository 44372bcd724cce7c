package components

import "github.com/mlange-42/ark/ecs"

// Bot defaults used when a constructor leaves them out.
const (
	DefaultBotSpeed        = 1
	DefaultBotMaxInventory = 5
)

// Life is a bot's remaining survival time in seconds.
type Life struct {
	Value float64
}

// Motion holds a bot's movement state.
type Motion struct {
	Speed    int
	WaitTime float64 // milliseconds of suspended behavior left

	// Target is recomputed every tick it is needed; HasTarget is false
	// while the bot is idle.
	Target    ecs.Entity
	HasTarget bool
}

// AddWaitTime suspends the bot for the given number of milliseconds.
func (m *Motion) AddWaitTime(ms float64) {
	m.WaitTime += ms
}

// Cargo is a bot's inventory.
type Cargo struct {
	Inventory Bounded
}
