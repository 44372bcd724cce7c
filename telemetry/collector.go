// Package telemetry provides ecosystem counters, run output, and frame timing.
package telemetry

import "time"

// PopulationSample is a read of the living world taken at window end.
type PopulationSample struct {
	Bots, Spawners, Spawnpoints int

	Lives          []float64 // remaining life per living bot
	InventoryFill  []float64 // inventory len/cap per living bot
	TotalStock     int
	TotalDeposited int
}

// Collector accumulates events within time windows and produces WindowStats.
// Windows are measured in simulated time, the sum of frame deltas.
type Collector struct {
	window  time.Duration
	elapsed time.Duration // within current window
	simTime time.Duration // since start

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	harvests          int
	discarded         int
	deposits          int
	resourcesBanked   int
	lifeGranted       float64
	botBirths         int
	spawnerBirths     int
	botDeaths         int
	spawnerDepletions int
	growthEvents      int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulated seconds.
func NewCollector(windowDurationSec float64) *Collector {
	window := time.Duration(windowDurationSec * float64(time.Second))
	if window <= 0 {
		window = time.Second
	}
	return &Collector{window: window}
}

// Advance adds a frame's elapsed time.
func (c *Collector) Advance(delta time.Duration) {
	c.elapsed += delta
	c.simTime += delta
}

// RecordHarvest records a resource taken from a spawner. accepted is false
// when the bot's inventory was full and the resource was lost.
func (c *Collector) RecordHarvest(accepted bool) {
	c.harvests++
	if !accepted {
		c.discarded++
	}
}

// RecordDeposit records a bot handing its inventory to a spawnpoint.
func (c *Collector) RecordDeposit(resources int, life float64) {
	c.deposits++
	c.resourcesBanked += resources
	c.lifeGranted += life
}

// RecordBotBirth records a bot created by growth.
func (c *Collector) RecordBotBirth() {
	c.botBirths++
}

// RecordSpawnerBirth records a resource spawner created by growth.
func (c *Collector) RecordSpawnerBirth() {
	c.spawnerBirths++
}

// RecordBotDeath records a bot running out of life.
func (c *Collector) RecordBotDeath() {
	c.botDeaths++
}

// RecordSpawnerDepletion records a spawner emptied by harvesting.
func (c *Collector) RecordSpawnerDepletion() {
	c.spawnerDepletions++
}

// RecordGrowth records a spawnpoint growth tick.
func (c *Collector) RecordGrowth() {
	c.growthEvents++
}

// ShouldFlush returns true if enough simulated time has passed to flush the window.
func (c *Collector) ShouldFlush() bool {
	return c.elapsed >= c.window
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, sample PopulationSample) WindowStats {
	lifeMean, lifeStd, lifeP10, lifeP50, lifeP90 := ComputeLifeStats(sample.Lives)

	var fill float64
	if len(sample.InventoryFill) > 0 {
		for _, f := range sample.InventoryFill {
			fill += f
		}
		fill /= float64(len(sample.InventoryFill))
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      c.simTime.Seconds(),

		Bots:        sample.Bots,
		Spawners:    sample.Spawners,
		Spawnpoints: sample.Spawnpoints,

		Harvests:          c.harvests,
		Discarded:         c.discarded,
		Deposits:          c.deposits,
		ResourcesBanked:   c.resourcesBanked,
		LifeGranted:       c.lifeGranted,
		BotBirths:         c.botBirths,
		SpawnerBirths:     c.spawnerBirths,
		BotDeaths:         c.botDeaths,
		SpawnerDepletions: c.spawnerDepletions,
		GrowthEvents:      c.growthEvents,

		LifeMean: lifeMean,
		LifeStd:  lifeStd,
		LifeP10:  lifeP10,
		LifeP50:  lifeP50,
		LifeP90:  lifeP90,

		InventoryFill:  fill,
		TotalStock:     sample.TotalStock,
		TotalDeposited: sample.TotalDeposited,
	}

	// Reset for next window; time past the boundary counts toward it
	c.windowStartTick = currentTick
	c.elapsed -= c.window
	c.harvests = 0
	c.discarded = 0
	c.deposits = 0
	c.resourcesBanked = 0
	c.lifeGranted = 0
	c.botBirths = 0
	c.spawnerBirths = 0
	c.botDeaths = 0
	c.spawnerDepletions = 0
	c.growthEvents = 0

	return stats
}
