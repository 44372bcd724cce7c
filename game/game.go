// Package game owns the simulation world: the entity registry, the
// per-frame update, and the fixed-rate loop that drives it.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/systems"
	"github.com/pthm-cable/forage/telemetry"
)

// Options configures a Game beyond the simulation config.
type Options struct {
	Seed          int64
	LogStats      bool                           // log window stats via slog
	OutputDir     string                         // CSV/event output directory, empty = disabled
	StatsCallback func(stats telemetry.WindowStats) // called on every window flush
}

// Game holds the complete simulation state. One goroutine owns it.
type Game struct {
	cfg   *config.Config
	world *ecs.World
	rng   *rand.Rand

	// Archetype mappers, one per entity kind
	botMapper        *ecs.Map5[components.Status, components.Position, components.Life, components.Motion, components.Cargo]
	spawnerMapper    *ecs.Map3[components.Status, components.Position, components.Stock]
	spawnpointMapper *ecs.Map3[components.Status, components.Position, components.Depot]

	// Individual component mappers for lookups
	statusMap *ecs.Map1[components.Status]
	posMap    *ecs.Map1[components.Position]
	lifeMap   *ecs.Map1[components.Life]
	motionMap *ecs.Map1[components.Motion]
	cargoMap  *ecs.Map1[components.Cargo]
	stockMap  *ecs.Map1[components.Stock]
	depotMap  *ecs.Map1[components.Depot]

	// Append-only collections in insertion order. Dead entities stay as
	// tombstones and are skipped.
	bots       []ecs.Entity
	structures []ecs.Entity

	// Tick each entity was last updated on. A handle added more than
	// once is still updated once per frame.
	updated map[ecs.Entity]int32

	resources components.ResourceRange

	// State
	tick   int32
	nextID uint32

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	eventLog      *telemetry.EventLog
	logStats      bool
	statsCallback func(telemetry.WindowStats)
}

// NewGame creates a game from cfg and spawns the initial world.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	world := ecs.NewWorld()

	g := &Game{
		cfg:   cfg,
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),

		botMapper:        ecs.NewMap5[components.Status, components.Position, components.Life, components.Motion, components.Cargo](world),
		spawnerMapper:    ecs.NewMap3[components.Status, components.Position, components.Stock](world),
		spawnpointMapper: ecs.NewMap3[components.Status, components.Position, components.Depot](world),

		statusMap: ecs.NewMap1[components.Status](world),
		posMap:    ecs.NewMap1[components.Position](world),
		lifeMap:   ecs.NewMap1[components.Life](world),
		motionMap: ecs.NewMap1[components.Motion](world),
		cargoMap:  ecs.NewMap1[components.Cargo](world),
		stockMap:  ecs.NewMap1[components.Stock](world),
		depotMap:  ecs.NewMap1[components.Depot](world),

		updated: make(map[ecs.Entity]int32),

		resources: components.ResourceRange{
			ValueMin:  cfg.Resource.ValueMin,
			ValueMax:  cfg.Resource.ValueMax,
			WeightMin: cfg.Resource.WeightMin,
			WeightMax: cfg.Resource.WeightMax,
		},

		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("creating output manager: %w", err)
		}
		if err := om.WriteConfig(cfg); err != nil {
			om.Close()
			return nil, fmt.Errorf("writing config: %w", err)
		}
		events, err := telemetry.NewEventLog(opts.OutputDir)
		if err != nil {
			om.Close()
			return nil, fmt.Errorf("creating event log: %w", err)
		}
		g.outputManager = om
		g.eventLog = events
	}

	g.spawnInitialWorld()

	slog.Debug("game created",
		"seed", opts.Seed,
		"world_w", cfg.Derived.WorldW,
		"world_h", cfg.Derived.WorldH,
		"bots", len(g.bots),
		"structures", len(g.structures),
	)

	return g, nil
}

// Step advances the simulation by one frame. delta is the true elapsed time
// since the previous frame. redraw, if non-nil, receives a snapshot of the
// world before any entity is updated.
//
// Collection lengths are captured before the structure pass, so entities
// created during this frame are first updated on the next one.
func (g *Game) Step(delta time.Duration, redraw Redrawer) {
	g.perfCollector.BeginFrame(delta)
	g.tick++

	g.perfCollector.Phase(systems.PhaseRedraw)
	if redraw != nil {
		redraw.Redraw(g.Snapshot())
	}

	nStructures := len(g.structures)
	nBots := len(g.bots)

	g.perfCollector.Phase(systems.PhaseStructures)
	for i := 0; i < nStructures; i++ {
		e := g.structures[i]
		if g.statusMap.Get(e).Alive && g.claimUpdate(e) {
			g.updateStructure(e)
		}
	}

	g.perfCollector.Phase(systems.PhaseBots)
	for i := 0; i < nBots; i++ {
		e := g.bots[i]
		if g.statusMap.Get(e).Alive && g.claimUpdate(e) {
			g.updateBot(e, delta)
		}
	}

	g.perfCollector.Phase(systems.PhaseTelemetry)
	g.collector.Advance(delta)
	g.flushTelemetry()

	g.perfCollector.EndFrame()
}

// claimUpdate reports whether e has not been updated yet this frame and
// marks it as updated.
func (g *Game) claimUpdate(e ecs.Entity) bool {
	if g.updated[e] == g.tick {
		return false
	}
	g.updated[e] = g.tick
	return true
}

// Tick returns the number of frames processed.
func (g *Game) Tick() int32 {
	return g.tick
}

// PerfStats returns frame timing over the recent window.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}

// Config returns the configuration the game was built with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Close flushes and closes telemetry output.
func (g *Game) Close() error {
	var firstErr error
	if err := g.eventLog.Close(); err != nil {
		firstErr = err
	}
	if err := g.outputManager.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// spawnInitialWorld creates the starting spawners, bots, and spawnpoints.
func (g *Game) spawnInitialWorld() {
	start := g.cfg.Initial
	for _, capacity := range start.SpawnerCapacities {
		x, y := g.randomPosition()
		g.AddStructure(g.NewResourceSpawner(x, y, capacity))
	}
	for i := 0; i < start.Bots; i++ {
		x, y := g.randomPosition()
		g.AddBot(g.NewBot(x, y))
	}
	for i := 0; i < start.Spawnpoints; i++ {
		g.AddStructure(g.NewSpawnpoint(
			float64(int(g.cfg.Derived.WorldW)/2),
			float64(int(g.cfg.Derived.WorldH)/2),
		))
	}
}

// randomPosition returns a uniform integer position inside the play-field.
func (g *Game) randomPosition() (x, y float64) {
	w := int(g.cfg.Derived.WorldW)
	h := int(g.cfg.Derived.WorldH)
	return float64(g.rng.Intn(w)), float64(g.rng.Intn(h))
}
