package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/telemetry"
)

// flushTelemetry closes the stats window once enough simulated time passed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush() {
		return
	}

	stats := g.collector.Flush(g.tick, g.samplePopulation())
	perfStats := g.perfCollector.Stats()

	// Call stats callback if provided
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// samplePopulation reads population counts and distributions at window end.
func (g *Game) samplePopulation() telemetry.PopulationSample {
	var s telemetry.PopulationSample

	seen := make(map[ecs.Entity]bool, len(g.bots))
	for _, e := range g.bots {
		status := g.statusMap.Get(e)
		if !status.Alive || seen[e] {
			continue
		}
		seen[e] = true
		life, cargo := g.lifeMap.Get(e), g.cargoMap.Get(e)
		s.Bots++
		s.Lives = append(s.Lives, life.Value)
		if c := cargo.Inventory.Cap(); c > 0 {
			s.InventoryFill = append(s.InventoryFill, float64(cargo.Inventory.Len())/float64(c))
		}
	}

	for _, e := range g.structures {
		status := g.statusMap.Get(e)
		switch status.Kind {
		case components.KindResourceSpawner:
			if status.Alive {
				s.Spawners++
				s.TotalStock += g.stockMap.Get(e).Resources.Len()
			}
		case components.KindSpawnpoint:
			if status.Alive {
				s.Spawnpoints++
				s.TotalDeposited += len(g.depotMap.Get(e).Deposited)
			}
		}
	}

	return s
}

// recordEvent stamps ev with the current tick and appends it to the event log.
func (g *Game) recordEvent(ev telemetry.Event) {
	ev.Tick = g.tick
	if err := g.eventLog.Record(ev); err != nil {
		slog.Error("failed to record event", "error", err, "type", ev.Type)
	}
}
