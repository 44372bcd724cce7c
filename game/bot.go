package game

import (
	"log/slog"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/systems"
	"github.com/pthm-cable/forage/telemetry"
)

// updateBot runs one frame of the foraging state machine for a living bot.
func (g *Game) updateBot(e ecs.Entity, delta time.Duration) {
	life := g.lifeMap.Get(e)
	motion := g.motionMap.Get(e)

	if !systems.DrainLife(&life.Value, delta) {
		motion.HasTarget = false
		g.starve(e)
		return
	}

	if systems.DrainWait(&motion.WaitTime, delta) {
		return
	}

	target, ok := g.selectTarget(e)
	motion.Target, motion.HasTarget = target, ok
	if !ok {
		return
	}

	pos := g.posMap.Get(e)
	targetPos := *g.posMap.Get(target)
	if components.Distance(*pos, targetPos) <= float64(motion.Speed) {
		g.Activate(target, e)
	}

	systems.StepToward(pos, targetPos, motion.Speed)
}

// selectTarget picks where the bot heads: home when its inventory is full,
// otherwise the nearest spawner, falling back to home while it carries
// anything.
func (g *Game) selectTarget(e ecs.Entity) (ecs.Entity, bool) {
	pos := *g.posMap.Get(e)
	inv := &g.cargoMap.Get(e).Inventory

	if inv.Full() {
		return g.NearestOfType(pos, components.KindSpawnpoint)
	}
	if target, ok := g.NearestOfType(pos, components.KindResourceSpawner); ok {
		return target, true
	}
	if !inv.Empty() {
		return g.NearestOfType(pos, components.KindSpawnpoint)
	}
	return ecs.Entity{}, false
}

// starve kills a bot that ran out of life.
func (g *Game) starve(e ecs.Entity) {
	status := g.statusMap.Get(e)
	if !status.Kill() {
		return
	}
	pos := g.posMap.Get(e)

	g.collector.RecordBotDeath()
	g.recordEvent(telemetry.Event{
		Type:   telemetry.EventBotStarved,
		Entity: status.ID,
		X:      pos.X,
		Y:      pos.Y,
	})
	slog.Debug("bot starved", "tick", g.tick, "id", status.ID, "x", pos.X, "y", pos.Y)
}
