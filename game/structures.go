package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/systems"
	"github.com/pthm-cable/forage/telemetry"
)

// Activate lets actor interact with target. Only bots activate anything:
// a spawner hands the bot one random resource, a spawnpoint takes the
// bot's whole inventory in exchange for life. Any other pairing is a no-op.
func (g *Game) Activate(target, actor ecs.Entity) {
	if g.statusMap.Get(actor).Kind != components.KindBot {
		return
	}
	switch g.statusMap.Get(target).Kind {
	case components.KindResourceSpawner:
		g.harvest(target, actor)
	case components.KindSpawnpoint:
		g.deposit(target, actor)
	}
}

// harvest moves one random resource from a spawner into the bot's inventory.
// The bot waits afterwards whether or not it had room.
func (g *Game) harvest(spawner, bot ecs.Entity) {
	status := g.statusMap.Get(spawner)
	if !status.Alive {
		return
	}
	stock := &g.stockMap.Get(spawner).Resources

	if r, ok := stock.TakeRandom(g.rng); ok {
		accepted := g.cargoMap.Get(bot).Inventory.Add(r)
		g.collector.RecordHarvest(accepted)
	}
	g.motionMap.Get(bot).AddWaitTime(g.cfg.Bot.HarvestWaitMs)

	if stock.Empty() {
		status.Kill()
		pos := g.posMap.Get(spawner)
		g.collector.RecordSpawnerDepletion()
		g.recordEvent(telemetry.Event{
			Type:   telemetry.EventSpawnerDepleted,
			Entity: status.ID,
			Source: g.statusMap.Get(bot).ID,
			X:      pos.X,
			Y:      pos.Y,
		})
		slog.Debug("spawner depleted", "tick", g.tick, "id", status.ID)
	}
}

// deposit moves the bot's whole inventory into the spawnpoint and grants
// life for the value handed in.
func (g *Game) deposit(spawnpoint, bot ecs.Entity) {
	taken := g.cargoMap.Get(bot).Inventory.TakeAll()
	if len(taken) == 0 {
		return
	}
	granted := systems.DepositLife(taken, g.cfg.Bot.LifePerValue)
	g.lifeMap.Get(bot).Value += granted
	g.depotMap.Get(spawnpoint).Deposit(taken...)

	pos := g.posMap.Get(spawnpoint)
	g.collector.RecordDeposit(len(taken), granted)
	g.recordEvent(telemetry.Event{
		Type:   telemetry.EventDeposit,
		Entity: g.statusMap.Get(spawnpoint).ID,
		Source: g.statusMap.Get(bot).ID,
		X:      pos.X,
		Y:      pos.Y,
		Amount: granted,
	})
}

// updateStructure runs one frame for a living structure. Spawners are
// passive; spawnpoints may grow the world.
func (g *Game) updateStructure(e ecs.Entity) {
	if g.statusMap.Get(e).Kind == components.KindSpawnpoint {
		g.grow(e)
	}
}

// grow applies the growth rule to a spawnpoint. When it fires, the oldest
// threshold deposits are consumed and a new spawner or bot appears at a
// random position.
func (g *Game) grow(spawnpoint ecs.Entity) {
	growth := g.cfg.Growth
	depot := g.depotMap.Get(spawnpoint)

	outcome := systems.RollGrowth(g.rng, len(depot.Deposited), growth.Threshold, growth.ChanceDenominator)
	if outcome == systems.GrowthNone {
		return
	}
	// Consume before spawning: creating entities may move component storage.
	depot.Consume(growth.Threshold)
	source := g.statusMap.Get(spawnpoint).ID

	x, y := g.randomPosition()
	var child ecs.Entity
	var eventType telemetry.EventType
	switch outcome {
	case systems.GrowthSpawner:
		child = g.NewResourceSpawner(x, y, growth.SpawnerCapacity)
		g.AddStructure(child)
		g.collector.RecordSpawnerBirth()
		eventType = telemetry.EventSpawnerBorn
	case systems.GrowthBot:
		child = g.NewBot(x, y, WithSpeed(growth.BotSpeed))
		g.AddBot(child)
		g.collector.RecordBotBirth()
		eventType = telemetry.EventBotBorn
	}
	g.collector.RecordGrowth()

	id := g.statusMap.Get(child).ID
	g.recordEvent(telemetry.Event{
		Type:   eventType,
		Entity: id,
		Source: source,
		X:      x,
		Y:      y,
	})
	slog.Debug("growth", "tick", g.tick, "spawnpoint", source, "outcome", outcome.String(), "id", id, "x", x, "y", y)
}
