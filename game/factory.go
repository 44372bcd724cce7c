package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/forage/components"
)

// BotOption adjusts a bot before it is created.
type BotOption func(*botSpec)

type botSpec struct {
	speed        int
	maxInventory int
	life         float64
}

// WithSpeed sets the bot's movement speed in units per frame.
func WithSpeed(speed int) BotOption {
	return func(s *botSpec) { s.speed = speed }
}

// WithMaxInventory sets how many resources the bot carries before returning home.
func WithMaxInventory(n int) BotOption {
	return func(s *botSpec) { s.maxInventory = n }
}

// WithLife sets the bot's starting life in seconds.
func WithLife(seconds float64) BotOption {
	return func(s *botSpec) { s.life = seconds }
}

// NewBot creates a living bot at (x, y). The bot is not registered; pass the
// handle to AddBot for it to be updated.
func (g *Game) NewBot(x, y float64, opts ...BotOption) ecs.Entity {
	spec := botSpec{
		speed:        g.cfg.Bot.Speed,
		maxInventory: g.cfg.Bot.MaxInventory,
		life:         g.cfg.Bot.InitialLife,
	}
	for _, opt := range opts {
		opt(&spec)
	}
	if spec.speed < 0 {
		spec.speed = 0
	}
	if spec.maxInventory < 0 {
		spec.maxInventory = 0
	}
	if spec.life < 0 {
		spec.life = 0
	}

	status := components.Status{ID: g.allocID(), Kind: components.KindBot, Alive: true}
	pos := components.Position{X: x, Y: y}
	life := components.Life{Value: spec.life}
	motion := components.Motion{Speed: spec.speed}
	cargo := components.Cargo{Inventory: components.NewBounded(spec.maxInventory)}

	return g.botMapper.NewEntity(&status, &pos, &life, &motion, &cargo)
}

// NewResourceSpawner creates a living spawner at (x, y) stocked to capacity
// with random resources. The handle must be passed to AddStructure.
func (g *Game) NewResourceSpawner(x, y float64, capacity int) ecs.Entity {
	if capacity < 0 {
		capacity = 0
	}
	stock := components.Stock{Resources: components.NewBounded(capacity)}
	for !stock.Resources.Full() {
		stock.Resources.Add(components.NewResource(g.rng, g.resources))
	}

	status := components.Status{ID: g.allocID(), Kind: components.KindResourceSpawner, Alive: true}
	pos := components.Position{X: x, Y: y}

	return g.spawnerMapper.NewEntity(&status, &pos, &stock)
}

// NewSpawnpoint creates a living spawnpoint with no deposits at (x, y).
// The handle must be passed to AddStructure.
func (g *Game) NewSpawnpoint(x, y float64) ecs.Entity {
	status := components.Status{ID: g.allocID(), Kind: components.KindSpawnpoint, Alive: true}
	pos := components.Position{X: x, Y: y}
	depot := components.Depot{}

	return g.spawnpointMapper.NewEntity(&status, &pos, &depot)
}

func (g *Game) allocID() uint32 {
	id := g.nextID
	g.nextID++
	return id
}
