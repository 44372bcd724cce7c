package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/forage/components"
)

// AddBot appends a bot to the update order. Returns false if e is not a bot.
// Adding the same handle twice is permitted.
func (g *Game) AddBot(e ecs.Entity) bool {
	if !g.world.Alive(e) || g.statusMap.Get(e).Kind != components.KindBot {
		return false
	}
	g.bots = append(g.bots, e)
	return true
}

// AddStructure appends a spawner or spawnpoint to the update order.
// Returns false if e is not a structure.
func (g *Game) AddStructure(e ecs.Entity) bool {
	if !g.world.Alive(e) || !g.statusMap.Get(e).Kind.IsStructure() {
		return false
	}
	g.structures = append(g.structures, e)
	return true
}

// NearestOfType returns the living structure of exactly the given kind
// closest to origin. Ties go to the structure added first.
func (g *Game) NearestOfType(origin components.Position, kind components.Kind) (ecs.Entity, bool) {
	return g.nearest(g.structures, origin, kind)
}

// NearestBot returns the living bot closest to origin.
func (g *Game) NearestBot(origin components.Position) (ecs.Entity, bool) {
	return g.nearest(g.bots, origin, components.KindBot)
}

func (g *Game) nearest(list []ecs.Entity, origin components.Position, kind components.Kind) (ecs.Entity, bool) {
	var best ecs.Entity
	var bestDist float64
	found := false
	for _, e := range list {
		status := g.statusMap.Get(e)
		if !status.Alive || status.Kind != kind {
			continue
		}
		d := components.Distance(origin, *g.posMap.Get(e))
		// Strict comparison keeps the earliest entity on ties
		if !found || d < bestDist {
			best, bestDist, found = e, d, true
		}
	}
	return best, found
}

// Resolve returns e if it refers to a living entity.
func (g *Game) Resolve(e ecs.Entity) (ecs.Entity, bool) {
	if !g.Alive(e) {
		return ecs.Entity{}, false
	}
	return e, true
}

// Alive reports whether e is a living entity of this game.
func (g *Game) Alive(e ecs.Entity) bool {
	return g.world.Alive(e) && g.statusMap.Get(e).Alive
}

// Kill marks e dead. Returns true if this call changed its state.
func (g *Game) Kill(e ecs.Entity) bool {
	if !g.world.Alive(e) {
		return false
	}
	return g.statusMap.Get(e).Kill()
}

// LivingBots returns the living bots in insertion order.
func (g *Game) LivingBots() []ecs.Entity {
	return g.living(g.bots)
}

// LivingStructures returns the living structures in insertion order.
func (g *Game) LivingStructures() []ecs.Entity {
	return g.living(g.structures)
}

// BotsOfKind returns the living bots of exactly the given kind.
func (g *Game) BotsOfKind(kind components.Kind) []ecs.Entity {
	var out []ecs.Entity
	for _, e := range g.bots {
		status := g.statusMap.Get(e)
		if status.Alive && status.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Bots returns every bot handle ever added, dead or alive.
func (g *Game) Bots() []ecs.Entity {
	return append([]ecs.Entity(nil), g.bots...)
}

// Structures returns every structure handle ever added, dead or alive.
func (g *Game) Structures() []ecs.Entity {
	return append([]ecs.Entity(nil), g.structures...)
}

func (g *Game) living(list []ecs.Entity) []ecs.Entity {
	out := make([]ecs.Entity, 0, len(list))
	for _, e := range list {
		if g.statusMap.Get(e).Alive {
			out = append(out, e)
		}
	}
	return out
}

// Kind returns the kind of e.
func (g *Game) Kind(e ecs.Entity) components.Kind {
	return g.statusMap.Get(e).Kind
}

// Position returns the position of e.
func (g *Game) Position(e ecs.Entity) components.Position {
	return *g.posMap.Get(e)
}

// MoveX shifts a bot along x by units. Structures never move.
func (g *Game) MoveX(e ecs.Entity, units float64) {
	if g.statusMap.Get(e).Kind != components.KindBot {
		return
	}
	g.posMap.Get(e).X += units
}

// MoveY shifts a bot along y by units. Structures never move.
func (g *Game) MoveY(e ecs.Entity, units float64) {
	if g.statusMap.Get(e).Kind != components.KindBot {
		return
	}
	g.posMap.Get(e).Y += units
}
