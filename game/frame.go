package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/forage/components"
)

// EntityView is the read-only state of one living entity.
type EntityView struct {
	ID   uint32          `json:"id"`
	Kind components.Kind `json:"kind"`
	X    float64         `json:"x"`
	Y    float64         `json:"y"`

	// Bots
	Life         float64 `json:"life,omitempty"`
	Inventory    int     `json:"inventory,omitempty"`
	MaxInventory int     `json:"max_inventory,omitempty"`
	HasTarget    bool    `json:"has_target,omitempty"`
	TargetX      float64 `json:"target_x,omitempty"`
	TargetY      float64 `json:"target_y,omitempty"`

	// Spawners
	Stock    int `json:"stock,omitempty"`
	Capacity int `json:"capacity,omitempty"`

	// Spawnpoints
	Deposits int `json:"deposits,omitempty"`
}

// Frame is an immutable snapshot of the living world, safe to hand to
// other goroutines.
type Frame struct {
	Tick       int32        `json:"tick"`
	WorldW     float64      `json:"world_w"`
	WorldH     float64      `json:"world_h"`
	Structures []EntityView `json:"structures"`
	Bots       []EntityView `json:"bots"`
}

// Redrawer receives one snapshot per frame, before entities are updated.
type Redrawer interface {
	Redraw(frame Frame)
}

// RedrawFunc adapts a function to a Redrawer.
type RedrawFunc func(frame Frame)

// Redraw calls f(frame).
func (f RedrawFunc) Redraw(frame Frame) { f(frame) }

// Redrawers fans a frame out to several redrawers in order.
type Redrawers []Redrawer

// Redraw passes frame to every non-nil redrawer.
func (rs Redrawers) Redraw(frame Frame) {
	for _, r := range rs {
		if r != nil {
			r.Redraw(frame)
		}
	}
}

// Snapshot captures the living entities in insertion order.
func (g *Game) Snapshot() Frame {
	f := Frame{
		Tick:       g.tick,
		WorldW:     g.cfg.Derived.WorldW,
		WorldH:     g.cfg.Derived.WorldH,
		Structures: make([]EntityView, 0, len(g.structures)),
		Bots:       make([]EntityView, 0, len(g.bots)),
	}
	for _, e := range g.structures {
		if g.statusMap.Get(e).Alive {
			f.Structures = append(f.Structures, g.view(e))
		}
	}
	for _, e := range g.bots {
		if g.statusMap.Get(e).Alive {
			f.Bots = append(f.Bots, g.view(e))
		}
	}
	return f
}

// View returns the current state of e.
func (g *Game) View(e ecs.Entity) EntityView {
	return g.view(e)
}

func (g *Game) view(e ecs.Entity) EntityView {
	status := g.statusMap.Get(e)
	pos := g.posMap.Get(e)
	v := EntityView{ID: status.ID, Kind: status.Kind, X: pos.X, Y: pos.Y}

	switch status.Kind {
	case components.KindBot:
		inv := &g.cargoMap.Get(e).Inventory
		motion := g.motionMap.Get(e)
		v.Life = g.lifeMap.Get(e).Value
		v.Inventory = inv.Len()
		v.MaxInventory = inv.Cap()
		if motion.HasTarget && g.Alive(motion.Target) {
			t := g.posMap.Get(motion.Target)
			v.HasTarget, v.TargetX, v.TargetY = true, t.X, t.Y
		}
	case components.KindResourceSpawner:
		stock := &g.stockMap.Get(e).Resources
		v.Stock = stock.Len()
		v.Capacity = stock.Cap()
	case components.KindSpawnpoint:
		v.Deposits = len(g.depotMap.Get(e).Deposited)
	}
	return v
}
