package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Overlay IDs.
const (
	OverlayCounts    OverlayID = "counts"
	OverlayLifeText  OverlayID = "life_text"
	OverlayLifeBars  OverlayID = "life_bars"
	OverlayTargets   OverlayID = "targets"
	OverlayPerfPanel OverlayID = "perf_panel"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID       OverlayID
	Name     string
	Key      int32  // toggle key, 0 = none
	KeyLabel string // shown on the button
	Default  bool
	// Group makes overlays mutually exclusive: enabling one disables the
	// others sharing a non-empty group.
	Group string
}

var defaultOverlays = []OverlayDescriptor{
	{ID: OverlayCounts, Name: "Counts", Key: rl.KeyC, KeyLabel: "C", Default: true, Group: "label"},
	{ID: OverlayLifeText, Name: "Life", Key: rl.KeyL, KeyLabel: "L", Group: "label"},
	{ID: OverlayLifeBars, Name: "Life Bars", Key: rl.KeyB, KeyLabel: "B"},
	{ID: OverlayTargets, Name: "Targets", Key: rl.KeyT, KeyLabel: "T"},
	{ID: OverlayPerfPanel, Name: "Performance", Key: rl.KeyP, KeyLabel: "P"},
}

// OverlayRegistry tracks which overlays are on.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with the default overlays.
func NewOverlayRegistry() *OverlayRegistry {
	r := &OverlayRegistry{enabled: make(map[OverlayID]bool)}
	for _, d := range defaultOverlays {
		r.Register(d)
	}
	return r
}

// Register adds an overlay in its default state.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.enabled[desc.ID] = desc.Default
}

// Toggle flips an overlay and returns its new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	on := !r.enabled[id]
	r.SetEnabled(id, on)
	return r.enabled[id]
}

// SetEnabled sets an overlay's state. Unknown ids are ignored.
func (r *OverlayRegistry) SetEnabled(id OverlayID, on bool) {
	desc, ok := r.lookup(id)
	if !ok {
		return
	}
	if on && desc.Group != "" {
		for _, other := range r.descriptors {
			if other.Group == desc.Group {
				r.enabled[other.ID] = false
			}
		}
	}
	r.enabled[id] = on
}

// IsEnabled returns whether an overlay is on.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// All returns the overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// HandleKeyPress toggles the overlay bound to key. Returns false if no
// overlay uses that key.
func (r *OverlayRegistry) HandleKeyPress(key int32) bool {
	for _, desc := range r.descriptors {
		if desc.Key != 0 && desc.Key == key {
			r.Toggle(desc.ID)
			return true
		}
	}
	return false
}

func (r *OverlayRegistry) lookup(id OverlayID) (OverlayDescriptor, bool) {
	for _, d := range r.descriptors {
		if d.ID == id {
			return d, true
		}
	}
	return OverlayDescriptor{}, false
}
