// Package components defines ECS components for the simulation.
package components

import "fmt"

// Kind identifies the exact entity type. Nearest queries match on the
// exact kind, never on a broader category.
type Kind uint8

const (
	KindBot Kind = iota
	KindSpawnpoint
	KindResourceSpawner
)

// String returns the display name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindBot:
		return "bot"
	case KindSpawnpoint:
		return "spawnpoint"
	case KindResourceSpawner:
		return "resource_spawner"
	}
	return "unknown"
}

// IsStructure reports whether entities of this kind are stationary structures.
func (k Kind) IsStructure() bool {
	return k == KindSpawnpoint || k == KindResourceSpawner
}

// Status holds the kind tag and the alive flag shared by every entity.
// Alive only ever goes from true to false; dead entities stay in the
// world as tombstones.
type Status struct {
	ID    uint32 // stable identifier for logs and snapshots, assigned at spawn
	Kind  Kind
	Alive bool
}

// Kill marks the entity dead. Returns true if this call changed the state,
// false if it was already dead.
func (s *Status) Kill() bool {
	if !s.Alive {
		return false
	}
	s.Alive = false
	return true
}

// MarshalText encodes a Kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a Kind from its name.
func (k *Kind) UnmarshalText(text []byte) error {
	for _, c := range []Kind{KindBot, KindSpawnpoint, KindResourceSpawner} {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", text)
}
