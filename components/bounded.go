package components

import "math/rand"

// Bounded is an ordered resource container that never holds more than its
// capacity. Every insertion path enforces the bound.
type Bounded struct {
	capacity int
	items    []Resource
}

// NewBounded creates an empty container with the given capacity.
func NewBounded(capacity int) Bounded {
	if capacity < 0 {
		capacity = 0
	}
	return Bounded{capacity: capacity, items: make([]Resource, 0, capacity)}
}

// Cap returns the capacity.
func (b *Bounded) Cap() int { return b.capacity }

// Len returns the number of held resources.
func (b *Bounded) Len() int { return len(b.items) }

// Full reports whether no more resources fit.
func (b *Bounded) Full() bool { return len(b.items) >= b.capacity }

// Empty reports whether the container holds nothing.
func (b *Bounded) Empty() bool { return len(b.items) == 0 }

// Add appends r. Returns false, leaving the container unchanged, when full.
func (b *Bounded) Add(r Resource) bool {
	if b.Full() {
		return false
	}
	b.items = append(b.items, r)
	return true
}

// AddAll appends every resource in rs, or none of them if they would not all fit.
func (b *Bounded) AddAll(rs []Resource) bool {
	if len(b.items)+len(rs) > b.capacity {
		return false
	}
	b.items = append(b.items, rs...)
	return true
}

// PeekRandom returns a uniformly chosen resource without removing it.
func (b *Bounded) PeekRandom(rng *rand.Rand) (Resource, bool) {
	if len(b.items) == 0 {
		return Resource{}, false
	}
	return b.items[rng.Intn(len(b.items))], true
}

// TakeRandom removes and returns a uniformly chosen resource.
func (b *Bounded) TakeRandom(rng *rand.Rand) (Resource, bool) {
	if len(b.items) == 0 {
		return Resource{}, false
	}
	i := rng.Intn(len(b.items))
	r := b.items[i]
	b.items = append(b.items[:i], b.items[i+1:]...)
	return r, true
}

// TakeAll removes and returns every resource in insertion order.
func (b *Bounded) TakeAll() []Resource {
	out := b.items
	b.items = make([]Resource, 0, b.capacity)
	return out
}

// Items returns a copy of the held resources.
func (b *Bounded) Items() []Resource {
	out := make([]Resource, len(b.items))
	copy(out, b.items)
	return out
}
