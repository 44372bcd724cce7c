package components

import "math/rand"

// Resource is an immutable value/weight pair. Value feeds bot life on
// deposit; weight is carried along for future carrying-cost rules.
type Resource struct {
	value  int
	weight int
}

// ResourceRange bounds the random draw for new resources (inclusive).
type ResourceRange struct {
	ValueMin, ValueMax   int
	WeightMin, WeightMax int
}

// DefaultResourceRange matches the classic economy: value 1-5, weight 50-250.
var DefaultResourceRange = ResourceRange{ValueMin: 1, ValueMax: 5, WeightMin: 50, WeightMax: 250}

// NewResource draws a fresh resource from the given range.
func NewResource(rng *rand.Rand, r ResourceRange) Resource {
	return Resource{
		value:  r.ValueMin + rng.Intn(r.ValueMax-r.ValueMin+1),
		weight: r.WeightMin + rng.Intn(r.WeightMax-r.WeightMin+1),
	}
}

// MakeResource builds a resource with explicit attributes.
// Values below 1 are raised to 1.
func MakeResource(value, weight int) Resource {
	return Resource{value: max(value, 1), weight: max(weight, 1)}
}

// Value returns how rewarding the resource is.
func (r Resource) Value() int { return r.value }

// Weight returns how hard the resource is to carry.
func (r Resource) Weight() int { return r.weight }
