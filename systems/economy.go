package systems

import (
	"math/rand"

	"github.com/pthm-cable/forage/components"
)

// GrowthOutcome is the result of one spawnpoint growth check.
type GrowthOutcome uint8

const (
	GrowthNone GrowthOutcome = iota
	GrowthSpawner
	GrowthBot
)

// String returns the display name for a GrowthOutcome.
func (o GrowthOutcome) String() string {
	switch o {
	case GrowthSpawner:
		return "spawner"
	case GrowthBot:
		return "bot"
	}
	return "none"
}

// RollGrowth runs the growth check for a spawnpoint holding deposited
// resources. Below threshold nothing is drawn from rng. Otherwise one
// draw from [0, chanceDenominator) decides whether growth fires, and a fair
// coin picks what grows.
func RollGrowth(rng *rand.Rand, deposited, threshold, chanceDenominator int) GrowthOutcome {
	if deposited < threshold {
		return GrowthNone
	}
	if rng.Intn(chanceDenominator) != 0 {
		return GrowthNone
	}
	if rng.Intn(2) == 0 {
		return GrowthSpawner
	}
	return GrowthBot
}

// DepositLife returns the life granted for handing in resources.
func DepositLife(rs []components.Resource, perValue float64) float64 {
	var total int
	for _, r := range rs {
		total += r.Value()
	}
	return float64(total) * perValue
}
