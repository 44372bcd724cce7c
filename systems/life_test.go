package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/pthm-cable/forage/components"
)

func TestDrainLife(t *testing.T) {
	tests := []struct {
		name      string
		life      float64
		delta     time.Duration
		wantLife  float64
		wantAlive bool
	}{
		{"half second", 2, 500 * time.Millisecond, 1.5, true},
		{"exactly out", 1, time.Second, 0, false},
		{"overshoot clamps", 0.25, time.Second, 0, false},
		{"already empty", 0, time.Millisecond, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			life := tt.life
			alive := DrainLife(&life, tt.delta)
			if alive != tt.wantAlive || life != tt.wantLife {
				t.Errorf("DrainLife(%v, %v) = (%v, %v), want (%v, %v)", tt.life, tt.delta, life, alive, tt.wantLife, tt.wantAlive)
			}
		})
	}
}

func TestDrainLifeMonotone(t *testing.T) {
	life := 3.0
	prev := life
	for i := 0; i < 500; i++ {
		DrainLife(&life, 16*time.Millisecond+time.Duration(i)*time.Microsecond)
		if life > prev {
			t.Fatalf("life increased from %v to %v", prev, life)
		}
		if life < 0 {
			t.Fatalf("life went negative: %v", life)
		}
		prev = life
	}
}

func TestDrainWait(t *testing.T) {
	tests := []struct {
		name        string
		wait        float64
		delta       time.Duration
		wantWait    float64
		wantWaiting bool
	}{
		{"not waiting", 0, 16 * time.Millisecond, 0, false},
		{"partial", 100, 16*time.Millisecond + 700*time.Microsecond, 84, true},
		{"clamps at zero", 10, 50 * time.Millisecond, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wait := tt.wait
			waiting := DrainWait(&wait, tt.delta)
			if waiting != tt.wantWaiting || wait != tt.wantWait {
				t.Errorf("DrainWait(%v, %v) = (%v, %v), want (%v, %v)", tt.wait, tt.delta, wait, waiting, tt.wantWait, tt.wantWaiting)
			}
		})
	}
}

func TestDepositLife(t *testing.T) {
	rs := []components.Resource{
		components.MakeResource(1, 50),
		components.MakeResource(3, 50),
		components.MakeResource(5, 50),
	}
	if got := DepositLife(rs, 6); got != 54 {
		t.Errorf("DepositLife = %v, want 54", got)
	}
	if got := DepositLife(nil, 6); got != 0 {
		t.Errorf("DepositLife(nil) = %v, want 0", got)
	}
}

func TestRollGrowthBelowThresholdDrawsNothing(t *testing.T) {
	a := rand.New(rand.NewSource(3))
	b := rand.New(rand.NewSource(3))
	if got := RollGrowth(a, 14, 15, 20); got != GrowthNone {
		t.Errorf("RollGrowth below threshold = %v, want none", got)
	}
	if a.Int63() != b.Int63() {
		t.Error("RollGrowth consumed randomness below threshold")
	}
}

func TestRollGrowthRate(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var fired, spawners int
	const trials = 20000
	for i := 0; i < trials; i++ {
		switch RollGrowth(rng, 15, 15, 20) {
		case GrowthSpawner:
			fired++
			spawners++
		case GrowthBot:
			fired++
		}
	}
	rate := float64(fired) / trials
	if rate < 0.04 || rate > 0.06 {
		t.Errorf("growth rate = %v, want ~0.05", rate)
	}
	share := float64(spawners) / float64(fired)
	if share < 0.4 || share > 0.6 {
		t.Errorf("spawner share = %v, want ~0.5", share)
	}
}

func TestRollGrowthCertain(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		if RollGrowth(rng, 15, 15, 1) == GrowthNone {
			t.Fatal("denominator 1 must always fire")
		}
	}
}
