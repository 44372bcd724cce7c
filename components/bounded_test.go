package components

import (
	"math/rand"
	"testing"
)

func TestBoundedRejectsBeyondCapacity(t *testing.T) {
	b := NewBounded(3)
	for i := 0; i < 3; i++ {
		if !b.Add(MakeResource(1, 50)) {
			t.Fatalf("add %d rejected below capacity", i)
		}
	}
	if b.Add(MakeResource(1, 50)) {
		t.Error("add accepted beyond capacity")
	}
	if b.Len() != 3 {
		t.Errorf("len = %d, want 3", b.Len())
	}
}

func TestBoundedAddAll(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		held     int
		adding   int
		want     bool
		wantLen  int
	}{
		{"fits exactly", 5, 2, 3, true, 5},
		{"fits with room", 5, 0, 2, true, 2},
		{"one too many", 5, 3, 3, false, 3},
		{"zero capacity", 0, 0, 1, false, 0},
		{"empty batch", 2, 2, 0, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBounded(tt.capacity)
			for i := 0; i < tt.held; i++ {
				b.Add(MakeResource(1, 50))
			}
			batch := make([]Resource, tt.adding)
			for i := range batch {
				batch[i] = MakeResource(2, 60)
			}
			if got := b.AddAll(batch); got != tt.want {
				t.Errorf("AddAll = %v, want %v", got, tt.want)
			}
			if b.Len() != tt.wantLen {
				t.Errorf("len = %d, want %d", b.Len(), tt.wantLen)
			}
			if b.Len() > b.Cap() {
				t.Errorf("len %d exceeds capacity %d", b.Len(), b.Cap())
			}
		})
	}
}

func TestBoundedInvariantUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewBounded(10)
	for i := 0; i < 1000; i++ {
		switch rng.Intn(3) {
		case 0:
			b.Add(MakeResource(1, 50))
		case 1:
			b.AddAll([]Resource{MakeResource(1, 50), MakeResource(2, 50)})
		case 2:
			b.TakeRandom(rng)
		}
		if b.Len() < 0 || b.Len() > b.Cap() {
			t.Fatalf("step %d: len %d outside [0, %d]", i, b.Len(), b.Cap())
		}
	}
}

func TestBoundedTakeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewBounded(4)
	for v := 1; v <= 4; v++ {
		b.Add(MakeResource(v, 50))
	}

	seen := make(map[int]bool)
	for b.Len() > 0 {
		r, ok := b.TakeRandom(rng)
		if !ok {
			t.Fatal("TakeRandom failed on non-empty container")
		}
		if seen[r.Value()] {
			t.Fatalf("value %d taken twice", r.Value())
		}
		seen[r.Value()] = true
	}
	if len(seen) != 4 {
		t.Errorf("took %d distinct resources, want 4", len(seen))
	}
	if _, ok := b.TakeRandom(rng); ok {
		t.Error("TakeRandom succeeded on empty container")
	}
	if _, ok := b.PeekRandom(rng); ok {
		t.Error("PeekRandom succeeded on empty container")
	}
}

func TestBoundedTakeAllKeepsOrder(t *testing.T) {
	b := NewBounded(3)
	b.Add(MakeResource(1, 50))
	b.Add(MakeResource(3, 50))
	b.Add(MakeResource(5, 50))

	got := b.TakeAll()
	if len(got) != 3 || got[0].Value() != 1 || got[1].Value() != 3 || got[2].Value() != 5 {
		t.Errorf("TakeAll = %v, want values [1 3 5]", got)
	}
	if !b.Empty() {
		t.Error("container not empty after TakeAll")
	}
	if !b.Add(MakeResource(1, 50)) {
		t.Error("container unusable after TakeAll")
	}
}
