package components

import (
	"math/rand"
	"testing"
)

func TestNewResourceInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	r := DefaultResourceRange
	for i := 0; i < 500; i++ {
		res := NewResource(rng, r)
		if res.Value() < r.ValueMin || res.Value() > r.ValueMax {
			t.Fatalf("value %d outside [%d, %d]", res.Value(), r.ValueMin, r.ValueMax)
		}
		if res.Weight() < r.WeightMin || res.Weight() > r.WeightMax {
			t.Fatalf("weight %d outside [%d, %d]", res.Weight(), r.WeightMin, r.WeightMax)
		}
	}
}

func TestMakeResourceFloorsAtOne(t *testing.T) {
	r := MakeResource(0, -3)
	if r.Value() != 1 || r.Weight() != 1 {
		t.Errorf("MakeResource(0, -3) = {%d, %d}, want {1, 1}", r.Value(), r.Weight())
	}
}

func TestKillOnce(t *testing.T) {
	s := Status{Kind: KindBot, Alive: true}
	if !s.Kill() {
		t.Error("first Kill should report a change")
	}
	if s.Kill() {
		t.Error("second Kill should report no change")
	}
	if s.Alive {
		t.Error("entity alive after Kill")
	}
}

func TestDepotConsumeFIFO(t *testing.T) {
	var d Depot
	for v := 1; v <= 17; v++ {
		d.Deposit(MakeResource(v, 50))
	}
	if !d.Consume(15) {
		t.Fatal("Consume(15) failed with 17 held")
	}
	if len(d.Deposited) != 2 {
		t.Fatalf("len = %d, want 2", len(d.Deposited))
	}
	if d.Deposited[0].Value() != 16 || d.Deposited[1].Value() != 17 {
		t.Errorf("remaining values = [%d %d], want [16 17]", d.Deposited[0].Value(), d.Deposited[1].Value())
	}
	if d.Consume(3) {
		t.Error("Consume(3) succeeded with 2 held")
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Position
		want float64
	}{
		{Position{0, 0}, Position{3, 4}, 5},
		{Position{3, 4}, Position{0, 0}, 5},
		{Position{-1, -1}, Position{-1, -1}, 0},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestKindTextRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindBot, KindSpawnpoint, KindResourceSpawner} {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", k, err)
		}
		var got Kind
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if got != k {
			t.Errorf("round trip %v = %v", k, got)
		}
	}

	var k Kind
	if err := k.UnmarshalText([]byte("dragon")); err == nil {
		t.Error("UnmarshalText accepted an unknown kind")
	}
}
