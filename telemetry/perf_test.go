package telemetry

import (
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/forage/systems"
)

// stepClock is a clock that only moves when told to.
type stepClock struct {
	t time.Time
}

func (c *stepClock) now() time.Time          { return c.t }
func (c *stepClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestPerfCollector(windowSize int) (*PerfCollector, *stepClock) {
	clock := &stepClock{t: time.Unix(0, 0)}
	pc := NewPerfCollector(windowSize)
	pc.now = clock.now
	return pc, clock
}

func TestPerfCollectorPhases(t *testing.T) {
	pc, clock := newTestPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.BeginFrame(16 * time.Millisecond)
		pc.Phase(systems.PhaseStructures)
		clock.advance(100 * time.Microsecond)
		pc.Phase(systems.PhaseBots)
		clock.advance(300 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()
	if stats.Frames != 5 {
		t.Errorf("frames = %d, want 5", stats.Frames)
	}
	want := 400 * time.Microsecond
	if stats.AvgWork != want || stats.MaxWork != want || stats.P99Work != want {
		t.Errorf("work avg/max/p99 = %v/%v/%v, want %v", stats.AvgWork, stats.MaxWork, stats.P99Work, want)
	}

	tests := []struct {
		phase string
		avg   time.Duration
		pct   float64
	}{
		{systems.PhaseRedraw, 0, 0},
		{systems.PhaseStructures, 100 * time.Microsecond, 25},
		{systems.PhaseBots, 300 * time.Microsecond, 75},
		{systems.PhaseTelemetry, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			if got := stats.PhaseAvg[tt.phase]; got != tt.avg {
				t.Errorf("avg = %v, want %v", got, tt.avg)
			}
			if got := stats.PhasePct[tt.phase]; math.Abs(got-tt.pct) > 1e-9 {
				t.Errorf("pct = %v, want %v", got, tt.pct)
			}
		})
	}

	if math.Abs(stats.Load-2.5) > 1e-9 {
		t.Errorf("load = %v, want 2.5", stats.Load)
	}
}

func TestPerfCollectorFPSFromDeltas(t *testing.T) {
	pc, clock := newTestPerfCollector(4)

	// The first two frames fall out of the window.
	deltas := []time.Duration{time.Second, time.Second, 20 * time.Millisecond, 20 * time.Millisecond, 20 * time.Millisecond, 20 * time.Millisecond}
	for _, d := range deltas {
		pc.BeginFrame(d)
		pc.Phase(systems.PhaseBots)
		clock.advance(5 * time.Millisecond)
		pc.EndFrame()
	}

	stats := pc.Stats()
	if stats.Frames != 4 {
		t.Errorf("frames = %d, want 4", stats.Frames)
	}
	if stats.AvgDelta != 20*time.Millisecond {
		t.Errorf("avg delta = %v, want 20ms", stats.AvgDelta)
	}
	if math.Abs(stats.FPS-50) > 1e-9 {
		t.Errorf("fps = %v, want 50", stats.FPS)
	}
	if math.Abs(stats.Load-25) > 1e-9 {
		t.Errorf("load = %v, want 25", stats.Load)
	}
}

func TestPerfCollectorUnknownPhase(t *testing.T) {
	pc, clock := newTestPerfCollector(2)
	pc.BeginFrame(time.Millisecond)
	pc.Phase("not-a-phase")
	clock.advance(time.Microsecond)
	pc.EndFrame()

	stats := pc.Stats()
	if _, ok := stats.PhaseAvg["not-a-phase"]; ok {
		t.Error("unknown phase broken out")
	}
	if len(stats.PhaseAvg) != len(phaseOrder) {
		t.Errorf("phase count = %d, want %d", len(stats.PhaseAvg), len(phaseOrder))
	}
	if stats.AvgWork != time.Microsecond {
		t.Errorf("work = %v, want 1µs counted in the frame", stats.AvgWork)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	stats := NewPerfCollector(10).Stats()
	if stats.Frames != 0 || stats.AvgWork != 0 || stats.FPS != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	stats := PerfStats{
		Frames:   60,
		AvgWork:  2 * time.Millisecond,
		AvgDelta: 16 * time.Millisecond,
		PhasePct: map[string]float64{
			systems.PhaseRedraw:     50,
			systems.PhaseStructures: 10,
			systems.PhaseBots:       35,
			systems.PhaseTelemetry:  5,
		},
	}

	row := stats.ToCSV(600)
	if row.WindowEnd != 600 || row.Frames != 60 || row.AvgWorkUS != 2000 || row.AvgDeltaUS != 16000 {
		t.Errorf("row fields = %+v", row)
	}
	if row.RedrawPct != 50 || row.StructuresPct != 10 || row.BotsPct != 35 || row.TelemetryPct != 5 {
		t.Errorf("phase columns not mapped: %+v", row)
	}
}
