package telemetry

import (
	"log/slog"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/forage/systems"
)

// phaseOrder lists the frame phases in execution order. A phase's index
// here is its slot in FrameSample.Phases.
var phaseOrder = systems.NewSystemRegistry().IDs()

// FrameSample is the timing of one frame.
type FrameSample struct {
	Delta  time.Duration   // loop time since the previous frame
	Work   time.Duration   // time spent inside the frame
	Phases []time.Duration // per phase, indexed like phaseOrder
}

// PerfCollector keeps a ring of recent frame samples. The loop passes
// each frame's delta in, so the frame rate reported is the rate the
// simulation actually ran at, not a renderer's.
type PerfCollector struct {
	ring  []FrameSample
	next  int
	count int
	slots map[string]int

	now func() time.Time

	cur        FrameSample
	frameStart time.Time
	phaseStart time.Time
	phase      int
}

// NewPerfCollector creates a collector averaging over windowSize frames.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	p := &PerfCollector{
		ring:  make([]FrameSample, windowSize),
		slots: make(map[string]int, len(phaseOrder)),
		now:   time.Now,
		phase: -1,
	}
	for i, id := range phaseOrder {
		p.slots[id] = i
	}
	for i := range p.ring {
		p.ring[i].Phases = make([]time.Duration, len(phaseOrder))
	}
	return p
}

// BeginFrame starts timing a frame that the loop ran delta after the last one.
func (p *PerfCollector) BeginFrame(delta time.Duration) {
	p.cur = p.ring[p.next]
	p.cur.Delta = delta
	p.cur.Work = 0
	clear(p.cur.Phases)
	p.frameStart = p.now()
	p.phase = -1
}

// Phase closes the running phase and starts timing id. Unknown ids are
// timed as part of the frame but not broken out.
func (p *PerfCollector) Phase(id string) {
	now := p.now()
	p.closePhase(now)
	p.phaseStart = now
	if slot, ok := p.slots[id]; ok {
		p.phase = slot
	} else {
		p.phase = -1
	}
}

// EndFrame closes the frame and stores it in the ring.
func (p *PerfCollector) EndFrame() {
	now := p.now()
	p.closePhase(now)
	p.phase = -1
	p.cur.Work = now.Sub(p.frameStart)

	p.ring[p.next] = p.cur
	p.next = (p.next + 1) % len(p.ring)
	if p.count < len(p.ring) {
		p.count++
	}
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase >= 0 {
		p.cur.Phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// PerfStats summarizes the frames currently in the window.
type PerfStats struct {
	Frames int

	AvgWork time.Duration
	MaxWork time.Duration
	P99Work time.Duration

	AvgDelta time.Duration
	FPS      float64 // frames per second of loop time
	Load     float64 // percent of loop time spent working

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // share of AvgWork
}

// Stats computes the window summary.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		Frames:   p.count,
		PhaseAvg: make(map[string]time.Duration, len(phaseOrder)),
		PhasePct: make(map[string]float64, len(phaseOrder)),
	}
	if p.count == 0 {
		return s
	}

	work := make([]float64, p.count)
	var totalWork, totalDelta time.Duration
	phaseSum := make([]time.Duration, len(phaseOrder))
	for i := 0; i < p.count; i++ {
		f := p.ring[i]
		work[i] = float64(f.Work)
		totalWork += f.Work
		totalDelta += f.Delta
		s.MaxWork = max(s.MaxWork, f.Work)
		for j, d := range f.Phases {
			phaseSum[j] += d
		}
	}
	slices.Sort(work)

	n := time.Duration(p.count)
	s.AvgWork = totalWork / n
	s.AvgDelta = totalDelta / n
	s.P99Work = time.Duration(stat.Quantile(0.99, stat.Empirical, work, nil))
	if s.AvgDelta > 0 {
		s.FPS = float64(time.Second) / float64(s.AvgDelta)
		s.Load = float64(s.AvgWork) / float64(s.AvgDelta) * 100
	}

	for j, id := range phaseOrder {
		avg := phaseSum[j] / n
		s.PhaseAvg[id] = avg
		if s.AvgWork > 0 {
			s.PhasePct[id] = float64(avg) / float64(s.AvgWork) * 100
		}
	}
	return s
}

// LogStats logs the window summary.
func (s PerfStats) LogStats() {
	slog.Info("perf", "window", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("frames", s.Frames),
		slog.Int64("avg_work_us", s.AvgWork.Microseconds()),
		slog.Int64("p99_work_us", s.P99Work.Microseconds()),
		slog.Float64("fps", s.FPS),
		slog.Float64("load_pct", s.Load),
	}
	for _, id := range phaseOrder {
		if pct := s.PhasePct[id]; pct > 0.1 {
			attrs = append(attrs, slog.Float64(id+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	WindowEnd     int32   `csv:"window_end"`
	Frames        int     `csv:"frames"`
	AvgWorkUS     int64   `csv:"avg_work_us"`
	MaxWorkUS     int64   `csv:"max_work_us"`
	P99WorkUS     int64   `csv:"p99_work_us"`
	AvgDeltaUS    int64   `csv:"avg_delta_us"`
	FPS           float64 `csv:"fps"`
	LoadPct       float64 `csv:"load_pct"`
	RedrawPct     float64 `csv:"redraw_pct"`
	StructuresPct float64 `csv:"structures_pct"`
	BotsPct       float64 `csv:"bots_pct"`
	TelemetryPct  float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the summary for perf.csv.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:     windowEnd,
		Frames:        s.Frames,
		AvgWorkUS:     s.AvgWork.Microseconds(),
		MaxWorkUS:     s.MaxWork.Microseconds(),
		P99WorkUS:     s.P99Work.Microseconds(),
		AvgDeltaUS:    s.AvgDelta.Microseconds(),
		FPS:           s.FPS,
		LoadPct:       s.Load,
		RedrawPct:     s.PhasePct[systems.PhaseRedraw],
		StructuresPct: s.PhasePct[systems.PhaseStructures],
		BotsPct:       s.PhasePct[systems.PhaseBots],
		TelemetryPct:  s.PhasePct[systems.PhaseTelemetry],
	}
}
