package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population counts at window end
	Bots        int `csv:"bots"`
	Spawners    int `csv:"spawners"`
	Spawnpoints int `csv:"spawnpoints"`

	// Events during window
	Harvests          int     `csv:"harvests"`
	Discarded         int     `csv:"discarded"`
	Deposits          int     `csv:"deposits"`
	ResourcesBanked   int     `csv:"resources_banked"`
	LifeGranted       float64 `csv:"life_granted"`
	BotBirths         int     `csv:"bot_births"`
	SpawnerBirths     int     `csv:"spawner_births"`
	BotDeaths         int     `csv:"bot_deaths"`
	SpawnerDepletions int     `csv:"spawner_depletions"`
	GrowthEvents      int     `csv:"growth_events"`

	// Life distribution (sampled at window end)
	LifeMean float64 `csv:"life_mean"`
	LifeStd  float64 `csv:"life_std"`
	LifeP10  float64 `csv:"life_p10"`
	LifeP50  float64 `csv:"life_p50"`
	LifeP90  float64 `csv:"life_p90"`

	// Resource pools (sampled at window end)
	InventoryFill  float64 `csv:"inventory_fill"` // mean fraction of bot inventory in use
	TotalStock     int     `csv:"total_stock"`
	TotalDeposited int     `csv:"total_deposited"`
}

// Quantile returns the empirical p-quantile of a sorted slice.
// Returns 0 if the slice is empty.
func Quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// ComputeLifeStats calculates mean, std, and percentiles from life values.
func ComputeLifeStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if n > 1 {
		std = stat.StdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Quantile(sorted, 0.10)
	p50 = Quantile(sorted, 0.50)
	p90 = Quantile(sorted, 0.90)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("bots", s.Bots),
		slog.Int("spawners", s.Spawners),
		slog.Int("spawnpoints", s.Spawnpoints),
		slog.Int("harvests", s.Harvests),
		slog.Int("discarded", s.Discarded),
		slog.Int("deposits", s.Deposits),
		slog.Int("resources_banked", s.ResourcesBanked),
		slog.Float64("life_granted", s.LifeGranted),
		slog.Int("bot_births", s.BotBirths),
		slog.Int("spawner_births", s.SpawnerBirths),
		slog.Int("bot_deaths", s.BotDeaths),
		slog.Int("spawner_depletions", s.SpawnerDepletions),
		slog.Int("growth_events", s.GrowthEvents),
		slog.Float64("life_mean", s.LifeMean),
		slog.Float64("life_p50", s.LifeP50),
		slog.Float64("inventory_fill", s.InventoryFill),
		slog.Int("total_stock", s.TotalStock),
		slog.Int("total_deposited", s.TotalDeposited),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
