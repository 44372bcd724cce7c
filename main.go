package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/game"
	"github.com/pthm-cable/forage/observer"
	"github.com/pthm-cable/forage/renderer"
	"github.com/pthm-cable/forage/tui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	render := flag.String("render", "window", "Renderer: window, terminal or none")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, events and config snapshot")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	observe := flag.String("observe", "", "Websocket observer address, e.g. :8080 (empty = use config)")
	fixedStep := flag.Bool("fixed-step", false, "Advance exactly one frame per spin instead of pacing on the wall clock")
	debug := flag.Bool("debug", false, "Log lifecycle events at debug level")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging). The terminal
	// renderer owns stdout, so logs go to stderr there.
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logOut := os.Stdout
	if *render == "terminal" {
		logOut = os.Stderr
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *fixedStep {
		cfg.Loop.FixedStep = true
	}
	if *observe != "" {
		cfg.Observer.Addr = *observe
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	g, err := game.NewGame(cfg, game.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	})
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := g.Close(); err != nil {
			slog.Error("closing game", "error", err)
		}
	}()

	var interrupted atomic.Bool
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		interrupted.Store(true)
	}()

	var redraw game.Redrawers
	closed := func() bool { return false }

	switch *render {
	case "window":
		w := renderer.Open(cfg, g)
		defer w.Close()
		redraw = append(redraw, w)
		closed = w.Closed
	case "terminal":
		t, err := tui.Open()
		if err != nil {
			slog.Error("failed to open terminal", "error", err)
			os.Exit(1)
		}
		defer t.Close()
		redraw = append(redraw, t)
		closed = t.Closed
	case "none":
	default:
		slog.Error("unknown renderer", "render", *render)
		os.Exit(2)
	}

	if cfg.Observer.Addr != "" {
		obs := observer.NewServer(cfg.Observer)
		if err := obs.Start(cfg.Observer.Addr); err != nil {
			slog.Error("failed to start observer", "error", err)
			os.Exit(1)
		}
		defer obs.Close()
		redraw = append(redraw, obs)
	}

	var clock game.Clock = game.NewWallClock()
	if cfg.Loop.FixedStep {
		clock = game.NewStepClock(cfg.Derived.FrameBudget)
	}
	loop := game.NewLoop(g, clock, redraw)

	slog.Info("starting simulation",
		"seed", rngSeed,
		"render", *render,
		"max_ticks", *maxTicks,
		"fixed_step", cfg.Loop.FixedStep,
		"frame_rate", cfg.Loop.FrameRate,
	)

	loop.Run(func() bool {
		if interrupted.Load() || closed() {
			return true
		}
		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			return true
		}
		return false
	})

	slog.Info("simulation stopped", "tick", g.Tick(), "frames", loop.Frames())
}
