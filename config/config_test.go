package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Bot.MaxInventory != 5 || cfg.Bot.Speed != 1 {
		t.Errorf("bot defaults = %+v, want max_inventory 5 speed 1", cfg.Bot)
	}
	if cfg.Growth.Threshold != 15 || cfg.Growth.ChanceDenominator != 20 {
		t.Errorf("growth defaults = %+v", cfg.Growth)
	}
	if cfg.Derived.FrameBudget != time.Second/60 {
		t.Errorf("frame budget = %v, want %v", cfg.Derived.FrameBudget, time.Second/60)
	}
	if cfg.Derived.WorldW != ReferenceWidth || cfg.Derived.WorldH != ReferenceHeight {
		t.Errorf("world = %vx%v, want reference", cfg.Derived.WorldW, cfg.Derived.WorldH)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := []byte("bot:\n  speed: 4\nworld:\n  width: 0\n  height: 0\nscreen:\n  width: 960\n  height: 540\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Bot.Speed != 4 {
		t.Errorf("speed = %d, want 4", cfg.Bot.Speed)
	}
	// Untouched fields keep their defaults
	if cfg.Bot.MaxInventory != 5 {
		t.Errorf("max_inventory = %d, want default 5", cfg.Bot.MaxInventory)
	}
	if cfg.Derived.WorldW != ReferenceWidth {
		t.Errorf("zero world width should fall back to reference, got %v", cfg.Derived.WorldW)
	}
	if cfg.Derived.WidthRatio != 0.5 || cfg.Derived.HeightRatio != 0.5 {
		t.Errorf("ratios = %v,%v want 0.5,0.5", cfg.Derived.WidthRatio, cfg.Derived.HeightRatio)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative speed", "bot:\n  speed: -1\n"},
		{"zero chance denominator", "growth:\n  chance_denominator: 0\n"},
		{"zero frame rate", "loop:\n  frame_rate: 0\n"},
		{"non-positive life", "bot:\n  initial_life: 0\n"},
		{"inverted value range", "resource:\n  value_min: 4\n  value_max: 2\n"},
		{"malformed yaml", "bot: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Growth.BotSpeed = 7

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load of written config failed: %v", err)
	}
	if loaded.Growth.BotSpeed != 7 {
		t.Errorf("bot_speed = %d, want 7", loaded.Growth.BotSpeed)
	}
}
