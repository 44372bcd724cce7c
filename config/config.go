// Package config provides configuration loading and access for the simulation.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

//go:embed schema.json
var schemaJSON string

// Reference resolution. Object sizes and placement ratios are designed
// against this canvas; renderers scale by actual/reference.
const (
	ReferenceWidth  = 1920
	ReferenceHeight = 1080
)

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Loop      LoopConfig      `yaml:"loop"`
	Initial   InitialConfig   `yaml:"initial"`
	Bot       BotConfig       `yaml:"bot"`
	Resource  ResourceConfig  `yaml:"resource"`
	Growth    GrowthConfig    `yaml:"growth"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Observer  ObserverConfig  `yaml:"observer"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings for the graphical renderer.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WorldConfig holds the play-field dimensions in world units.
type WorldConfig struct {
	Width  int `yaml:"width"`  // 0 = ReferenceWidth
	Height int `yaml:"height"` // 0 = ReferenceHeight
}

// LoopConfig holds tick loop pacing.
type LoopConfig struct {
	FrameRate int  `yaml:"frame_rate"`
	FixedStep bool `yaml:"fixed_step"` // advance a virtual clock by exactly one frame per spin
}

// InitialConfig describes the world at startup.
type InitialConfig struct {
	SpawnerCapacities []int `yaml:"spawner_capacities"` // one ResourceSpawner per entry, random position
	Bots              int   `yaml:"bots"`               // default bots at random positions
	Spawnpoints       int   `yaml:"spawnpoints"`        // placed at the play-field centre
}

// BotConfig holds bot defaults and economy constants.
type BotConfig struct {
	Speed         int     `yaml:"speed"`
	MaxInventory  int     `yaml:"max_inventory"`
	InitialLife   float64 `yaml:"initial_life"`    // seconds
	HarvestWaitMs float64 `yaml:"harvest_wait_ms"` // wait added per harvest
	LifePerValue  float64 `yaml:"life_per_value"`  // life granted per deposited resource value
}

// ResourceConfig bounds generated resource attributes (inclusive).
type ResourceConfig struct {
	ValueMin  int `yaml:"value_min"`
	ValueMax  int `yaml:"value_max"`
	WeightMin int `yaml:"weight_min"`
	WeightMax int `yaml:"weight_max"`
}

// GrowthConfig holds the spawnpoint growth rule parameters.
type GrowthConfig struct {
	Threshold         int `yaml:"threshold"`          // deposits required, also the amount consumed
	ChanceDenominator int `yaml:"chance_denominator"` // fires on rng.Intn(n) == 0
	SpawnerCapacity   int `yaml:"spawner_capacity"`
	BotSpeed          int `yaml:"bot_speed"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // simulated seconds
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// ObserverConfig holds websocket observer settings.
type ObserverConfig struct {
	Addr         string `yaml:"addr"`          // empty = disabled
	Every        int    `yaml:"every"`         // broadcast one frame in N
	ClientBuffer int    `yaml:"client_buffer"` // frames queued per client before dropping
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldW      float64       // Effective play-field width
	WorldH      float64       // Effective play-field height
	FrameBudget time.Duration // 1s / FrameRate
	WidthRatio  float64       // Screen.Width / ReferenceWidth
	HeightRatio float64       // Screen.Height / ReferenceHeight
}

// Default returns the embedded defaults. Panics if they are invalid.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: invalid embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate checks the effective configuration against the embedded schema
// and the cross-field rules the schema cannot express.
func (c *Config) Validate() error {
	schema, err := jsonschema.CompileString("config.schema.json", schemaJSON)
	if err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}

	doc, err := c.document()
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	if c.Resource.ValueMax < c.Resource.ValueMin {
		return fmt.Errorf("validating config: resource.value_max %d < value_min %d", c.Resource.ValueMax, c.Resource.ValueMin)
	}
	if c.Resource.WeightMax < c.Resource.WeightMin {
		return fmt.Errorf("validating config: resource.weight_max %d < weight_min %d", c.Resource.WeightMax, c.Resource.WeightMin)
	}
	return nil
}

// document renders the config as a generic JSON value for schema validation.
func (c *Config) document() (any, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	var generic map[string]any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	raw, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return doc, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// World dimensions default to the reference resolution if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = ReferenceWidth
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = ReferenceHeight
	}
	c.Derived.WorldW = float64(worldW)
	c.Derived.WorldH = float64(worldH)

	c.Derived.FrameBudget = time.Second / time.Duration(c.Loop.FrameRate)

	c.Derived.WidthRatio = float64(c.Screen.Width) / ReferenceWidth
	c.Derived.HeightRatio = float64(c.Screen.Height) / ReferenceHeight
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
