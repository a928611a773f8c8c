package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	World   WorldConfig   `toml:"world"`
	Loop    LoopConfig    `toml:"loop"`
	Bench   BenchConfig   `toml:"bench"`
	Logging LoggingConfig `toml:"logging"`
}

type WorldConfig struct {
	PageSize        int `toml:"page_size"`        // sparse slots per page
	InitialCapacity int `toml:"initial_capacity"` // dense capacity per new pool
}

type LoopConfig struct {
	Frames    int           `toml:"frames"`
	FrameTime time.Duration `toml:"frame_time"` // simulated dt per frame
	FixedRate int           `toml:"fixed_rate"` // fixed ticks per second
}

type BenchConfig struct {
	Entities   int    `toml:"entities"`
	Profile    string `toml:"profile"` // "", "cpu" or "mem"
	ProfileDir string `toml:"profile_dir"`
	Script     string `toml:"script"` // optional Lua update script
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// FixedStep returns the duration of one fixed tick.
func (c LoopConfig) FixedStep() time.Duration {
	if c.FixedRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FixedRate)
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse overlays TOML data on the defaults. name is only used in errors.
func Parse(data []byte, name string) (*Config, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", name, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", name, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.World.PageSize <= 0 {
		return fmt.Errorf("world.page_size must be positive, got %d", c.World.PageSize)
	}
	if c.World.InitialCapacity < 0 {
		return fmt.Errorf("world.initial_capacity must not be negative, got %d", c.World.InitialCapacity)
	}
	if c.Loop.Frames < 0 {
		return fmt.Errorf("loop.frames must not be negative, got %d", c.Loop.Frames)
	}
	if c.Loop.FixedRate < 0 {
		return fmt.Errorf("loop.fixed_rate must not be negative, got %d", c.Loop.FixedRate)
	}
	switch c.Bench.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("bench.profile must be cpu, mem or empty, got %q", c.Bench.Profile)
	}
	return nil
}

func Defaults() *Config {
	return &Config{
		World: WorldConfig{
			PageSize:        1024,
			InitialCapacity: 1024,
		},
		Loop: LoopConfig{
			Frames:    600,
			FrameTime: 16 * time.Millisecond,
			FixedRate: 50,
		},
		Bench: BenchConfig{
			Entities:   100_000,
			ProfileDir: ".",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
