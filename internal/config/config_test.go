package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseEmptyUsesDefaults(t *testing.T) {
	cfg, err := Parse(nil, "empty")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	def := Defaults()
	if *cfg != *def {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.Loop.FixedStep() != 20*time.Millisecond {
		t.Fatalf("expected 20ms fixed step, got %v", cfg.Loop.FixedStep())
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	data := []byte(`
[world]
page_size = 64

[loop]
frame_time = "5ms"
fixed_rate = 100

[logging]
format = "json"
`)
	cfg, err := Parse(data, "inline")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.World.PageSize != 64 || cfg.World.InitialCapacity != 1024 {
		t.Fatalf("unexpected world section %+v", cfg.World)
	}
	if cfg.Loop.FrameTime != 5*time.Millisecond || cfg.Loop.Frames != 600 {
		t.Fatalf("unexpected loop section %+v", cfg.Loop)
	}
	if cfg.Loop.FixedStep() != 10*time.Millisecond {
		t.Fatalf("expected 10ms fixed step, got %v", cfg.Loop.FixedStep())
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging section %+v", cfg.Logging)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"page_size":  "[world]\npage_size = 0",
		"capacity":   "[world]\ninitial_capacity = -1",
		"frames":     "[loop]\nframes = -3",
		"fixed_rate": "[loop]\nfixed_rate = -1",
		"profile":    "[bench]\nprofile = \"block\"",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data), name)
			if err == nil || !strings.Contains(err.Error(), "invalid config") {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestParseRejectsMalformedTOML(t *testing.T) {
	_, err := Parse([]byte("[world\npage_size = 1"), "broken.toml")
	if err == nil || !strings.Contains(err.Error(), "broken.toml") {
		t.Fatalf("expected a parse error naming the file, got %v", err)
	}
}

func TestFixedStepDisabled(t *testing.T) {
	if (LoopConfig{}).FixedStep() != 0 {
		t.Fatalf("zero fixed rate should disable the fixed step")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	if err := os.WriteFile(path, []byte("[bench]\nentities = 42\nprofile = \"cpu\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Bench.Entities != 42 || cfg.Bench.Profile != "cpu" {
		t.Fatalf("unexpected bench section %+v", cfg.Bench)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
