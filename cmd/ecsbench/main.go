package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/l1jgo/engine/internal/config"
	"github.com/l1jgo/engine/internal/core/ecs"
	"github.com/l1jgo/engine/internal/core/event"
	"github.com/l1jgo/engine/internal/logging"
	"github.com/l1jgo/engine/internal/scripting"
	"github.com/l1jgo/engine/internal/system"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Report helpers ────────────────────────────────────────────────

var out = message.NewPrinter(language.English)

func printSection(title string) {
	out.Printf("\n  \033[33m── %s\033[0m\n", title)
}

func printStat(label string, n int) {
	out.Printf("  %-30s \033[32m%d\033[0m\n", label, n)
}

func printDuration(label string, d time.Duration) {
	out.Printf("  %-30s \033[32m%v\033[0m\n", label, d.Round(time.Microsecond))
}

// ── Main bench logic ──────────────────────────────────────────────

func run() error {
	cfgPath := "config/engine.toml"
	if p := os.Getenv("ECS_CONFIG"); p != "" {
		cfgPath = p
	}
	flag.StringVar(&cfgPath, "config", cfgPath, "path to the TOML config")
	entities := flag.Int("entities", 0, "override bench.entities")
	frames := flag.Int("frames", 0, "override loop.frames")
	flag.Parse()

	// 1. Load config
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *entities > 0 {
		cfg.Bench.Entities = *entities
	}
	if *frames > 0 {
		cfg.Loop.Frames = *frames
	}

	// 2. Init logger
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	switch cfg.Bench.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.Bench.ProfileDir), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(cfg.Bench.ProfileDir), profile.NoShutdownHook).Stop()
	}

	// 3. Build the world and its systems
	world := ecs.NewWorld(
		ecs.WithLogger(log),
		ecs.WithPoolOptions(ecs.SparseSetOptions{
			PageSize:        cfg.World.PageSize,
			InitialCapacity: cfg.World.InitialCapacity,
		}),
	)

	cleanup := system.NewCleanupSystem()
	census := &system.CensusSystem{}
	world.AddSystem(cleanup)
	world.AddSystem(system.AgingSystem{})
	world.AddSystem(system.MovementSystem{})
	world.AddFixedSystem(system.GravitySystem{})
	world.AddRenderSystem(census)

	if cfg.Bench.Script != "" {
		script, err := scripting.LoadSystem(cfg.Bench.Script, log)
		if err != nil {
			return fmt.Errorf("load script: %w", err)
		}
		defer script.Close()
		world.AddSystem(script)
	}

	destroyed := 0
	event.Subscribe(world.Events(), func(ecs.EntityDestroyed) {
		destroyed++
	})

	if err := world.CompileSystems(); err != nil {
		return err
	}
	log.Info("systems compiled",
		zap.Any("update", world.UpdateOrder()),
		zap.Any("fixed", world.FixedOrder()),
		zap.Any("render", world.RenderOrder()),
	)

	// 4. Populate. Lifetimes run out halfway through the loop.
	life := time.Duration(cfg.Loop.Frames/2) * cfg.Loop.FrameTime
	start := time.Now()
	system.Populate(world, cfg.Bench.Entities, life)
	populate := time.Since(start)

	// 5. Run frames
	driver := system.NewDriver(world, cfg.Loop.FixedStep())
	start = time.Now()
	for i := 0; i < cfg.Loop.Frames; i++ {
		driver.Frame(cfg.Loop.FrameTime)
	}
	elapsed := time.Since(start)
	world.Update(0) // deliver the last frame's destroy events

	printSection("World")
	printStat("entities created", world.Pool().Allocated())
	printStat("component pools", world.Registry().Len())
	printStat("destroyed (cleanup)", cleanup.Destroyed)
	printStat("destroyed (events)", destroyed)
	printSection("Last draw")
	printStat("moving", census.Moving)
	printStat("moving + mortal", census.Mortal)
	printSection("Timing")
	printStat("frames", int(driver.Frames()))
	printStat("fixed ticks", int(driver.Ticks()))
	printDuration("populate", populate)
	printDuration("loop", elapsed)
	if driver.Frames() > 0 {
		printDuration("per frame", elapsed/time.Duration(driver.Frames()))
	}
	out.Println()
	return nil
}
