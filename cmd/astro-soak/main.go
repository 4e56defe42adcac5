// Command astro-soak runs a level headless with a scripted player and
// reports tick timings, entity counts and the final score.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/astro/config"
	"github.com/plus3/astro/level"
	"github.com/plus3/astro/shooter"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "wall-clock time to run for")
	maxTicks := flag.Int64("ticks", 0, "stop after this many ticks; 0 runs for -duration")
	configPath := flag.String("config", "", "YAML config file; built-in defaults when empty")
	levelIndex := flag.Int("level-index", 0, "built-in level to run")
	seed := flag.Uint64("seed", 1, "seed of the world and of the scripted player")
	noPhysics := flag.Bool("no-physics", false, "integrate velocities without the physics space")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "include GC pause totals in the report")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Seed = *seed

	world, err := level.Default()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	lvl, err := world.Level(*levelIndex)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	var opts []shooter.Option
	if *noPhysics {
		opts = append(opts, shooter.WithoutPhysics())
	}
	w, err := shooter.NewWorld(cfg, lvl, opts...)
	if err != nil {
		log.Fatalf("Failed to build world: %v", err)
	}

	report := &Report{
		Level:          lvl.Identifier,
		Seed:           *seed,
		Physics:        !*noPhysics,
		Duration:       *duration,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	log.Printf("Soaking %s for %s...\n", lvl.Identifier, *duration)
	run(ctx, w, newBot(*seed), *maxTicks, report)
	runtime.ReadMemStats(&report.MemStatsEnd)
	log.Println("Soak finished.")

	fmt.Println("\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// run ticks the world at a fixed step until ctx is done or maxTicks ticks
// have run.
func run(ctx context.Context, w *shooter.World, b *bot, maxTicks int64, report *Report) {
	dt := 1.0 / float64(w.Config.Window.TPS)
	start := time.Now()

Loop:
	for maxTicks <= 0 || report.Ticks < maxTicks {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		b.drive(w.Input())

		tickStart := time.Now()
		w.Tick(dt)
		report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))

		report.Ticks++
		report.PeakEntities = max(report.PeakEntities, w.Storage.Count())
		report.PeakProjectiles = max(report.PeakProjectiles, w.ProjectileCount())
	}

	report.TotalTime = time.Since(start)
	report.SimulatedTime = time.Duration(float64(report.Ticks) * dt * float64(time.Second))
	report.TickTime.Finalize()
	report.Score = *w.Scoreboard()
	report.Entities = w.Storage.Count()
}
