// Command astro runs the arcade shooter in a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/astro/config"
	"github.com/plus3/astro/level"
	"github.com/plus3/astro/save"
)

func main() {
	configPath := flag.String("config", "", "YAML config file; built-in defaults when empty")
	levelPath := flag.String("level", "", "level file; overrides level.path of the config")
	levelIndex := flag.Int("level-index", -1, "level to play; overrides level.index of the config")
	seed := flag.Uint64("seed", 0, "random seed; 0 keeps the config's")
	debug := flag.Bool("debug", false, "show the ECS debug windows")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	noSave := flag.Bool("no-save", false, "do not record scores")
	dumpConfig := flag.Bool("dump-config", false, "print the effective config and exit")
	flag.Parse()

	if err := setupLogging(*logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	if *levelPath != "" {
		cfg.Level.Path = *levelPath
	}
	if *levelIndex >= 0 {
		cfg.Level.Index = *levelIndex
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	if *dumpConfig {
		if err := cfg.Write(os.Stdout); err != nil {
			slog.Error("failed to write config", "error", err)
			os.Exit(1)
		}
		return
	}
	cfg.Seed = pickSeed(cfg.Seed, rand.Uint64)

	lvl, err := loadLevel(cfg.Level)
	if err != nil {
		slog.Error("failed to load level", "path", cfg.Level.Path, "index", cfg.Level.Index, "error", err)
		os.Exit(1)
	}

	var store *save.Store
	if *noSave {
		store = save.NewStore(nil)
	} else {
		store = save.Open(save.AppName)
	}

	game, err := NewGame(cfg, lvl, *debug)
	if err != nil {
		slog.Error("failed to start game", "error", err)
		os.Exit(1)
	}

	slog.Info("starting", "level", lvl.Identifier, "seed", cfg.Seed, "debug", *debug)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game stopped", "error", err)
		os.Exit(1)
	}

	score := *game.world.Scoreboard()
	store.Merge(score)
	if err := store.Save(); err != nil {
		slog.Warn("failed to save scores", "error", err)
	}
	record := store.Record()
	slog.Info("session over",
		"kills", score.Kills,
		"deaths", score.Deaths,
		"best_streak", score.BestStreak,
		"lifetime_kills", record.Kills,
		"sessions", record.Sessions,
	)
}

// pickSeed keeps a chosen seed and draws one when it is zero.
func pickSeed(seed uint64, draw func() uint64) uint64 {
	for seed == 0 {
		seed = draw()
	}
	return seed
}

func setupLogging(name string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return fmt.Errorf("invalid log level %q", name)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func loadLevel(c config.Level) (*level.Level, error) {
	var (
		world *level.World
		err   error
	)
	if c.Path == "" {
		world, err = level.Default()
	} else {
		world, err = level.Load(c.Path)
	}
	if err != nil {
		return nil, err
	}
	return world.Level(c.Index)
}
