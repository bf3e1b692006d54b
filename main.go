package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"labyrinth/pkg/engine/terminal"
	"labyrinth/pkg/game/devtools"
	"labyrinth/pkg/game/gameplay"
	"labyrinth/pkg/game/generator"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/setup"
	"labyrinth/pkg/game/state"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	tty := terminal.IsTerminal(os.Stdout)
	width := 0
	if tty {
		width = terminal.GetWidth(os.Stdout)
	}

	if err := run(cfg, os.Stdout, os.Stderr, tty, width); err != nil {
		slog.Error("labyrinth failed", "error", err)
		os.Exit(1)
	}
}

// run generates, sets up and walks cfg.Levels consecutive levels, printing
// each one. width cuts the map when positive.
func run(cfg *Config, stdout, stderr io.Writer, tty bool, width int) error {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)

	gotext.Configure(cfg.LocalesDir, cfg.Lang, "default")
	renderer.SetColor(cfg.ColorEnabled(tty))

	g := state.NewGame()
	g.Level = cfg.Level
	seed := cfg.FirstSeed(time.Now())

	for i := range cfg.Levels {
		if i > 0 {
			leftover := g.AdvanceLevel()
			logger.Debug("level advanced", "level", g.Level, "leftover_items", leftover.Len())
			seed++
		}
		if err := playLevel(g, seed, cfg, logger); err != nil {
			return err
		}
		printLevel(stdout, g, width)

		if cfg.DumpPath != "" && i == cfg.Levels-1 {
			path, err := devtools.DumpMapToFile(cfg.DumpPath, g)
			if err != nil {
				return fmt.Errorf("dumping map: %w", err)
			}
			logger.Info("map dumped", "path", path)
		}

		// The walkthrough opens doors and moves keys, so it runs last.
		report, err := gameplay.Walkthrough(g)
		if err != nil {
			return fmt.Errorf("level %d (seed %d): %w", g.Level, seed, err)
		}
		fmt.Fprintln(stdout, gotext.Get("Walkthrough: %d cells visited, %d keys collected, %d doors opened, exit reached",
			report.CellsVisited, report.KeysCollected, report.DoorsOpened))
		fmt.Fprintln(stdout)
	}
	return nil
}

// playLevel generates level g.Level from seed and places its locked rooms
func playLevel(g *state.Game, seed int64, cfg *Config, logger *slog.Logger) error {
	rng := rand.New(rand.NewSource(seed))
	grid, err := generator.DefaultGenerator.Generate(g.Level, rng)
	if err != nil {
		return fmt.Errorf("generating level %d: %w", g.Level, err)
	}
	g.Grid = grid
	g.LevelSeed = seed

	if err := setup.SetupLevel(g, rng, setup.Options{LockedRooms: cfg.LockedRooms, Logger: logger}); err != nil {
		return fmt.Errorf("setting up level %d: %w", g.Level, err)
	}
	logger.Info("level ready",
		"level", g.Level,
		"seed", seed,
		"generator", generator.DefaultGenerator.Name(),
		"locked_rooms", len(g.Locks),
	)
	return nil
}

func printLevel(w io.Writer, g *state.Game, width int) {
	fmt.Fprintln(w, renderer.ColorExit.Sprint(gotext.Get("Level %d (seed %d)", g.Level, g.LevelSeed)))
	fmt.Fprintln(w)
	fmt.Fprint(w, renderer.RenderMap(g, width))
	fmt.Fprintln(w)
	for _, l := range renderer.Legend() {
		fmt.Fprintf(w, "  %s\n", l)
	}
	fmt.Fprintln(w)
	for _, h := range g.Hints {
		fmt.Fprintf(w, "- %s\n", h)
	}
	fmt.Fprintln(w)
}
