package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/pixil98/go-errors"
)

// Color modes accepted by -color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var colorModes = []string{ColorAuto, ColorAlways, ColorNever}

// Config holds the command line settings
type Config struct {
	Level       int
	Levels      int
	Seed        int64
	LockedRooms int
	DumpPath    string
	Lang        string
	LocalesDir  string
	Color       string
	Verbose     bool
}

// parseFlags reads a Config from command line arguments
func parseFlags(args []string, output io.Writer) (*Config, error) {
	c := &Config{}
	fs := flag.NewFlagSet("labyrinth", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.IntVar(&c.Level, "level", 1, "starting level number")
	fs.IntVar(&c.Levels, "levels", 1, "number of consecutive levels to generate")
	fs.Int64Var(&c.Seed, "seed", 0, "seed for the first level (0 picks one from the clock)")
	fs.IntVar(&c.LockedRooms, "locked", -1, "locked rooms per level (-1 picks by level)")
	fs.StringVar(&c.DumpPath, "dump", "", "write a debug map dump of the last level to this file")
	fs.StringVar(&c.Lang, "lang", "en_GB", "message catalog language")
	fs.StringVar(&c.LocalesDir, "locales", "locales", "directory holding message catalogs")
	fs.StringVar(&c.Color, "color", ColorAuto, "colored output: auto, always or never")
	fs.BoolVar(&c.Verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return c, nil
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.Level < 1 {
		el.Add(fmt.Errorf("level must be at least 1"))
	}
	if c.Levels < 1 {
		el.Add(fmt.Errorf("levels must be at least 1"))
	}
	if c.LockedRooms < -1 {
		el.Add(fmt.Errorf("locked must be -1 or more"))
	}
	if c.Lang == "" {
		el.Add(fmt.Errorf("lang is required"))
	}
	if !slices.Contains(colorModes, c.Color) {
		el.Add(fmt.Errorf("color must be one of %v, got %q", colorModes, c.Color))
	}

	return el.Err()
}

// ColorEnabled decides whether output gets ANSI styling
func (c *Config) ColorEnabled(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

// LogLevel returns the slog level for the verbosity setting
func (c *Config) LogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// FirstSeed returns the seed of the first level
func (c *Config) FirstSeed(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}
