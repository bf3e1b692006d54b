package setup

import (
	"log/slog"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/state"
)

// Options tunes level setup
type Options struct {
	// LockedRooms is how many rooms to lock; negative picks a number from the level
	LockedRooms int
	Logger      *slog.Logger
}

// SetupLevel places locked rooms with their keys, gives every other room a
// plain door, and puts the player on the start cell.
// g.Grid must already be generated.
func SetupLevel(g *state.Game, rng *rand.Rand, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	n := opts.LockedRooms
	if n < 0 {
		n = NumLockedRooms(g.Level)
	}

	// Cells that must stay free of doors and keys
	avoid := mapset.New[*world.Cell]()
	avoid.Put(g.Grid.StartCell())
	avoid.Put(g.Grid.ExitCell())

	locked, err := PlaceLockedRooms(g, n, rng, &avoid, logger)
	if err != nil {
		return err
	}

	EnsureEveryRoomHasDoor(FindRoomEntryPoints(g.Grid), &avoid)

	g.CurrentCell = g.Grid.StartCell()
	logger.Debug("level set up", "level", g.Level, "locked_rooms", locked, "hints", len(g.Hints))
	return nil
}
