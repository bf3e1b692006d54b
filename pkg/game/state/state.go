// Package state holds the mutable state of a labyrinth game.
package state

import (
	"labyrinth/pkg/engine/world"
)

// Lock records one locked room: its door, the cells the door sits on, and
// the cell where the door's key was placed.
type Lock struct {
	Door      *world.Door
	DoorCells []*world.Cell
	KeyCell   *world.Cell
}

// Game represents the game state
type Game struct {
	CurrentCell *world.Cell

	Grid *world.Grid

	Hints []string

	Locks []Lock

	// Player is what the player carries
	Player *world.Inventory

	Level     int   // Current level number
	LevelSeed int64 // Seed the current level was generated from
}

// NewGame creates a new game instance
func NewGame() *Game {
	return &Game{
		Player: world.NewInventory(),
		Level:  1,
	}
}

// AddHint adds a hint to the game
func (g *Game) AddHint(hint string) {
	g.Hints = append(g.Hints, hint)
}

// AdvanceLevel moves to the next level, clearing level-specific state.
// It returns whatever the player was still carrying; the player starts empty handed.
func (g *Game) AdvanceLevel() *world.Inventory {
	leftover := world.NewInventory()
	g.Player.SwapItems(leftover)

	g.Level++
	g.Grid = nil
	g.CurrentCell = nil
	g.Hints = nil
	g.Locks = nil
	return leftover
}
