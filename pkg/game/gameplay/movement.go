// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/state"
	gameworld "labyrinth/pkg/game/world"
)

// CanEnter checks if the player can walk into a cell as things stand
func CanEnter(g *state.Game, c *world.Cell) bool {
	if c == nil || !c.Room {
		return false
	}
	if door := gameworld.LookupGameData(c).Door; door != nil {
		return !door.IsLocked()
	}
	return true
}

// TryOpenDoor opens the door on a cell, spending one of the player's keys if
// it is locked. Returns true if the cell is passable afterwards.
func TryOpenDoor(g *state.Game, c *world.Cell) bool {
	door := gameworld.LookupGameData(c).Door
	if door == nil {
		return CanEnter(g, c)
	}
	return door.Open(g.Player)
}

// PickUp moves everything lying on a cell into the player's inventory.
// Returns the number of items picked up.
func PickUp(g *state.Game, c *world.Cell) int {
	room := gameworld.LookupGameData(c).KeyRoom
	if room == nil {
		return 0
	}
	n := 0
	for room.Pass().HasItems() {
		if err := g.Player.MoveFirstFrom(room.Pass()); err != nil {
			break
		}
		n++
	}
	return n
}

// MoveTo moves the player into c, opening its door if needed and picking up
// whatever lies there. Returns false if the player could not enter.
func MoveTo(g *state.Game, c *world.Cell) bool {
	if !CanEnter(g, c) && !TryOpenDoor(g, c) {
		return false
	}
	if door := gameworld.LookupGameData(c).Door; door != nil {
		door.Open(nil)
	}
	g.CurrentCell = c
	c.Visited = true
	PickUp(g, c)
	return true
}
