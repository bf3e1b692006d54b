// Package world attaches labyrinth entities (doors, key rooms) to engine cells.
package world

import (
	"labyrinth/pkg/engine/world"
)

// GameCellData holds the entities placed on a cell.
// It is stored in the engine Cell's GameData field.
type GameCellData struct {
	Door    *world.Door // door on this entry cell (if any)
	KeyRoom *world.Room // items lying on this cell (if any)
}

// GetGameData returns the game data of a cell, creating it on first use
func GetGameData(cell *world.Cell) *GameCellData {
	if cell.GameData == nil {
		cell.GameData = &GameCellData{}
	}
	return cell.GameData.(*GameCellData)
}

// LookupGameData returns the game data of a cell without creating it.
// Cells nothing was placed on give an empty value.
func LookupGameData(cell *world.Cell) GameCellData {
	if cell == nil {
		return GameCellData{}
	}
	if data, ok := cell.GameData.(*GameCellData); ok && data != nil {
		return *data
	}
	return GameCellData{}
}

// HasDoor returns true if this cell contains a door
func HasDoor(cell *world.Cell) bool {
	return LookupGameData(cell).Door != nil
}

// HasLockedDoor returns true if this cell has a locked door
func HasLockedDoor(cell *world.Cell) bool {
	d := LookupGameData(cell).Door
	return d != nil && d.IsLocked()
}

// HasItems returns true if something lies on this cell
func HasItems(cell *world.Cell) bool {
	r := LookupGameData(cell).KeyRoom
	return r != nil && r.Pass().HasItems()
}

// HasKey returns true if a key lies on this cell
func HasKey(cell *world.Cell) bool {
	r := LookupGameData(cell).KeyRoom
	if r == nil {
		return false
	}
	for k := range r.Pass().ItemKinds() {
		if k == world.KindKey {
			return true
		}
	}
	return false
}
