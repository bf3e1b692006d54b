// Package setup places locked rooms, their doors and their keys on a generated level.
package setup

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
)

// RoomEntryPoints holds the corridor cells leading into a room
type RoomEntryPoints struct {
	RoomName   string
	EntryCells []*world.Cell
}

// FindRoomEntryPoints finds, for every named room, the corridor cells that touch it.
// Entry cells are listed in row-major order.
func FindRoomEntryPoints(grid *world.Grid) map[string]*RoomEntryPoints {
	entries := make(map[string]*RoomEntryPoints)

	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if !cell.IsCorridor() {
			return
		}
		seen := mapset.New[string]()
		for _, n := range cell.WalkableNeighbors() {
			if n.IsCorridor() || seen.Has(n.Name) {
				continue
			}
			seen.Put(n.Name)

			e := entries[n.Name]
			if e == nil {
				e = &RoomEntryPoints{RoomName: n.Name}
				entries[n.Name] = e
			}
			e.EntryCells = append(e.EntryCells, cell)
		}
	})

	return entries
}

// getReachableCells finds all walkable cells reachable from start without crossing a blocked cell
func getReachableCells(start *world.Cell, blocked *mapset.Set[*world.Cell]) *mapset.Set[*world.Cell] {
	reachable := mapset.New[*world.Cell]()
	if start == nil || !start.Room {
		return &reachable
	}

	queue := []*world.Cell{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if reachable.Has(current) || (blocked != nil && blocked.Has(current)) {
			continue
		}
		reachable.Put(current)

		for _, n := range current.WalkableNeighbors() {
			if !reachable.Has(n) {
				queue = append(queue, n)
			}
		}
	}

	return &reachable
}

// sortedCells returns the cells of a set in row-major order
func sortedCells(set *mapset.Set[*world.Cell]) []*world.Cell {
	var cells []*world.Cell
	set.Each(func(c *world.Cell) {
		cells = append(cells, c)
	})
	slices.SortFunc(cells, func(a, b *world.Cell) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Col, b.Col))
	})
	return cells
}

// findRoomInReachable picks a random room cell within the reachable set,
// falling back to corridor cells when every room cell is taken
func findRoomInReachable(reachable *mapset.Set[*world.Cell], avoid *mapset.Set[*world.Cell], rng *rand.Rand) *world.Cell {
	var rooms, corridors []*world.Cell
	for _, cell := range sortedCells(reachable) {
		switch {
		case avoid.Has(cell):
		case cell.IsCorridor():
			corridors = append(corridors, cell)
		default:
			rooms = append(rooms, cell)
		}
	}

	candidates := rooms
	if len(candidates) == 0 {
		candidates = corridors
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[rng.Intn(len(candidates))]
}

// union returns a new set holding the cells of set plus extra
func union(set *mapset.Set[*world.Cell], extra ...*world.Cell) *mapset.Set[*world.Cell] {
	out := mapset.New[*world.Cell]()
	set.Each(func(c *world.Cell) { out.Put(c) })
	for _, c := range extra {
		out.Put(c)
	}
	return &out
}
