package gameplay

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/state"
	gameworld "labyrinth/pkg/game/world"
)

var (
	// ErrExitUnreachable is returned when the walkthrough cannot get to the exit
	ErrExitUnreachable = errors.New("exit unreachable")
	// ErrDoorsLeftLocked is returned when the walkthrough ends with locked doors
	ErrDoorsLeftLocked = errors.New("doors left locked")
)

// Report summarises a walkthrough
type Report struct {
	CellsVisited  int
	KeysCollected int
	DoorsOpened   int
	ReachedExit   bool
}

// Walkthrough plays the level: starting on the start cell it explores every
// cell it can reach, picks up every key it finds and spends them on the
// locked doors it meets. Doors it cannot open yet are retried once more keys
// are held. The game is left in the state the player would leave it.
//
// It fails if the exit was never reached or a locked door remains.
func Walkthrough(g *state.Game) (Report, error) {
	var r Report
	start := g.Grid.StartCell()
	if start == nil {
		return r, fmt.Errorf("walkthrough: %w: no start cell", ErrExitUnreachable)
	}

	visited := mapset.New[*world.Cell]()
	frontier := []*world.Cell{start}
	var waiting []*world.Cell

	for {
		for len(frontier) > 0 {
			cell := frontier[0]
			frontier = frontier[1:]
			if visited.Has(cell) {
				continue
			}

			wasLocked := gameworld.HasLockedDoor(cell)
			keysBefore := g.Player.Len()
			if !MoveTo(g, cell) {
				waiting = append(waiting, cell)
				continue
			}
			if wasLocked {
				r.DoorsOpened++
			}
			r.KeysCollected += g.Player.Len() - keysBefore
			if wasLocked {
				r.KeysCollected++
			}

			visited.Put(cell)
			if cell.ExitCell {
				r.ReachedExit = true
			}
			for _, n := range cell.WalkableNeighbors() {
				if !visited.Has(n) {
					frontier = append(frontier, n)
				}
			}
		}

		if len(waiting) == 0 || !g.Player.HasItems() {
			break
		}
		frontier, waiting = waiting, nil
	}
	r.CellsVisited = visited.Size()

	if !r.ReachedExit {
		return r, fmt.Errorf("walkthrough: %w", ErrExitUnreachable)
	}
	if n := countLockedDoors(g); n > 0 {
		return r, fmt.Errorf("walkthrough: %w: %d", ErrDoorsLeftLocked, n)
	}
	return r, nil
}

func countLockedDoors(g *state.Game) int {
	n := 0
	for _, lock := range g.Locks {
		if lock.Door.IsLocked() {
			n++
		}
	}
	return n
}
