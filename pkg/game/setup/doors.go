package setup

import (
	"cmp"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/build"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/state"
	gameworld "labyrinth/pkg/game/world"
)

// lockPlan is a room chosen for locking before any door exists
type lockPlan struct {
	roomName   string
	entryCells []*world.Cell
	keyCell    *world.Cell
}

// roomCandidate represents a room that could be locked
type roomCandidate struct {
	name    string
	entries *RoomEntryPoints
}

// NumLockedRooms determines the number of locked rooms based on level
func NumLockedRooms(level int) int {
	switch {
	case level >= 6:
		return 4
	case level >= 4:
		return 3
	case level >= 2:
		return 2
	default:
		return 1
	}
}

// PlaceLockedRooms locks up to n rooms of the level. Every locked room gets a
// single door shared by all its entry cells, and the door's key is left on a
// cell the player can reach while every door is locked.
//
// Doors and key rooms are created through one Keymaster pass; the pass fails
// if it ends with a door whose key was never placed or a key room with no key.
// It returns the number of rooms locked.
func PlaceLockedRooms(g *state.Game, n int, rng *rand.Rand, avoid *mapset.Set[*world.Cell], logger *slog.Logger) (int, error) {
	plans := planLockedRooms(g.Grid, n, rng, avoid)
	if len(plans) < n {
		logger.Info("fewer rooms lockable than requested", "requested", n, "locked", len(plans))
	}

	err := build.Use(func(km *build.Keymaster) error {
		doors, rooms := createDoorsAndKeyRooms(km, len(plans), rng)
		for i, plan := range plans {
			placeLock(g, plan, doors[i], rooms[i])
		}
		return nil
	}, build.WithLogger(logger))
	if err != nil {
		return 0, fmt.Errorf("placing locked rooms: %w", err)
	}
	return len(plans), nil
}

// planLockedRooms chooses the rooms to lock and where their keys go
func planLockedRooms(grid *world.Grid, n int, rng *rand.Rand, avoid *mapset.Set[*world.Cell]) []lockPlan {
	candidates := buildRoomCandidates(FindRoomEntryPoints(grid))
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	locked := mapset.New[*world.Cell]()
	var keyCells []*world.Cell
	var plans []lockPlan
	for _, c := range candidates {
		if len(plans) >= n {
			break
		}

		reachable, ok := lockable(grid.StartCell(), c, avoid, &locked, keyCells)
		if !ok {
			continue
		}
		keyCell := findRoomInReachable(reachable, avoid, rng)
		if keyCell == nil {
			continue
		}

		avoid.Put(keyCell)
		keyCells = append(keyCells, keyCell)
		for _, cell := range c.entries.EntryCells {
			avoid.Put(cell)
			locked.Put(cell)
		}
		plans = append(plans, lockPlan{
			roomName:   c.name,
			entryCells: c.entries.EntryCells,
			keyCell:    keyCell,
		})
	}
	return plans
}

// buildRoomCandidates lists rooms with 1-3 entry cells, sorted by name
func buildRoomCandidates(roomEntries map[string]*RoomEntryPoints) []roomCandidate {
	var candidates []roomCandidate
	for name, entries := range roomEntries {
		if n := len(entries.EntryCells); n >= 1 && n <= 3 {
			candidates = append(candidates, roomCandidate{name: name, entries: entries})
		}
	}
	slices.SortFunc(candidates, func(a, b roomCandidate) int {
		return cmp.Compare(a.name, b.name)
	})
	return candidates
}

// lockable reports whether locking the candidate's entry cells cuts the whole
// room off from start without hiding any key already placed, and returns what
// stays reachable once they are locked. The room the player starts in is never
// lockable, and every key stays reachable with all doors locked.
func lockable(start *world.Cell, c roomCandidate, avoid, locked *mapset.Set[*world.Cell], keyCells []*world.Cell) (*mapset.Set[*world.Cell], bool) {
	current := getReachableCells(start, locked)
	for _, cell := range c.entries.EntryCells {
		if avoid.Has(cell) || locked.Has(cell) || !current.Has(cell) {
			return nil, false
		}
	}

	if start.Name == c.name {
		return nil, false
	}

	withDoors := getReachableCells(start, union(locked, c.entries.EntryCells...))
	if reachesRoom(withDoors, c.name) {
		return nil, false
	}
	for _, k := range keyCells {
		if !withDoors.Has(k) {
			return nil, false
		}
	}
	return withDoors, true
}

// reachesRoom reports whether any cell of the named room is in reachable
func reachesRoom(reachable *mapset.Set[*world.Cell], name string) bool {
	found := false
	reachable.Each(func(c *world.Cell) {
		found = found || c.Name == name
	})
	return found
}

// createDoorsAndKeyRooms asks the keymaster for n doors and n key rooms in a
// random interleaving. Each kind is created in plan order, so the ith door's
// key ends up in the ith key room.
func createDoorsAndKeyRooms(km *build.Keymaster, n int, rng *rand.Rand) ([]*world.Door, []*world.Room) {
	doors := make([]*world.Door, 0, n)
	rooms := make([]*world.Room, 0, n)
	for len(doors) < n || len(rooms) < n {
		wantDoor := len(rooms) == n || (len(doors) < n && rng.Intn(2) == 0)
		if wantDoor {
			doors = append(doors, km.NewDoor())
		} else {
			rooms = append(rooms, km.NewKeyRoom())
		}
	}
	return doors, rooms
}

// placeLock puts a door on every entry cell of the planned room and binds the key room to the key cell
func placeLock(g *state.Game, plan lockPlan, door *world.Door, room *world.Room) {
	door.RoomName = plan.roomName
	for _, cell := range plan.entryCells {
		gameworld.GetGameData(cell).Door = door
	}

	room.Name = plan.keyCell.Name
	gameworld.GetGameData(plan.keyCell).KeyRoom = room

	g.Locks = append(g.Locks, state.Lock{
		Door:      door,
		DoorCells: plan.entryCells,
		KeyCell:   plan.keyCell,
	})

	g.AddHint(gotext.Get("The %s is in %s",
		renderer.StyledKeycard(door.KeycardName()),
		renderer.StyledCell(plan.keyCell.Name)))
	if len(plan.entryCells) == 1 {
		g.AddHint(gotext.Get("The %s blocks access to %s",
			renderer.StyledDoor(door.DoorName()),
			renderer.StyledCell(plan.roomName)))
	} else {
		g.AddHint(gotext.Get("%d doors block access to %s",
			len(plan.entryCells),
			renderer.StyledCell(plan.roomName)))
	}
}

// EnsureEveryRoomHasDoor places one unlocked door for each room that has no door yet
func EnsureEveryRoomHasDoor(roomEntries map[string]*RoomEntryPoints, avoid *mapset.Set[*world.Cell]) {
	names := make([]string, 0, len(roomEntries))
	for name := range roomEntries {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		entries := roomEntries[name]
		if slices.ContainsFunc(entries.EntryCells, gameworld.HasDoor) {
			continue
		}
		for _, cell := range entries.EntryCells {
			if avoid.Has(cell) || gameworld.HasDoor(cell) {
				continue
			}
			door := world.NewDoor()
			door.RoomName = name
			gameworld.GetGameData(cell).Door = door
			avoid.Put(cell)
			break
		}
	}
}
