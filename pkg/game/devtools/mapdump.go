// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/state"
	gameworld "labyrinth/pkg/game/world"
)

// DumpMap writes a debug dump of the level: metadata, legend, the map and
// every door with where its key was left. Output carries no ANSI styling.
func DumpMap(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return fmt.Errorf("no grid")
	}

	ew := &errWriter{w: w}
	playerRow, playerCol := -1, -1
	if g.CurrentCell != nil {
		playerRow, playerCol = g.CurrentCell.Row, g.CurrentCell.Col
	}
	startRow, startCol := cellPos(g.Grid.StartCell())
	exitRow, exitCol := cellPos(g.Grid.ExitCell())

	// --- Metadata ---
	ew.println("=== MAP DUMP ===")
	ew.println("")
	ew.println("--- Metadata ---")
	ew.printf("level: %d\n", g.Level)
	ew.printf("level_seed: %d\n", g.LevelSeed)
	ew.printf("grid_rows: %d\n", g.Grid.Rows())
	ew.printf("grid_cols: %d\n", g.Grid.Cols())
	ew.printf("coordinate_system: row,col (0-based)\n")
	ew.printf("player_cell: %d,%d\n", playerRow, playerCol)
	ew.printf("start_cell: %d,%d\n", startRow, startCol)
	ew.printf("exit_cell: %d,%d\n", exitRow, exitCol)
	ew.printf("keys_carried: %d\n", g.Player.Len())
	ew.println("")

	// --- Legend ---
	ew.println("--- Legend ---")
	ew.println("# = wall  . = room floor  , = corridor  D = locked door  + = closed door  / = open door  k = key  i = other items  @ = player  E = exit")
	ew.println("")

	// --- Map ---
	ew.println("--- Map ---")
	ew.print(renderer.Plain(renderer.RenderMap(g, 0)))
	ew.println("")

	// --- Locks ---
	ew.println("--- Locks (door cells and key cell) ---")
	for i, lock := range g.Locks {
		ew.printf("  lock: %d room_name: %q door_id: %s locked: %v\n", i, lock.Door.RoomName, lock.Door.ID, lock.Door.IsLocked())
		for _, c := range lock.DoorCells {
			ew.printf("    door_cell: %d,%d\n", c.Row, c.Col)
		}
		ew.printf("    key_cell: %d,%d name: %q key_present: %v\n", lock.KeyCell.Row, lock.KeyCell.Col, lock.KeyCell.Name, gameworld.HasKey(lock.KeyCell))
	}
	ew.println("")

	// --- Doors ---
	ew.println("--- Doors (all) ---")
	g.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		d := gameworld.LookupGameData(cell).Door
		if d == nil {
			return
		}
		ew.printf("  row: %d col: %d room_name: %q locked: %v opened: %v\n", row, col, d.RoomName, d.IsLocked(), d.IsOpened())
	})
	ew.println("")

	// --- Hints ---
	ew.println("--- Hints ---")
	for _, h := range g.Hints {
		ew.printf("  %s\n", renderer.Plain(h))
	}

	return ew.err
}

// DumpMapToFile writes DumpMap output to path, returning the absolute path written
func DumpMapToFile(path string, g *state.Game) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}

	if err := DumpMap(f, g); err != nil {
		f.Close()
		return "", err
	}
	return absPath, f.Close()
}

func cellPos(c *world.Cell) (int, int) {
	if c == nil {
		return -1, -1
	}
	return c.Row, c.Col
}

// errWriter keeps the first write error and skips every write after it
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...any) {
	if ew.err == nil {
		_, ew.err = fmt.Fprintf(ew.w, format, a...)
	}
}

func (ew *errWriter) print(s string) {
	if ew.err == nil {
		_, ew.err = io.WriteString(ew.w, s)
	}
}

func (ew *errWriter) println(s string) {
	ew.print(s + "\n")
}
