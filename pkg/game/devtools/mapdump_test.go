package devtools

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/build"
	"labyrinth/pkg/game/state"
	gameworld "labyrinth/pkg/game/world"
)

func makeGame(t *testing.T) *state.Game {
	t.Helper()
	g := state.NewGame()
	g.LevelSeed = 7
	grid := world.NewGrid(3, 5)
	for col := 1; col <= 3; col++ {
		grid.MarkAsRoom(1, col)
	}
	grid.BuildAllCellConnections()
	grid.SetStartCellAt(1, 1)
	grid.SetExitCellAt(1, 3)
	g.Grid = grid
	g.CurrentCell = grid.StartCell()

	err := build.Use(func(km *build.Keymaster) error {
		door := km.NewDoor()
		door.RoomName = "Vault"
		room := km.NewKeyRoom()
		gameworld.GetGameData(grid.GetCell(1, 2)).Door = door
		gameworld.GetGameData(grid.GetCell(1, 1)).KeyRoom = room
		g.Locks = append(g.Locks, state.Lock{
			Door:      door,
			DoorCells: []*world.Cell{grid.GetCell(1, 2)},
			KeyCell:   grid.GetCell(1, 1),
		})
		return nil
	})
	if err != nil {
		t.Fatalf("build.Use() error = %v", err)
	}
	g.AddHint("The Vault Keycard is in 1:1")
	return g
}

func TestDumpMap(t *testing.T) {
	g := makeGame(t)

	var b strings.Builder
	if err := DumpMap(&b, g); err != nil {
		t.Fatalf("DumpMap() error = %v", err)
	}
	out := b.String()

	for _, want := range []string{
		"level: 1\n",
		"level_seed: 7\n",
		"start_cell: 1,1\n",
		"exit_cell: 1,3\n",
		"#####\n#@DE#\n#####\n",
		`room_name: "Vault"`,
		"door_cell: 1,2\n",
		`key_cell: 1,1 name: "1:1" key_present: true`,
		"locked: true opened: false",
		"The Vault Keycard is in 1:1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DumpMap() output missing %q\n%s", want, out)
		}
	}
}

func TestDumpMap_NoGrid(t *testing.T) {
	var b strings.Builder
	err := DumpMap(&b, state.NewGame())
	testutil.AssertErrorContains(t, err, "no grid")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestDumpMap_WriteError(t *testing.T) {
	err := DumpMap(failingWriter{}, makeGame(t))
	testutil.AssertErrorContains(t, err, "disk full")
}

func TestDumpMapToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")

	abs, err := DumpMapToFile(path, makeGame(t))
	if err != nil {
		t.Fatalf("DumpMapToFile() error = %v", err)
	}
	testutil.AssertEqual(t, "path", abs, path)

	data, err := os.ReadFile(abs)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "--- Locks") {
		t.Errorf("dump file missing locks section:\n%s", data)
	}
}
