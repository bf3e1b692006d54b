package world

import (
	"testing"
)

func TestNewGrid_CellNames(t *testing.T) {
	g := NewGrid(2, 3)
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", g.Rows(), g.Cols())
	}
	cell := g.GetCell(1, 2)
	if cell == nil || cell.Name != "1:2" {
		t.Errorf("GetCell(1, 2) = %v, want cell named 1:2", cell)
	}
	if cell.Room {
		t.Error("new cell Room = true, want false")
	}
}

func TestGrid_GetCell_OutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if c := g.GetCell(pos[0], pos[1]); c != nil {
			t.Errorf("GetCell(%d, %d) = %v, want nil", pos[0], pos[1], c)
		}
	}
}

func TestGrid_BuildAllCellConnections(t *testing.T) {
	g := NewGrid(2, 2)
	g.BuildAllCellConnections()

	topLeft := g.GetCell(0, 0)
	if topLeft.East != g.GetCell(0, 1) {
		t.Error("(0,0).East is not (0,1)")
	}
	if topLeft.South != g.GetCell(1, 0) {
		t.Error("(0,0).South is not (1,0)")
	}
	if topLeft.North != nil || topLeft.West != nil {
		t.Error("(0,0) has neighbors outside the grid")
	}
	if g.GetCell(1, 1).North.South != g.GetCell(1, 1) {
		t.Error("connections are not symmetric")
	}
}

func TestCell_WalkableNeighbors(t *testing.T) {
	g := NewGrid(1, 3)
	g.MarkAsRoomWithName(0, 0, "A", "desc")
	g.MarkAsRoomWithName(0, 1, CorridorName, "desc")
	g.BuildAllCellConnections()

	mid := g.GetCell(0, 1)
	if !mid.IsCorridor() {
		t.Error("IsCorridor() = false, want true")
	}
	got := mid.WalkableNeighbors()
	if len(got) != 1 || got[0].Name != "A" {
		t.Errorf("WalkableNeighbors() = %v, want [A]", got)
	}
}

func TestGrid_Validate(t *testing.T) {
	g := NewGrid(3, 3)
	if err := g.Validate(); err == nil {
		t.Error("Validate() on grid without start = nil, want error")
	}

	g.SetStartCellAt(0, 0)
	g.SetExitCellAt(2, 2)
	if err := g.Validate(); err == nil {
		t.Error("Validate() with wall start = nil, want error")
	}

	g.MarkAsRoom(0, 0)
	g.MarkAsRoom(2, 2)
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestGrid_SetExitCellAt_MovesFlag(t *testing.T) {
	g := NewGrid(2, 2)
	g.SetExitCellAt(0, 0)
	g.SetExitCellAt(1, 1)
	if g.GetCell(0, 0).ExitCell {
		t.Error("old exit cell still flagged")
	}
	if !g.ExitCell().ExitCell || g.ExitCell() != g.GetCell(1, 1) {
		t.Error("exit cell not moved to (1,1)")
	}
}

func TestDirection_Opposite(t *testing.T) {
	for _, dir := range AllDirections() {
		if dir.Opposite().Opposite() != dir {
			t.Errorf("%v.Opposite().Opposite() = %v", dir, dir.Opposite().Opposite())
		}
		dr, dc := dir.Delta()
		or, oc := dir.Opposite().Delta()
		if dr != -or || dc != -oc {
			t.Errorf("%v delta (%d,%d) not opposite of (%d,%d)", dir, dr, dc, or, oc)
		}
	}
}
