// Package generator tests BSP grid generation: named rooms, corridors,
// connectivity and start/exit placement.
package generator

import (
	"math/rand"
	"testing"

	"labyrinth/pkg/engine/world"
)

func generate(t *testing.T, level int, seed int64) *world.Grid {
	t.Helper()
	grid, err := DefaultGenerator.Generate(level, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Generate(%d): unexpected error: %v", level, err)
	}
	return grid
}

// countReachableRoomCells returns the number of walkable cells reachable from start
func countReachableRoomCells(start *world.Cell) int {
	visited := map[*world.Cell]bool{start: true}
	queue := []*world.Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range c.WalkableNeighbors() {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited)
}

func TestBSPGenerate_HasNamedRooms(t *testing.T) {
	grid := generate(t, 1, 1)
	named := 0
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if !cell.Room {
			return
		}
		if cell.Description == "" {
			t.Errorf("walkable cell at (%d,%d) has empty Description", row, col)
		}
		if !cell.IsCorridor() {
			named++
		}
	})
	if named == 0 {
		t.Error("no named room cells")
	}
}

func TestBSPGenerate_HasCorridors(t *testing.T) {
	grid := generate(t, 2, 2)
	corridors := 0
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.IsCorridor() {
			corridors++
		}
	})
	if corridors < 1 {
		t.Errorf("expected at least one Corridor cell, got %d", corridors)
	}
}

func TestBSPGenerate_AllWalkableCellsConnected(t *testing.T) {
	for level := 1; level <= 6; level++ {
		grid := generate(t, level, int64(level)*7)
		total := 0
		grid.ForEachCell(func(row, col int, cell *world.Cell) {
			if cell.Room {
				total++
			}
		})
		if got := countReachableRoomCells(grid.StartCell()); got != total {
			t.Errorf("level %d: reachable = %d, want all %d walkable cells", level, got, total)
		}
	}
}

func TestBSPGenerate_PerimeterIsWall(t *testing.T) {
	grid := generate(t, 3, 3)
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		onEdge := row == 0 || col == 0 || row == grid.Rows()-1 || col == grid.Cols()-1
		if onEdge && cell.Room {
			t.Errorf("perimeter cell (%d,%d) is walkable", row, col)
		}
	})
}

func TestBSPGenerate_SizeGrowsAndCaps(t *testing.T) {
	small := generate(t, 1, 4)
	big := generate(t, 20, 4)
	if small.Rows() >= big.Rows() || small.Cols() >= big.Cols() {
		t.Errorf("level 1 is %dx%d, level 20 is %dx%d, want growth", small.Rows(), small.Cols(), big.Rows(), big.Cols())
	}
	if big.Rows() > maxRows || big.Cols() > maxCols {
		t.Errorf("level 20 is %dx%d, want at most %dx%d", big.Rows(), big.Cols(), maxRows, maxCols)
	}
}

func TestBSPGenerate_StartAndExit(t *testing.T) {
	grid := generate(t, 2, 5)
	if err := grid.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if grid.StartCell() == grid.ExitCell() {
		t.Error("exit placed on the start cell")
	}
	if grid.StartCell().IsCorridor() {
		t.Error("start cell is a corridor")
	}
}

func TestBSPGenerate_Deterministic(t *testing.T) {
	a := generate(t, 3, 99)
	b := generate(t, 3, 99)
	a.ForEachCell(func(row, col int, cell *world.Cell) {
		other := b.GetCell(row, col)
		if cell.Room != other.Room || cell.Name != other.Name {
			t.Fatalf("cell (%d,%d) differs between runs with the same seed", row, col)
		}
	})
}

func TestBSPGenerate_ZeroLevelTreatedAsOne(t *testing.T) {
	a := generate(t, 0, 8)
	b := generate(t, 1, 8)
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Errorf("level 0 is %dx%d, want level 1 size %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
}
