package world

import (
	"errors"
	"fmt"
)

// CorridorName is the name shared by every corridor cell
const CorridorName = "Corridor"

// Grid is the level map
type Grid struct {
	cells [][]*Cell
	rows  int
	cols  int

	startCell *Cell
	exitCell  *Cell
}

// NewGrid creates a grid of solid wall cells named "row:col"
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic("grid dimensions must be positive")
	}

	g := &Grid{
		cells: make([][]*Cell, rows),
		rows:  rows,
		cols:  cols,
	}
	for row := range rows {
		g.cells[row] = make([]*Cell, cols)
		for col := range cols {
			g.cells[row][col] = NewCell(row, col, fmt.Sprintf("%d:%d", row, col), "ROOM_WALL")
		}
	}
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// StartCell returns the starting cell
func (g *Grid) StartCell() *Cell {
	return g.startCell
}

// ExitCell returns the exit cell
func (g *Grid) ExitCell() *Cell {
	return g.exitCell
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if g == nil || !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// GetCellRelative returns the cell adjacent to c in the given direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	dr, dc := dir.Delta()
	return g.GetCell(c.Row+dr, c.Col+dc)
}

// CenterPosition returns the row and column of the grid center
func (g *Grid) CenterPosition() (int, int) {
	return g.rows / 2, g.cols / 2
}

// SetStartCellAt sets the starting cell by position. Returns false if out of bounds.
func (g *Grid) SetStartCellAt(row, col int) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	g.startCell = cell
	return true
}

// SetExitCellAt sets the exit cell by position. Returns false if out of bounds.
func (g *Grid) SetExitCellAt(row, col int) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	if g.exitCell != nil {
		g.exitCell.ExitCell = false
	}
	g.exitCell = cell
	cell.ExitCell = true
	return true
}

// MarkAsRoom marks the cell at the given position as walkable. Returns false if out of bounds.
func (g *Grid) MarkAsRoom(row, col int) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	cell.Room = true
	return true
}

// MarkAsRoomWithName marks the cell as walkable and names it after its room
func (g *Grid) MarkAsRoomWithName(row, col int, name, description string) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	cell.Room = true
	cell.Name = name
	cell.Description = description
	return true
}

// BuildAllCellConnections links every cell to its neighbors
func (g *Grid) BuildAllCellConnections() {
	g.ForEachCell(func(row, col int, cell *Cell) {
		for _, dir := range AllDirections() {
			cell.SetNeighbor(dir, g.GetCellRelative(cell, dir))
		}
	})
}

// ForEachCell calls fn for every cell, row by row
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	if g == nil {
		return
	}
	for row := range g.rows {
		for col := range g.cols {
			fn(row, col, g.cells[row][col])
		}
	}
}

// Validate checks that the grid has walkable start and exit cells
func (g *Grid) Validate() error {
	switch {
	case g.startCell == nil:
		return errors.New("grid has no start cell")
	case g.exitCell == nil:
		return errors.New("grid has no exit cell")
	case !g.startCell.Room:
		return errors.New("start cell is not walkable")
	case !g.exitCell.Room:
		return errors.New("exit cell is not walkable")
	}
	return nil
}
