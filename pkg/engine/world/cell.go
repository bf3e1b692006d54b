// Package world provides the tile grid and the item-ownership primitives
// (inventories, keys, doors, rooms) that level generation builds on.
package world

// Cell is a single tile of the grid
type Cell struct {
	Name        string
	Description string

	Row int
	Col int

	North *Cell
	East  *Cell
	South *Cell
	West  *Cell

	Visited bool

	Room     bool // walkable room or corridor tile
	ExitCell bool

	// GameData holds game-specific extensions, see pkg/game/world.
	GameData any
}

// NewCell creates a new cell at the given position
func NewCell(row, col int, name, description string) *Cell {
	return &Cell{
		Name:        name,
		Description: description,
		Row:         row,
		Col:         col,
	}
}

// GetNeighbor returns the neighboring cell in the given direction
func (c *Cell) GetNeighbor(dir Direction) *Cell {
	if c == nil {
		return nil
	}
	switch dir {
	case North:
		return c.North
	case East:
		return c.East
	case South:
		return c.South
	case West:
		return c.West
	default:
		return nil
	}
}

// SetNeighbor sets the neighboring cell in the given direction
func (c *Cell) SetNeighbor(dir Direction, neighbor *Cell) {
	if c == nil {
		return
	}
	switch dir {
	case North:
		c.North = neighbor
	case East:
		c.East = neighbor
	case South:
		c.South = neighbor
	case West:
		c.West = neighbor
	}
}

// WalkableNeighbors returns the adjacent cells that are rooms or corridors
func (c *Cell) WalkableNeighbors() []*Cell {
	var neighbors []*Cell
	for _, dir := range AllDirections() {
		if n := c.GetNeighbor(dir); n != nil && n.Room {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// IsCorridor returns true for walkable cells that do not belong to a named room
func (c *Cell) IsCorridor() bool {
	return c.Room && c.Name == CorridorName
}
