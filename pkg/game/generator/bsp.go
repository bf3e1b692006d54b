package generator

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
)

// BSPGenerator generates maps using Binary Space Partitioning
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// partition is a node of the BSP tree; leaves carry a room
type partition struct {
	x, y, width, height int
	left, right         *partition
	room                *chamber
}

type chamber struct {
	x, y, width, height int
	name                string
	base                string
}

func (c *chamber) center() (row, col int) {
	return c.y + c.height/2, c.x + c.width/2
}

var chamberNames = []string{
	"Crypt", "Vault", "Armory", "Chapel", "Library",
	"Ossuary", "Cistern", "Gallery", "Kennel", "Forge",
	"Larder", "Sanctum", "Oubliette", "Treasury", "Scriptorium",
}

var chamberAdjectives = []string{
	"Quiet", "Flooded", "Collapsed", "Forgotten", "Gilded",
	"Mossy", "Sunken", "Echoing", "Frozen", "Smoky",
}

// BSP tuning
const (
	minLeafSize = 8 // smallest partition that may hold a room
	minRoomSize = 3
	roomMargin  = 2 // room is at least this much smaller than its partition
	maxRows     = 60
	maxCols     = 100
)

// Generate creates a new grid for the given level.
// Levels grow with the level number: level 1 is 16x32, capped at maxRows x maxCols.
func (g *BSPGenerator) Generate(level int, rng *rand.Rand) (*world.Grid, error) {
	if level < 1 {
		level = 1
	}
	rows := min(12+level*4, maxRows)
	cols := min(26+level*6, maxCols)
	grid := world.NewGrid(rows, cols)

	// One cell of solid wall all round.
	root := &partition{x: 1, y: 1, width: cols - 2, height: rows - 2}
	leafSize := max(minLeafSize-level/3, 6)
	split(root, leafSize, rng)

	used := mapset.New[string]()
	furnish(root, rng, &used)
	rooms := leaves(root)
	for _, c := range rooms {
		carve(grid, c)
	}
	connect(grid, root, rng)
	grid.BuildAllCellConnections()

	start := rooms[rng.Intn(len(rooms))]
	grid.SetStartCellAt(start.center())
	exit := furthestCell(grid.StartCell())
	grid.SetExitCellAt(exit.Row, exit.Col)

	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("generated invalid grid: %w", err)
	}
	return grid, nil
}

// split recursively halves a partition until both sides are too small
func split(p *partition, minSize int, rng *rand.Rand) {
	canSplitRows := p.height >= minSize*2
	canSplitCols := p.width >= minSize*2

	var horizontal bool
	switch {
	case canSplitRows && canSplitCols:
		if p.width == p.height {
			horizontal = rng.Intn(2) == 0
		} else {
			horizontal = p.height > p.width
		}
	case canSplitRows:
		horizontal = true
	case canSplitCols:
		horizontal = false
	default:
		return
	}

	if horizontal {
		at := minSize + rng.Intn(p.height-minSize*2+1)
		p.left = &partition{x: p.x, y: p.y, width: p.width, height: at}
		p.right = &partition{x: p.x, y: p.y + at, width: p.width, height: p.height - at}
	} else {
		at := minSize + rng.Intn(p.width-minSize*2+1)
		p.left = &partition{x: p.x, y: p.y, width: at, height: p.height}
		p.right = &partition{x: p.x + at, y: p.y, width: p.width - at, height: p.height}
	}

	split(p.left, minSize, rng)
	split(p.right, minSize, rng)
}

// furnish places a uniquely named room inside every leaf
func furnish(p *partition, rng *rand.Rand, used *mapset.Set[string]) {
	if p.left != nil {
		furnish(p.left, rng, used)
		furnish(p.right, rng, used)
		return
	}

	width := minRoomSize + rng.Intn(p.width-minRoomSize-roomMargin+1)
	height := minRoomSize + rng.Intn(p.height-minRoomSize-roomMargin+1)

	base := chamberNames[rng.Intn(len(chamberNames))]
	name := chamberAdjectives[rng.Intn(len(chamberAdjectives))] + " " + base
	for n := 2; used.Has(name); n++ {
		name = fmt.Sprintf("%s %s %d", chamberAdjectives[rng.Intn(len(chamberAdjectives))], base, n)
	}
	used.Put(name)

	p.room = &chamber{
		x:      p.x + 1 + rng.Intn(p.width-width-1),
		y:      p.y + 1 + rng.Intn(p.height-height-1),
		width:  width,
		height: height,
		name:   name,
		base:   base,
	}
}

func leaves(p *partition) []*chamber {
	if p.room != nil {
		return []*chamber{p.room}
	}
	if p.left == nil {
		return nil
	}
	return append(leaves(p.left), leaves(p.right)...)
}

func carve(grid *world.Grid, c *chamber) {
	for row := c.y; row < c.y+c.height; row++ {
		for col := c.x; col < c.x+c.width; col++ {
			grid.MarkAsRoomWithName(row, col, c.name, "ROOM_"+c.base)
		}
	}
}

// connect joins one room of each subtree with an L-shaped corridor
func connect(grid *world.Grid, p *partition, rng *rand.Rand) {
	if p.left == nil {
		return
	}

	a := pick(p.left, rng)
	b := pick(p.right, rng)
	aRow, aCol := a.center()
	bRow, bCol := b.center()
	if rng.Intn(2) == 0 {
		corridor(grid, aRow, aCol, aRow, bCol)
		corridor(grid, aRow, bCol, bRow, bCol)
	} else {
		corridor(grid, aRow, aCol, bRow, aCol)
		corridor(grid, bRow, aCol, bRow, bCol)
	}

	connect(grid, p.left, rng)
	connect(grid, p.right, rng)
}

// corridor carves a straight run between two cells sharing a row or a column.
// Cells already part of a room keep their room name.
func corridor(grid *world.Grid, fromRow, fromCol, toRow, toCol int) {
	r0, r1 := min(fromRow, toRow), max(fromRow, toRow)
	c0, c1 := min(fromCol, toCol), max(fromCol, toCol)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if cell := grid.GetCell(row, col); cell != nil && !cell.Room {
				grid.MarkAsRoomWithName(row, col, world.CorridorName, "ROOM_CORRIDOR")
			}
		}
	}
}

// pick returns a random room from a subtree
func pick(p *partition, rng *rand.Rand) *chamber {
	rooms := leaves(p)
	return rooms[rng.Intn(len(rooms))]
}

// furthestCell finds the cell with the longest walk from start,
// preferring room cells over corridor cells at equal distance
func furthestCell(start *world.Cell) *world.Cell {
	dist := map[*world.Cell]int{start: 0}
	queue := []*world.Cell{start}
	furthest := start

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		d := dist[current]
		best := dist[furthest]
		if d > best || (d == best && furthest.IsCorridor() && !current.IsCorridor()) {
			furthest = current
		}

		for _, n := range current.WalkableNeighbors() {
			if _, seen := dist[n]; !seen {
				dist[n] = d + 1
				queue = append(queue, n)
			}
		}
	}
	return furthest
}
