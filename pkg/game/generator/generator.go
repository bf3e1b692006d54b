// Package generator lays out labyrinth levels: named rooms joined by corridors,
// with a start cell and an exit cell.
package generator

import (
	"math/rand"

	"labyrinth/pkg/engine/world"
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(level int, rng *rand.Rand) (*world.Grid, error)
	Name() string
}

// BSP is the binary space partitioning generator
var BSP = &BSPGenerator{}

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = BSP
