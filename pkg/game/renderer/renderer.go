// Package renderer draws labyrinth levels and styled text for the terminal.
package renderer

import (
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/state"
	gameworld "labyrinth/pkg/game/world"
)

// Map icons
const (
	IconPlayer     = '@'
	IconWall       = '#'
	IconFloor      = '.'
	IconCorridor   = ','
	IconExit       = 'E'
	IconKey        = 'k'
	IconItem       = 'i'
	IconLockedDoor = 'D'
	IconClosedDoor = '+'
	IconOpenDoor   = '/'
)

var (
	ColorCell    = color.Style{color.FgCyan}
	ColorWall    = color.Style{color.FgGray}
	ColorKeycard = color.Style{color.FgYellow, color.OpBold}
	ColorDoor    = color.Style{color.FgRed, color.OpBold}
	ColorOpen    = color.Style{color.FgGreen}
	ColorPlayer  = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	ColorExit    = color.Style{color.FgMagenta, color.OpBold}
)

// SetColor turns ANSI styling on or off for everything this package prints
func SetColor(enabled bool) {
	color.Enable = enabled
}

// StyledKeycard styles a keycard name
func StyledKeycard(name string) string {
	return ColorKeycard.Sprint(name)
}

// StyledDoor styles a door name
func StyledDoor(name string) string {
	return ColorDoor.Sprint(name)
}

// StyledCell styles a room name
func StyledCell(name string) string {
	return ColorCell.Sprint(name)
}

// Plain strips any styling from s
func Plain(s string) string {
	return color.ClearCode(s)
}

// CellSymbol returns the unstyled map symbol of a cell, player and exit included.
// It never modifies the cell.
func CellSymbol(g *state.Game, cell *world.Cell) rune {
	switch {
	case cell == nil || !cell.Room:
		return IconWall
	case cell == g.CurrentCell:
		return IconPlayer
	case cell.ExitCell:
		return IconExit
	}

	data := gameworld.LookupGameData(cell)
	switch {
	case data.Door != nil && data.Door.IsLocked():
		return IconLockedDoor
	case data.Door != nil && data.Door.IsOpened():
		return IconOpenDoor
	case data.Door != nil:
		return IconClosedDoor
	case gameworld.HasKey(cell):
		return IconKey
	case gameworld.HasItems(cell):
		return IconItem
	case cell.IsCorridor():
		return IconCorridor
	default:
		return IconFloor
	}
}

func styleSymbol(sym rune) string {
	s := string(sym)
	switch sym {
	case IconPlayer:
		return ColorPlayer.Sprint(s)
	case IconExit:
		return ColorExit.Sprint(s)
	case IconKey:
		return ColorKeycard.Sprint(s)
	case IconLockedDoor:
		return ColorDoor.Sprint(s)
	case IconOpenDoor, IconClosedDoor:
		return ColorOpen.Sprint(s)
	case IconWall:
		return ColorWall.Sprint(s)
	default:
		return s
	}
}

// RenderMap draws the whole grid, one line per row. Rows are cut to maxCols
// columns when maxCols is positive.
func RenderMap(g *state.Game, maxCols int) string {
	if g.Grid == nil {
		return ""
	}
	cols := g.Grid.Cols()
	if maxCols > 0 {
		cols = min(cols, maxCols)
	}

	var b strings.Builder
	for row := range g.Grid.Rows() {
		for col := range cols {
			b.WriteString(styleSymbol(CellSymbol(g, g.Grid.GetCell(row, col))))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Legend explains the map symbols
func Legend() []string {
	return []string{
		gotext.Get("%c you", IconPlayer),
		gotext.Get("%c exit", IconExit),
		gotext.Get("%c keycard", IconKey),
		gotext.Get("%c locked door", IconLockedDoor),
		gotext.Get("%c closed door", IconClosedDoor),
		gotext.Get("%c open door", IconOpenDoor),
		gotext.Get("%c corridor", IconCorridor),
	}
}
