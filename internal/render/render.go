// Package render draws board snapshots for the terminal, two characters
// per cell so the grid comes out roughly square.
package render

import (
	"fmt"
	"strings"

	"github.com/vyevs/ansi"

	"github.com/tbrandt/calendar-puzzle-engine/internal/grid"
	"github.com/tbrandt/calendar-puzzle-engine/internal/puzzle"
)

// One fixed color per piece id.
var pieceColors = map[rune]string{
	'F': "red",
	'T': "green",
	'S': "yellow",
	'Q': "blue",
	'Z': "magenta",
	'L': "cyan",
	'U': "white",
	'B': "light gray",
}

// Renderer formats board rows. Day and month replace their marker cells
// as zero-padded numbers.
type Renderer struct {
	Day   int
	Month int
	Color bool
}

// Board renders a board snapshot. Blocked cells print as blanks, piece
// cells as colored blocks (or the id rune doubled when color is off).
func (rd Renderer) Board(rows []string) string {
	var b strings.Builder
	for _, row := range rows {
		for _, c := range row {
			switch c {
			case puzzle.MonthMarker:
				fmt.Fprintf(&b, "%02d", rd.Month)
			case puzzle.DayMarker:
				fmt.Fprintf(&b, "%02d", rd.Day)
			case grid.Blocked:
				b.WriteString("  ")
			default:
				if color, ok := pieceColors[c]; ok && rd.Color {
					b.WriteString(ansi.FGColorName(color))
					b.WriteString("██")
					b.WriteString(ansi.Clear)
				} else {
					b.WriteRune(c)
					b.WriteRune(c)
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
