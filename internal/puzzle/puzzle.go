// Package puzzle holds the fixed calendar board, the piece roster, and
// the day/month layout that marks the two date cells before a search.
package puzzle

import (
	"fmt"

	"github.com/tbrandt/calendar-puzzle-engine/internal/grid"
)

// Marker runes written onto the board before search. They never change
// while a search runs.
const (
	MonthMarker = 'M'
	DayMarker   = 'D'
)

// The eight pieces. Each uses one rune for all of its filled cells.
var pieceDefs = [][]string{
	{"F..", "F..", "FFF"},
	{"TTTT", ".T.."},
	{"SS..", ".SSS"},
	{"QQQ", "QQQ"},
	{"Z..", "ZZZ", "..Z"},
	{"L...", "LLLL"},
	{"U.U", "UUU"},
	{"BB.", "BBB"},
}

// The board. Months occupy rows 0-1 in six columns, days rows 2-6 in
// seven columns; '#' cells are outside the calendar face.
var boardDef = []string{
	"......#",
	"......#",
	".......",
	".......",
	".......",
	".......",
	"...####",
}

// Piece is one roster entry with its precomputed orientation set.
type Piece struct {
	ID           rune
	CellCount    int
	Orientations []grid.Shape
}

// Puzzle is a marked board plus the piece roster, ready to solve.
type Puzzle struct {
	Board  grid.Shape
	Pieces []Piece
	Day    int
	Month  int
}

// New builds the board for the given date and precomputes every piece's
// orientations. Out-of-range dates are refused here, before any search.
func New(day, month int) (*Puzzle, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month %d out of range 1-12", month)
	}
	if day < 1 || day > 31 {
		return nil, fmt.Errorf("day %d out of range 1-31", day)
	}

	board, err := grid.Parse(boardDef)
	if err != nil {
		return nil, fmt.Errorf("failed to parse board: %w", err)
	}

	m := month - 1
	d := day - 1
	board.Set(m/6, m%6, MonthMarker)
	board.Set(2+d/7, d%7, DayMarker)

	pieces, err := Pieces()
	if err != nil {
		return nil, err
	}
	return &Puzzle{Board: board, Pieces: pieces, Day: day, Month: month}, nil
}

// Pieces parses the roster and generates orientation sets. The result
// depends only on the compiled-in definitions, never on the date.
func Pieces() ([]Piece, error) {
	pieces := make([]Piece, 0, len(pieceDefs))
	for i, def := range pieceDefs {
		s, err := grid.Parse(def)
		if err != nil {
			return nil, fmt.Errorf("failed to parse piece %d: %w", i, err)
		}
		count := 0
		for r, c := range s.Coords() {
			if s.At(r, c) != grid.Empty {
				count++
			}
		}
		pieces = append(pieces, Piece{
			ID:           s.ID(),
			CellCount:    count,
			Orientations: grid.Orientations(s),
		})
	}
	return pieces, nil
}
