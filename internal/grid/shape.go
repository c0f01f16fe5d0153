package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Shape is a rectangular grid of cell runes with an owning id rune.
// '.' marks an empty cell, '#' a permanently blocked one; any other rune
// belongs to a piece or marker. Transforms return new shapes and leave
// the receiver untouched.
type Shape struct {
	id    rune
	cells [][]rune
}

const (
	Empty   = '.'
	Blocked = '#'
)

// Parse builds a Shape from its row strings. The id is the first
// non-empty rune found in row-major order. Ragged rows, zero rows, and
// grids with no filled cell are rejected.
func Parse(rows []string) (Shape, error) {
	if len(rows) == 0 {
		return Shape{}, fmt.Errorf("shape has no rows")
	}
	width := len([]rune(rows[0]))
	cells := make([][]rune, len(rows))
	id := rune(0)
	for i, row := range rows {
		r := []rune(row)
		if len(r) != width {
			return Shape{}, fmt.Errorf("row %d has %d cells, want %d", i, len(r), width)
		}
		if id == 0 {
			for _, c := range r {
				if c != Empty {
					id = c
					break
				}
			}
		}
		cells[i] = r
	}
	if id == 0 {
		return Shape{}, fmt.Errorf("shape has no filled cells")
	}
	return Shape{id: id, cells: cells}, nil
}

func (s Shape) ID() rune    { return s.id }
func (s Shape) Height() int { return len(s.cells) }
func (s Shape) Width() int  { return len(s.cells[0]) }

// At returns the rune at (r, c). Bounds are the caller's problem.
func (s Shape) At(r, c int) rune { return s.cells[r][c] }

// Set writes a rune into the underlying grid. Only the live board is
// ever mutated; piece shapes are treated as immutable after Parse.
func (s Shape) Set(r, c int, v rune) { s.cells[r][c] = v }

// Clone returns a deep copy with its own cell storage.
func (s Shape) Clone() Shape {
	cells := make([][]rune, len(s.cells))
	for i, row := range s.cells {
		cells[i] = append([]rune(nil), row...)
	}
	return Shape{id: s.id, cells: cells}
}

// Coords yields every (row, col) pair in row-major order.
func (s Shape) Coords() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r := range s.cells {
			for c := range s.cells[r] {
				if !yield(r, c) {
					return
				}
			}
		}
	}
}

// Rows renders the grid back into row strings.
func (s Shape) Rows() []string {
	rows := make([]string, len(s.cells))
	for i, row := range s.cells {
		rows[i] = string(row)
	}
	return rows
}

// Key is a value-equality key over dimensions and cell contents. The id
// does not participate, so two orientations with identical grids collide.
func (s Shape) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d:", s.Height(), s.Width())
	for _, row := range s.cells {
		b.WriteString(string(row))
		b.WriteByte('|')
	}
	return b.String()
}

// Reflect mirrors the grid along its vertical axis.
func (s Shape) Reflect() Shape {
	cells := make([][]rune, len(s.cells))
	for i, row := range s.cells {
		rev := make([]rune, len(row))
		for j, c := range row {
			rev[len(row)-1-j] = c
		}
		cells[i] = rev
	}
	return Shape{id: s.id, cells: cells}
}

// Transpose swaps rows and columns: result[c][r] = s[r][c].
func (s Shape) Transpose() Shape {
	cells := make([][]rune, s.Width())
	for c := range cells {
		row := make([]rune, s.Height())
		for r := range row {
			row[r] = s.cells[r][c]
		}
		cells[c] = row
	}
	return Shape{id: s.id, cells: cells}
}

// Rotate turns the grid 90 degrees. The reflect-then-transpose order
// fixes the rotation direction; swapping it would mirror every turn.
func (s Shape) Rotate() Shape {
	return s.Reflect().Transpose()
}
