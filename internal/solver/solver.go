// Package solver places piece orientations on the board and enumerates
// every complete tiling by depth-first backtracking.
package solver

import (
	"github.com/tbrandt/calendar-puzzle-engine/internal/grid"
	"github.com/tbrandt/calendar-puzzle-engine/internal/puzzle"
)

// Cell addresses one board position.
type Cell struct {
	Row int
	Col int
}

// Solution is a snapshot of a fully covered board, handed to the
// caller's emit function as each tiling is found.
type Solution struct {
	Number int
	Rows   []string
	Calls  int
}

// Fit reports the board cells orientation p would cover when anchored
// with its top-left corner at (r, c). The answer is all or nothing: any
// overhang or collision with a non-empty board cell yields nil, never a
// partial list. Neither shape is touched.
func Fit(p, board grid.Shape, r, c int) []Cell {
	if r+p.Height() > board.Height() || c+p.Width() > board.Width() {
		return nil
	}
	var cells []Cell
	for pr, pc := range p.Coords() {
		if p.At(pr, pc) == grid.Empty {
			continue
		}
		if board.At(r+pr, c+pc) != grid.Empty {
			return nil
		}
		cells = append(cells, Cell{Row: r + pr, Col: c + pc})
	}
	return cells
}

// Solver owns the live board for the duration of one run.
type Solver struct {
	board  grid.Shape
	pieces []puzzle.Piece
	emit   func(Solution)
	calls  int
	found  int
}

// New wires a solver to a puzzle. emit receives every complete tiling;
// a nil emit discards them (the run still counts solutions and calls).
func New(p *puzzle.Puzzle, emit func(Solution)) *Solver {
	if emit == nil {
		emit = func(Solution) {}
	}
	return &Solver{board: p.Board, pieces: p.Pieces, emit: emit}
}

// Run searches exhaustively and returns the number of solutions found
// and the total count of recursive calls. The board is restored to its
// pre-run state before Run returns.
func (s *Solver) Run() (solutions, calls int) {
	s.calls = 0
	s.found = 0
	s.place(0)
	return s.found, s.calls
}

// place tries every anchor and orientation for piece k. Each successful
// placement is written onto the board, recursed into, then undone before
// the next candidate, so siblings always start from a clean board.
func (s *Solver) place(k int) {
	s.calls++
	if k == len(s.pieces) {
		s.found++
		s.emit(Solution{Number: s.found, Rows: s.board.Rows(), Calls: s.calls})
		return
	}
	for r, c := range s.board.Coords() {
		for _, p := range s.pieces[k].Orientations {
			occ := Fit(p, s.board, r, c)
			if len(occ) == 0 {
				continue
			}
			for _, cell := range occ {
				s.board.Set(cell.Row, cell.Col, p.ID())
			}
			s.place(k + 1)
			for _, cell := range occ {
				s.board.Set(cell.Row, cell.Col, grid.Empty)
			}
		}
	}
}
