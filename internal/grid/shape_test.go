package grid

import "testing"

func mustShape(t *testing.T, rows []string) Shape {
	t.Helper()
	s, err := Parse(rows)
	if err != nil {
		t.Fatalf("Parse(%v) failed: %v", rows, err)
	}
	return s
}

func sameRows(a, b Shape) bool {
	return a.Key() == b.Key()
}

func TestParseRejectsRaggedRows(t *testing.T) {
	if _, err := Parse([]string{"AB", "A"}); err == nil {
		t.Fatalf("expected error for ragged rows")
	}
}

func TestParseRejectsEmptyGrid(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Fatalf("expected error for zero rows")
	}
	if _, err := Parse([]string{"..", ".."}); err == nil {
		t.Fatalf("expected error for grid with no filled cells")
	}
}

func TestParsePicksFirstFilledRuneAsID(t *testing.T) {
	s := mustShape(t, []string{".X.", "XXX"})
	if s.ID() != 'X' {
		t.Fatalf("expected id X, got %c", s.ID())
	}
}

func TestReflectMirrorsRows(t *testing.T) {
	s := mustShape(t, []string{"AB.", ".AB"})
	r := s.Reflect()
	want := mustShape(t, []string{".BA", "BA."})
	if !sameRows(r, want) {
		t.Fatalf("reflect: got %v, want %v", r.Rows(), want.Rows())
	}
	if !sameRows(s, mustShape(t, []string{"AB.", ".AB"})) {
		t.Fatalf("reflect mutated its receiver: %v", s.Rows())
	}
}

func TestReflectTwiceIsIdentity(t *testing.T) {
	s := mustShape(t, []string{"SS..", ".SSS"})
	if !sameRows(s.Reflect().Reflect(), s) {
		t.Fatalf("reflect applied twice changed the grid")
	}
}

func TestTransposeSwapsDimensions(t *testing.T) {
	s := mustShape(t, []string{"ABC", "DEF"})
	tr := s.Transpose()
	if tr.Height() != 3 || tr.Width() != 2 {
		t.Fatalf("expected 3x2, got %dx%d", tr.Height(), tr.Width())
	}
	for r, c := range s.Coords() {
		if tr.At(c, r) != s.At(r, c) {
			t.Fatalf("transpose mismatch at (%d,%d)", r, c)
		}
	}
}

func TestRotateDirection(t *testing.T) {
	// Reflect-then-transpose turns "AB" into a column with B on top.
	s := mustShape(t, []string{"AB"})
	got := s.Rotate()
	want := mustShape(t, []string{"B", "A"})
	if !sameRows(got, want) {
		t.Fatalf("rotate: got %v, want %v", got.Rows(), want.Rows())
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, rows := range [][]string{
		{"F..", "F..", "FFF"},
		{"TTTT", ".T.."},
		{"X"},
		{"AB.", ".AB"},
	} {
		s := mustShape(t, rows)
		if !sameRows(s.Rotate().Rotate().Rotate().Rotate(), s) {
			t.Fatalf("four rotations of %v did not return to start", rows)
		}
	}
}

func TestCoordsRowMajorAndRestartable(t *testing.T) {
	s := mustShape(t, []string{"AB", "CD"})
	want := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for range 2 {
		var got [][2]int
		for r, c := range s.Coords() {
			got = append(got, [2]int{r, c})
		}
		if len(got) != len(want) {
			t.Fatalf("expected %d coords, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("coord %d: got %v, want %v", i, got[i], want[i])
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := mustShape(t, []string{"..", ".#"})
	c := s.Clone()
	c.Set(0, 0, 'Z')
	if s.At(0, 0) != Empty {
		t.Fatalf("mutating a clone changed the original")
	}
}

func TestKeyMatchesOnDimensionsAndCells(t *testing.T) {
	a := mustShape(t, []string{"AA"})
	b := mustShape(t, []string{"AA"})
	if a.Key() != b.Key() {
		t.Fatalf("identical grids produced different keys")
	}
	c := mustShape(t, []string{"A", "A"})
	if a.Key() == c.Key() {
		t.Fatalf("different dimensions produced the same key")
	}
}
