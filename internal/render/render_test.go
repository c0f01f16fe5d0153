package render

import (
	"strings"
	"testing"
)

func TestBoardPlainRendering(t *testing.T) {
	rd := Renderer{Day: 15, Month: 6, Color: false}
	got := rd.Board([]string{"FM", "#D"})
	want := "FF06\n  15\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBoardDoublesUnknownRunes(t *testing.T) {
	rd := Renderer{Day: 1, Month: 1, Color: false}
	got := rd.Board([]string{".Q"})
	if got != "..QQ\n" {
		t.Fatalf("got %q", got)
	}
}

func TestBoardColorRendering(t *testing.T) {
	rd := Renderer{Day: 3, Month: 9, Color: true}
	got := rd.Board([]string{"FM"})
	if !strings.Contains(got, "██") {
		t.Fatalf("expected colored blocks in %q", got)
	}
	if !strings.Contains(got, "09") {
		t.Fatalf("expected zero-padded month in %q", got)
	}
	if strings.Contains(got, "FF") {
		t.Fatalf("piece rune leaked through color rendering: %q", got)
	}
}

func TestEveryPieceHasAColor(t *testing.T) {
	for _, id := range "FTSQZLUB" {
		if _, ok := pieceColors[id]; !ok {
			t.Errorf("piece %c has no color", id)
		}
	}
}
