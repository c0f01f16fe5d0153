package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/tbrandt/calendar-puzzle-engine/internal/puzzle"
	"github.com/tbrandt/calendar-puzzle-engine/internal/render"
	"github.com/tbrandt/calendar-puzzle-engine/internal/solver"
)

func main() {
	day := flag.Int("day", 0, "day of month to leave uncovered (1-31)")
	month := flag.Int("month", 0, "month to leave uncovered (1-12)")
	color := flag.Bool("color", true, "render pieces as colored blocks")
	flag.Parse()

	p, err := puzzle.New(*day, *month)
	if err != nil {
		log.Fatalf("invalid date: %v", err)
	}

	rd := render.Renderer{Day: *day, Month: *month, Color: *color}
	s := solver.New(p, func(sol solver.Solution) {
		fmt.Printf("#%d:\n", sol.Number)
		fmt.Print(rd.Board(sol.Rows))
	})
	_, calls := s.Run()
	fmt.Printf("Calls: %d\n", calls)
}
