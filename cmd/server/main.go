package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"

	"github.com/coder/websocket"

	"github.com/tbrandt/calendar-puzzle-engine/internal/protocol"
	"github.com/tbrandt/calendar-puzzle-engine/internal/puzzle"
	"github.com/tbrandt/calendar-puzzle-engine/internal/solver"
	"github.com/tbrandt/calendar-puzzle-engine/internal/web/views"
	"github.com/tbrandt/calendar-puzzle-engine/internal/ws"
)

type server struct {
	hub      *ws.Hub
	sequence uint64

	mu        sync.Mutex
	searching bool
}

func (s *server) broadcast(eventType string, payload any) {
	env := protocol.Envelope{
		Sequence: atomic.AddUint64(&s.sequence, 1),
		Type:     eventType,
		Payload:  payload,
	}
	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("failed to marshal %s envelope: %v", eventType, err)
		return
	}
	s.hub.Broadcast(data)
}

// runSearch runs one exhaustive search and broadcasts every solution.
// Only one search runs at a time; concurrent requests are rejected.
func (s *server) runSearch(day, month int) {
	s.mu.Lock()
	if s.searching {
		s.mu.Unlock()
		s.broadcast("SearchRejected", protocol.SearchRejected{Reason: "search already running"})
		return
	}
	s.searching = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.searching = false
		s.mu.Unlock()
	}()

	p, err := puzzle.New(day, month)
	if err != nil {
		s.broadcast("SearchRejected", protocol.SearchRejected{Reason: err.Error()})
		return
	}

	log.Printf("search started for day=%d month=%d", day, month)
	s.broadcast("SearchStarted", protocol.SearchStarted{Day: day, Month: month})
	sv := solver.New(p, func(sol solver.Solution) {
		s.broadcast("SolutionFound", protocol.SolutionFound{
			Number: sol.Number,
			Rows:   sol.Rows,
			Calls:  sol.Calls,
		})
	})
	solutions, calls := sv.Run()
	log.Printf("search finished: %d solutions, %d calls", solutions, calls)
	s.broadcast("SearchFinished", protocol.SearchFinished{Solutions: solutions, Calls: calls})
}

func (s *server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}
	s.hub.Add(conn)

	go func(c *websocket.Conn) {
		defer s.hub.Remove(c)
		defer c.Close(websocket.StatusNormalClosure, "")
		for {
			_, data, err := c.Read(context.Background())
			if err != nil {
				return
			}
			var env protocol.IntentEnvelope
			if err := json.Unmarshal(data, &env); err != nil {
				log.Printf("bad intent envelope: %v", err)
				continue
			}
			switch env.Type {
			case "RequestStartSearch":
				var req protocol.RequestStartSearch
				if err := json.Unmarshal(env.Payload, &req); err != nil {
					log.Printf("bad RequestStartSearch payload: %v", err)
					continue
				}
				go s.runSearch(req.Day, req.Month)
			default:
				log.Printf("unknown intent type %q", env.Type)
			}
		}
	}(conn)
}

func (s *server) handleIndex(day, month int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := puzzle.New(day, month)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		pieces := make([]protocol.PieceLite, 0, len(p.Pieces))
		for _, pc := range p.Pieces {
			pieces = append(pieces, protocol.PieceLite{
				ID:        string(pc.ID),
				CellCount: pc.CellCount,
				Variants:  len(pc.Orientations),
			})
		}
		snapshot := protocol.BoardSnapshot{
			BoardWidth:      p.Board.Width(),
			BoardHeight:     p.Board.Height(),
			Rows:            p.Board.Rows(),
			Day:             day,
			Month:           month,
			Pieces:          pieces,
			ProtocolVersion: "v0",
		}
		if err := views.IndexPage(snapshot).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func main() {
	day := flag.Int("day", 1, "day of month to leave uncovered (1-31)")
	month := flag.Int("month", 1, "month to leave uncovered (1-12)")
	flag.Parse()

	if _, err := puzzle.New(*day, *month); err != nil {
		log.Fatalf("invalid date: %v", err)
	}

	s := &server{hub: ws.NewHub()}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex(*day, *month))
	mux.HandleFunc("/stream", s.handleStream)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{Addr: ":" + port, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		s.hub.CloseAll()
		_ = srv.Shutdown(context.Background())
	}()

	log.Printf("listening on :%s", port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
