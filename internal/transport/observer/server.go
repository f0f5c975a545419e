package observer

import (
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"terracraft/internal/sim/encoding"
	"terracraft/internal/sim/world"
)

// Server streams read-only views of a finished world over websocket. The
// grid is immutable once generation completes, so any number of observers
// may read it concurrently.
type Server struct {
	world  *world.World
	name   string
	seed   uint32
	digest string
	log    *log.Logger

	upgrader websocket.Upgrader
}

func NewServer(w *world.World, name string, seed uint32, logger *log.Logger) *Server {
	digest := w.Digest()
	return &Server{
		world:  w,
		name:   name,
		seed:   seed,
		digest: hex.EncodeToString(digest[:]),
		log:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		if !s.handshake(conn) {
			return
		}

		for {
			_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var base BaseMsg
			if err := json.Unmarshal(msg, &base); err != nil || base.Type != TypeRegion {
				s.send(conn, ErrorMsg{Type: TypeError, Message: "expected REGION"})
				continue
			}
			var region RegionMsg
			if err := json.Unmarshal(msg, &region); err != nil {
				s.send(conn, ErrorMsg{Type: TypeError, Message: "bad REGION"})
				continue
			}
			s.send(conn, s.tiles(region))
		}
	}
}

func (s *Server) handshake(conn *websocket.Conn) bool {
	_ = conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return false
	}
	var hello HelloMsg
	if err := json.Unmarshal(msg, &hello); err != nil || hello.Type != TypeHello {
		s.send(conn, ErrorMsg{Type: TypeError, Message: "expected HELLO"})
		return false
	}
	return s.send(conn, WelcomeMsg{
		Type:   TypeWelcome,
		Name:   s.name,
		Width:  s.world.Width(),
		Height: s.world.Height(),
		Seed:   s.seed,
		Digest: s.digest,
	})
}

// tiles clamps the requested rectangle to the grid and encodes it row by row.
func (s *Server) tiles(region RegionMsg) TilesMsg {
	w, h := s.world.Width(), s.world.Height()
	x0 := clamp(region.X, 0, w)
	y0 := clamp(region.Y, 0, h)
	x1 := clamp(region.X+region.Width, x0, w)
	y1 := clamp(region.Y+region.Height, y0, h)

	rows := make([]string, 0, y1-y0)
	cells := make([]uint16, x1-x0)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cells[x-x0] = world.PackCell(s.world.Tile(x, y))
		}
		rows = append(rows, encoding.EncodeRLE(cells))
	}
	return TilesMsg{Type: TypeTiles, X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0, Rows: rows}
}

func (s *Server) send(conn *websocket.Conn, v any) bool {
	b, err := json.Marshal(v)
	if err != nil {
		return false
	}
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		if s.log != nil {
			s.log.Printf("observer write: %v", err)
		}
		return false
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
