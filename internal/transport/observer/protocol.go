package observer

// Wire messages for the read-only observer endpoint. Observers are external
// collaborators (renderers, map tools); they see the grid only through this
// surface and can never mutate it.

const (
	TypeHello   = "HELLO"
	TypeWelcome = "WELCOME"
	TypeRegion  = "REGION"
	TypeTiles   = "TILES"
	TypeError   = "ERROR"
)

type BaseMsg struct {
	Type string `json:"type"`
}

type HelloMsg struct {
	Type string `json:"type"`
}

type WelcomeMsg struct {
	Type   string `json:"type"`
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Seed   uint32 `json:"seed"`
	Digest string `json:"digest"`
}

// RegionMsg requests a rectangle of tiles; the server clamps it to the grid.
type RegionMsg struct {
	Type   string `json:"type"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// TilesMsg answers a region request with one RLE string per row, each row
// encoding packed (type, active) cells left to right.
type TilesMsg struct {
	Type   string   `json:"type"`
	X      int      `json:"x"`
	Y      int      `json:"y"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}

type ErrorMsg struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
