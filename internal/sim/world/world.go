package world

import (
	"crypto/sha256"
	"fmt"
)

// World is a fixed-size tile grid. Dimensions never change after
// construction; the generator mutates the grid in place through the
// accessors below and the caller owns it exclusively for the duration.
type World struct {
	width  int
	height int
	tiles  []Tile
}

// New returns a width×height grid of inactive Air.
func New(width, height int) *World {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("world: invalid size %dx%d", width, height))
	}
	return &World{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

func (w *World) Width() int  { return w.width }
func (w *World) Height() int { return w.height }

func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

// index panics on out-of-range coordinates. Reaching it from generator code
// is a programming error; clamping silently here would corrupt the
// reproducibility contract without anyone noticing.
func (w *World) index(x, y int) int {
	if !w.InBounds(x, y) {
		panic(fmt.Sprintf("world: tile (%d,%d) out of range %dx%d", x, y, w.width, w.height))
	}
	return y*w.width + x
}

func (w *World) Tile(x, y int) Tile {
	return w.tiles[w.index(x, y)]
}

func (w *World) SetTile(x, y int, t TileType, active bool) {
	w.tiles[w.index(x, y)] = Tile{Type: t, Active: active}
}

// SetTileType changes the type and keeps the active flag unchanged.
func (w *World) SetTileType(x, y int, t TileType) {
	i := w.index(x, y)
	w.tiles[i].Type = t
}

// Digest hashes the grid in row-major (type, active) order. Two worlds with
// equal digests are byte-identical.
func (w *World) Digest() [32]byte {
	h := sha256.New()
	var tmp [2]byte
	for _, t := range w.tiles {
		tmp[0] = byte(t.Type)
		tmp[1] = 0
		if t.Active {
			tmp[1] = 1
		}
		h.Write(tmp[:])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Census counts tiles per type across the whole grid.
func (w *World) Census() map[TileType]int {
	c := make(map[TileType]int)
	for _, t := range w.tiles {
		c[t.Type]++
	}
	return c
}

// Cells returns the grid as packed row-major cells for serialization.
func (w *World) Cells() []uint16 {
	out := make([]uint16, len(w.tiles))
	for i, t := range w.tiles {
		out[i] = PackCell(t)
	}
	return out
}
