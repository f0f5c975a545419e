package encoding

import (
	"testing"

	"terracraft/internal/sim/world"
)

func TestRLE_RoundTrip(t *testing.T) {
	maxCell := world.PackCell(world.Tile{Type: world.TileTypeCount - 1, Active: true})
	cases := [][]uint16{
		{},
		{0},
		{7, 7, 7, 7, 7},
		{1, 2, 3, 4, 5},
		{0, 0, 5, 5, 5, 0, 9},
		{maxCell, maxCell, 0},
	}
	for _, cells := range cases {
		enc := EncodeRLE(cells)
		dec, err := DecodeRLE(enc)
		if err != nil {
			t.Fatalf("decode %v: %v", cells, err)
		}
		if len(dec) != len(cells) {
			t.Fatalf("len %d want %d for %v", len(dec), len(cells), cells)
		}
		for i := range cells {
			if dec[i] != cells[i] {
				t.Fatalf("cell %d: %d want %d", i, dec[i], cells[i])
			}
		}
	}
}

func TestRLE_LongRunCompresses(t *testing.T) {
	cells := make([]uint16, 100000)
	enc := EncodeRLE(cells)
	if len(enc) > 32 {
		t.Fatalf("100k-cell run encoded to %d bytes", len(enc))
	}
	dec, err := DecodeRLE(enc)
	if err != nil {
		t.Fatal(err)
	}
	if len(dec) != len(cells) {
		t.Fatalf("len %d want %d", len(dec), len(cells))
	}
}

func TestDecodeRLE_RejectsGarbage(t *testing.T) {
	if _, err := DecodeRLE("not base64!!"); err == nil {
		t.Fatal("invalid base64 accepted")
	}
	// Valid base64 of a lone varint with no run length.
	if _, err := DecodeRLE("Bw=="); err == nil {
		t.Fatal("truncated pair accepted")
	}
}

func TestDecodeRLE_RejectsUnknownCells(t *testing.T) {
	beyond := uint16(world.TileTypeCount) << 1 // first cell past the tile range
	if _, err := DecodeRLE(EncodeRLE([]uint16{beyond, beyond})); err == nil {
		t.Fatal("cell beyond the tile range accepted")
	}
	last := world.PackCell(world.Tile{Type: world.TileTypeCount - 1, Active: true})
	if _, err := DecodeRLE(EncodeRLE([]uint16{last})); err != nil {
		t.Fatalf("highest valid cell rejected: %v", err)
	}
}
