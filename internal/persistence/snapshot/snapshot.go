// Package snapshot serializes a generated world to a zstd-compressed JSON
// file. The grid goes out as row-major (type, active) cells, RLE-packed, with
// enough header material (seed, size, config) to regenerate and verify it.
package snapshot

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"terracraft/internal/gen"
	"terracraft/internal/sim/encoding"
	"terracraft/internal/sim/world"
)

const version = 1

type Header struct {
	Version int    `json:"version"`
	Name    string `json:"name"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Seed    uint32 `json:"seed"`
}

type ConfigV1 struct {
	TerrainAmplitude float64 `json:"terrain_amplitude"`
	SoilDepthScale   float64 `json:"soil_depth_scale"`
	CaveDensity      float64 `json:"cave_density"`
	OreDensity       float64 `json:"ore_density"`
	TreeDensity      float64 `json:"tree_density"`
}

type DenV1 struct {
	CenterX int `json:"center_x"`
	CenterY int `json:"center_y"`
	RadiusX int `json:"radius_x"`
	RadiusY int `json:"radius_y"`
}

type WorldV1 struct {
	Header Header   `json:"header"`
	Config ConfigV1 `json:"config"`
	Den    DenV1    `json:"den"`
	Digest string   `json:"digest"`
	Tiles  string   `json:"tiles"` // RLE over row-major packed cells
}

// Export writes the world to path, creating parent directories as needed.
func Export(path, name string, w *world.World, seed uint32, cfg gen.Config) error {
	digest := w.Digest()
	den := gen.FindDen(w, seed)
	snap := WorldV1{
		Header: Header{
			Version: version,
			Name:    name,
			Width:   w.Width(),
			Height:  w.Height(),
			Seed:    seed,
		},
		Config: ConfigV1{
			TerrainAmplitude: cfg.TerrainAmplitude,
			SoilDepthScale:   cfg.SoilDepthScale,
			CaveDensity:      cfg.CaveDensity,
			OreDensity:       cfg.OreDensity,
			TreeDensity:      cfg.TreeDensity,
		},
		Den: DenV1{
			CenterX: den.CenterX,
			CenterY: den.CenterY,
			RadiusX: den.RadiusX,
			RadiusY: den.RadiusY,
		},
		Digest: hex.EncodeToString(digest[:]),
		Tiles:  encoding.EncodeRLE(w.Cells()),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	enc, err := zstd.NewWriter(bw, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := json.NewEncoder(enc).Encode(snap); err != nil {
		_ = enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Sync()
}

// Import reads a snapshot and rebuilds the grid, verifying cell count and
// digest against the header before handing the world back.
func Import(path string) (*world.World, WorldV1, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, WorldV1{}, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(bufio.NewReader(f))
	if err != nil {
		return nil, WorldV1{}, err
	}
	defer dec.Close()

	var snap WorldV1
	if err := json.NewDecoder(dec).Decode(&snap); err != nil {
		return nil, WorldV1{}, fmt.Errorf("snapshot %s: %w", path, err)
	}
	if snap.Header.Version != version {
		return nil, WorldV1{}, fmt.Errorf("snapshot %s: unsupported version %d", path, snap.Header.Version)
	}
	if snap.Header.Width <= 0 || snap.Header.Height <= 0 {
		return nil, WorldV1{}, fmt.Errorf("snapshot %s: invalid size %dx%d", path, snap.Header.Width, snap.Header.Height)
	}

	cells, err := encoding.DecodeRLE(snap.Tiles)
	if err != nil {
		return nil, WorldV1{}, fmt.Errorf("snapshot %s: tiles: %w", path, err)
	}
	if len(cells) != snap.Header.Width*snap.Header.Height {
		return nil, WorldV1{}, fmt.Errorf("snapshot %s: got %d cells, want %d", path, len(cells), snap.Header.Width*snap.Header.Height)
	}

	w := world.New(snap.Header.Width, snap.Header.Height)
	for i, c := range cells {
		t := world.UnpackCell(c)
		w.SetTile(i%snap.Header.Width, i/snap.Header.Width, t.Type, t.Active)
	}

	digest := w.Digest()
	if got := hex.EncodeToString(digest[:]); got != snap.Digest {
		return nil, WorldV1{}, fmt.Errorf("snapshot %s: digest mismatch: %s vs %s", path, got, snap.Digest)
	}
	return w, snap, nil
}
