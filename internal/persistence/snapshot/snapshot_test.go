package snapshot

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"terracraft/internal/gen"
	"terracraft/internal/sim/world"
)

func TestExportImport_RoundTrip(t *testing.T) {
	cfg := gen.DefaultConfig()
	w := world.New(64, 64)
	gen.Generate(w, 987, cfg)

	path := filepath.Join(t.TempDir(), "worlds", "alpha.snap.zst")
	if err := Export(path, "alpha", w, 987, cfg); err != nil {
		t.Fatalf("export: %v", err)
	}

	got, snap, err := Import(path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if got.Digest() != w.Digest() {
		t.Fatal("digest mismatch after round trip")
	}
	if snap.Header.Name != "alpha" || snap.Header.Width != 64 || snap.Header.Height != 64 || snap.Header.Seed != 987 {
		t.Fatalf("header = %+v", snap.Header)
	}
	want := w.Digest()
	if snap.Digest != hex.EncodeToString(want[:]) {
		t.Fatal("recorded digest does not match grid")
	}

	den := gen.FindDen(w, 987)
	if snap.Den.CenterX != den.CenterX || snap.Den.RadiusY != den.RadiusY {
		t.Fatalf("den %+v want %+v", snap.Den, den)
	}

	for _, p := range [][2]int{{0, 0}, {31, 17}, {63, 63}} {
		if got.Tile(p[0], p[1]) != w.Tile(p[0], p[1]) {
			t.Fatalf("tile (%d,%d) differs after round trip", p[0], p[1])
		}
	}
}

func TestImport_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.snap.zst")
	if err := os.WriteFile(path, []byte("definitely not zstd"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Import(path); err == nil {
		t.Fatal("corrupt file accepted")
	}
}

func TestImport_MissingFile(t *testing.T) {
	if _, _, err := Import(filepath.Join(t.TempDir(), "nope.snap.zst")); err == nil {
		t.Fatal("missing file accepted")
	}
}
