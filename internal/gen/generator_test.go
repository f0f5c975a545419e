package gen

import (
	"testing"

	"terracraft/internal/sim/world"
)

func TestGenerate_SameInputsSameDigest(t *testing.T) {
	cfg := DefaultConfig()
	a := world.New(256, 128)
	b := world.New(256, 128)
	Generate(a, 42, cfg)
	Generate(b, 42, cfg)
	if a.Digest() != b.Digest() {
		t.Fatal("same (size, seed, config) produced different worlds")
	}
}

func TestGenerate_SeedChangesWorld(t *testing.T) {
	cfg := DefaultConfig()
	a := world.New(256, 128)
	b := world.New(256, 128)
	Generate(a, 1, cfg)
	Generate(b, 2, cfg)
	if a.Digest() == b.Digest() {
		t.Fatal("different seeds produced identical worlds")
	}
}

// Every stage short-circuits on a 10x10 grid except column painting, so the
// tiny world is pure layered terrain.
func TestGenerate_TinyWorldIsColumnsOnly(t *testing.T) {
	w := world.New(10, 10)
	Generate(w, 42, DefaultConfig())

	census := w.Census()
	for _, ore := range []world.TileType{world.CopperOre, world.IronOre, world.GoldOre} {
		if census[ore] != 0 {
			t.Errorf("tiny world contains %d %s tiles", census[ore], ore)
		}
	}
	if census[world.TreeTrunk] != 0 || census[world.TreeLeaves] != 0 {
		t.Error("tiny world contains tree tiles")
	}
	if den := FindDen(w, 42); den.Valid() {
		t.Errorf("tiny world reports a den: %+v", den)
	}

	for x := 0; x < 10; x++ {
		top := -1
		for y := 0; y < 10; y++ {
			if w.Tile(x, y).Active {
				top = y
				break
			}
		}
		if top < 0 {
			t.Fatalf("column %d has no ground", x)
		}
		if tt := w.Tile(x, top).Type; tt != world.Grass && tt != world.Stone {
			t.Fatalf("column %d surface tile is %s", x, tt)
		}
		for y := 0; y < top; y++ {
			if tile := w.Tile(x, y); tile.Type != world.Air || tile.Active {
				t.Fatalf("column %d row %d above surface is %v", x, y, tile)
			}
		}
		for y := top + 1; y < 10; y++ {
			tile := w.Tile(x, y)
			if !tile.Active || (tile.Type != world.Dirt && tile.Type != world.Stone) {
				t.Fatalf("column %d row %d below surface is %v", x, y, tile)
			}
		}
	}
}

// Generation must finish on any positive size; the shortest grids collapse
// every column to its surface tile.
func TestGenerate_DegenerateSizes(t *testing.T) {
	for _, dims := range [][2]int{
		{1, 1}, {1, 3}, {2, 2}, {3, 1}, {10, 1}, {10, 2}, {10, 3}, {1, 64}, {64, 1},
	} {
		width, height := dims[0], dims[1]
		w := world.New(width, height)
		Generate(w, 42, DefaultConfig())

		for x := 0; x < width; x++ {
			top := -1
			for y := 0; y < height; y++ {
				if w.Tile(x, y).Active {
					top = y
					break
				}
			}
			if top < 0 {
				t.Fatalf("%dx%d: column %d has no ground", width, height, x)
			}
			if tt := w.Tile(x, top).Type; tt != world.Grass && tt != world.Stone {
				t.Fatalf("%dx%d: column %d surface tile is %s", width, height, x, tt)
			}
			for y := top + 1; y < height; y++ {
				tile := w.Tile(x, y)
				if !tile.Active || (tile.Type != world.Dirt && tile.Type != world.Stone) {
					t.Fatalf("%dx%d: column %d row %d is %v", width, height, x, y, tile)
				}
			}
		}
	}
}

func TestGeneratePrefix_ColumnsLayering(t *testing.T) {
	w := world.New(256, 128)
	GeneratePrefix(w, 42, DefaultConfig(), 1)

	for x := 0; x < 256; x++ {
		top := -1
		for y := 0; y < 128; y++ {
			if w.Tile(x, y).Active {
				top = y
				break
			}
		}
		if top < 0 {
			t.Fatalf("column %d has no ground", x)
		}
		if tt := w.Tile(x, top).Type; tt != world.Grass && tt != world.Stone {
			t.Fatalf("column %d surface tile is %s", x, tt)
		}
		for y := top + 1; y < 128; y++ {
			tile := w.Tile(x, y)
			if !tile.Active || (tile.Type != world.Dirt && tile.Type != world.Stone) {
				t.Fatalf("column %d row %d below surface is %v", x, y, tile)
			}
		}
	}
}

func TestGeneratePrefix_CavesCarve(t *testing.T) {
	cfg := DefaultConfig()
	before := world.New(256, 128)
	after := world.New(256, 128)
	GeneratePrefix(before, 42, cfg, 1)
	GeneratePrefix(after, 42, cfg, 2)
	if before.Digest() == after.Digest() {
		t.Fatal("cave stage changed nothing on a 256x128 world")
	}
	if after.Census()[world.Air] <= before.Census()[world.Air] {
		t.Fatal("cave stage did not add air")
	}
}

func TestGenerate_DragonDenScenario(t *testing.T) {
	w := world.New(256, 128)
	Generate(w, 42, DefaultConfig())

	den := FindDen(w, 42)
	if !den.Valid() {
		t.Fatal("256x128 world should hold a den")
	}
	if den.RadiusX != 28 {
		t.Errorf("RadiusX=%d want 28", den.RadiusX)
	}
	if den.RadiusY != 10 {
		t.Errorf("RadiusY=%d want 10", den.RadiusY)
	}
	if den.CenterY < 83 || den.CenterY > 112 {
		t.Errorf("CenterY=%d outside [83,112]", den.CenterY)
	}
	if den.CenterX < den.RadiusX+6 || den.CenterX > 256-den.RadiusX-6 {
		t.Errorf("CenterX=%d too close to an edge", den.CenterX)
	}

	if w.Census()[world.GoldOre] == 0 {
		t.Error("no gold anywhere despite a carved den")
	}

	// Inspect the chamber before trees run; a canopy may drape leaves into
	// any open space near the surface.
	carved := world.New(256, 128)
	GeneratePrefix(carved, 42, DefaultConfig(), 4)
	if tile := carved.Tile(den.CenterX, den.CenterY); tile.Type != world.Air || tile.Active {
		t.Errorf("den center is %v, want open air", tile)
	}
}

func TestFindDen_PureFunction(t *testing.T) {
	w := world.New(256, 128)
	before := FindDen(w, 42)

	Generate(w, 42, DefaultConfig())
	after := FindDen(w, 42)
	if before != after {
		t.Fatalf("FindDen changed across generation: %+v vs %+v", before, after)
	}

	w2 := world.New(256, 128)
	cfg := DefaultConfig()
	cfg.CaveDensity = 2.5
	cfg.TreeDensity = 0.3
	Generate(w2, 42, cfg)
	if got := FindDen(w2, 42); got != before {
		t.Fatalf("FindDen depends on config: %+v vs %+v", got, before)
	}
}
