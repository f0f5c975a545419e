package gen

import "testing"

func TestBuildSurface_RowsInRange(t *testing.T) {
	cfg := DefaultConfig()
	for _, seed := range []uint32{0, 1, 42, 12345} {
		for _, dims := range [][2]int{{64, 64}, {256, 128}, {400, 200}, {1000, 300}} {
			width, height := dims[0], dims[1]
			surface := buildSurface(width, height, seed, cfg)
			if len(surface) != width {
				t.Fatalf("seed=%d %dx%d: len=%d", seed, width, height, len(surface))
			}
			lo, hi := height/8, height*5/6
			for x, y := range surface {
				if y < lo || y > hi {
					t.Fatalf("seed=%d %dx%d: surface[%d]=%d outside [%d,%d]",
						seed, width, height, x, y, lo, hi)
				}
			}
		}
	}
}

func TestBuildSurface_SlopeBounded(t *testing.T) {
	for _, seed := range []uint32{0, 7, 42, 9001} {
		for _, amp := range []float64{0.2, 1.0, 2.0} {
			cfg := DefaultConfig()
			cfg.TerrainAmplitude = amp
			surface := buildSurface(600, 256, seed, cfg)
			for x := 1; x < len(surface); x++ {
				d := surface[x] - surface[x-1]
				if d > maxSurfaceStep || d < -maxSurfaceStep {
					t.Fatalf("seed=%d amp=%v: step %d at x=%d exceeds %d",
						seed, amp, d, x, maxSurfaceStep)
				}
			}
		}
	}
}

func TestBuildSurface_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	a := buildSurface(300, 150, 42, cfg)
	b := buildSurface(300, 150, 42, cfg)
	for x := range a {
		if a[x] != b[x] {
			t.Fatalf("surface differs at x=%d: %d vs %d", x, a[x], b[x])
		}
	}
}
