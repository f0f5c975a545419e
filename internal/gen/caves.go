package gen

import (
	"math"

	"terracraft/internal/sim/world"
)

const (
	caveMinWorldDim = 16
	caveSideMargin  = 4
)

// carveCaves runs independent worm walks that remove material along wandering
// tunnels. All worms draw from one stage stream, so the worm count itself is
// part of the reproducibility contract.
func carveCaves(w *world.World, seed uint32, cfg Config) {
	width, height := w.Width(), w.Height()
	if width < caveMinWorldDim || height < caveMinWorldDim {
		return
	}

	rng := NewStream(seed, saltCaves)
	wormCount := maxInt(1, int(math.Round(math.Max(3, float64(width)/32)*cfg.CaveDensity)))
	lenMin := maxInt(30, int(math.Round(80*cfg.CaveDensity)))
	lenMax := maxInt(lenMin+20, int(math.Round(200*cfg.CaveDensity)))

	for i := 0; i < wormCount; i++ {
		// Start somewhere in the lower two-thirds so worms do not shred the surface.
		x := float64(rng.IntN(width))
		y := float64(height/3 + rng.IntN(height-height/3))
		angle := rng.Range(0, 2*math.Pi)
		radius := rng.Range(2, 4)
		length := rng.IntRange(lenMin, lenMax)

		for step := 0; step < length; step++ {
			carveDisk(w, int(x), int(y), int(radius))

			x += math.Cos(angle) * 1.5
			y += math.Sin(angle) * 1.2
			angle += rng.Range(-0.35, 0.35)
			radius = clampF(radius+rng.Range(-0.4, 0.4), 1, 5)

			if x <= caveSideMargin || x >= float64(width-caveSideMargin) {
				break
			}
			if y < float64(height)/5 {
				break
			}
			if y >= float64(height-caveSideMargin) {
				// Bounce off the bottom instead of dying there.
				y = float64(height - caveSideMargin)
				if math.Sin(angle) > 0 {
					angle = -angle
				}
			}
		}
	}
}

// carveDisk clears a filled disk of air, clamped to the grid.
func carveDisk(w *world.World, cx, cy, r int) {
	if r < 1 {
		r = 1
	}
	width, height := w.Width(), w.Height()
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || x >= width || y < 0 || y >= height {
				continue
			}
			w.SetTile(x, y, world.Air, false)
		}
	}
}
