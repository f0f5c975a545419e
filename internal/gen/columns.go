package gen

import (
	"math"

	"terracraft/internal/sim/world"
)

// transitionExtra is how far the mixed dirt/stone band extends below the soil.
const transitionExtra = 18

// paintColumn fills one vertical slice: air above the surface, a grass (or
// peak stone) cap, randomized dirt soil, a mixed transition band, then stone
// to the bottom. Every material write marks the tile active; air stays
// inactive so later stages can tell ground from sky.
func paintColumn(w *world.World, x, surfaceY int, seed uint32, cfg Config) {
	height := w.Height()
	// maxInt keeps the range valid on height-1 grids, where the surface tile
	// is the whole column.
	surfaceY = clampInt(surfaceY, 0, maxInt(0, height-2))

	soilMin := maxInt(6, int(math.Round(16*cfg.SoilDepthScale)))
	soilMax := maxInt(soilMin+4, int(math.Round(28*cfg.SoilDepthScale)))
	soilDepth := soilMin + int(Hash(x*37, seed+saltColumns)*float64(soilMax-soilMin+1))
	transitionDepth := soilDepth + transitionExtra

	for y := 0; y < surfaceY; y++ {
		w.SetTile(x, y, world.Air, false)
	}

	// Mountain peaks sometimes expose bare stone instead of grass.
	surfaceType := world.Grass
	if surfaceY <= height/6 && Hash2(x, surfaceY, seed+saltPeaks) > 0.7 {
		surfaceType = world.Stone
	}
	w.SetTile(x, surfaceY, surfaceType, true)

	for y := surfaceY + 1; y < height; y++ {
		depth := y - surfaceY
		switch {
		case depth <= soilDepth:
			w.SetTile(x, y, world.Dirt, true)
		case depth <= transitionDepth:
			if Hash2(x, y, seed+saltTransition) > 0.35 {
				w.SetTile(x, y, world.Stone, true)
			} else {
				w.SetTile(x, y, world.Dirt, true)
			}
		default:
			w.SetTile(x, y, world.Stone, true)
		}
	}
}
