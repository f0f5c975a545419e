package gen

import (
	"math"

	"terracraft/internal/sim/world"
)

type oreTier struct {
	name           string
	tile           world.TileType
	bandLo, bandHi float64 // depth band as fractions of world height
	minVeins       int
	columnsPerVein int // one vein per this many columns, before density scaling
	lenMin, lenMax int
	radMin, radMax int
}

// Tier order is load-bearing: tiers run top to bottom and veins never replace
// ore already placed, so the first walk to reach a contested band-overlap
// cell keeps it.
var oreTiers = []oreTier{
	{"copper", world.CopperOre, 0.30, 0.60, 4, 24, 24, 48, 1, 2},
	{"iron", world.IronOre, 0.55, 0.88, 3, 32, 20, 40, 1, 2},
	{"gold", world.GoldOre, 0.78, 0.98, 2, 48, 14, 30, 1, 2},
}

// placeOres runs worm-style vein walks per tier. Unlike cave carving the
// disks replace material instead of removing it, and only active stone or
// dirt: caves stay open and ore never eats other ore.
func placeOres(w *world.World, seed uint32, cfg Config) {
	width, height := w.Width(), w.Height()
	if width < caveMinWorldDim || height < caveMinWorldDim {
		return
	}

	rng := NewStream(seed, saltOres)
	for _, tier := range oreTiers {
		bandTop := int(tier.bandLo * float64(height))
		bandBot := minInt(int(tier.bandHi*float64(height)), height-1)
		if bandBot <= bandTop {
			continue
		}

		divisor := maxInt(4, int(math.Round(float64(tier.columnsPerVein)/cfg.OreDensity)))
		count := maxInt(tier.minVeins, int(math.Round(float64(width)/float64(divisor))))
		for v := 0; v < count; v++ {
			placeVein(w, rng, tier, bandTop, bandBot)
		}
	}
}

func placeVein(w *world.World, rng *Stream, tier oreTier, bandTop, bandBot int) {
	width := w.Width()
	x := float64(1 + rng.IntN(width-2))
	y := float64(bandTop + rng.IntN(bandBot-bandTop+1))
	angle := rng.Range(0, 2*math.Pi)
	radius := float64(rng.IntRange(tier.radMin, tier.radMax))
	length := rng.IntRange(tier.lenMin, tier.lenMax)

	for step := 0; step < length; step++ {
		oreDisk(w, int(x), int(y), int(radius), tier.tile)

		x += math.Cos(angle) * 1.5
		y += math.Sin(angle) * 1.2
		angle += rng.Range(-0.35, 0.35)
		radius = clampF(radius+rng.Range(-0.4, 0.4), float64(tier.radMin), float64(tier.radMax))

		if x < 1 || x > float64(width-1) {
			break
		}
		if y < float64(bandTop) || y > float64(bandBot) {
			break
		}
	}
}

// oreDisk replaces active stone/dirt inside the disk with the tier's ore.
func oreDisk(w *world.World, cx, cy, r int, ore world.TileType) {
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
			t := w.Tile(x, y)
			if !t.Active || (t.Type != world.Stone && t.Type != world.Dirt) {
				continue
			}
			w.SetTileType(x, y, ore)
		}
	}
}
