package gen

import (
	"math"

	"terracraft/internal/sim/world"
)

const (
	denMinWorldDim     = 40
	denShellInner      = 0.86
	denSatellites      = 7
	denSatelliteRadius = 3
)

// DenInfo locates the dragon den chamber. RadiusX/RadiusY of zero means the
// world is too small to hold one.
type DenInfo struct {
	CenterX int
	CenterY int
	RadiusX int
	RadiusY int
}

// Valid reports whether the world holds a den.
func (d DenInfo) Valid() bool { return d.RadiusX > 0 && d.RadiusY > 0 }

// FindDen is a pure function of (width, height, seed): gameplay queries it
// for locate commands and spawn logic whether or not carving has run, so its
// stream is derived independently of every other stage.
func FindDen(w *world.World, seed uint32) DenInfo {
	return denFor(w.Width(), w.Height(), seed)
}

func denFor(width, height int, seed uint32) DenInfo {
	if width < denMinWorldDim || height < denMinWorldDim {
		return DenInfo{}
	}
	rx := clampInt(width/9, 16, 32)
	ry := clampInt(height/14, 10, 22)

	rng := NewStream(seed^uint32(width*31)^uint32(height*131), saltDen)
	cx := rng.IntRange(rx+6, width-rx-6)
	cy := rng.IntRange(maxInt(int(0.65*float64(height)), ry+6), int(0.88*float64(height)))
	return DenInfo{CenterX: cx, CenterY: cy, RadiusX: rx, RadiusY: ry}
}

// carveDen hollows the elliptical chamber, lines its shell with gold, and
// scatters satellite gold clusters around it. Writes clamp to the grid and
// never touch the outermost ring of cells.
func carveDen(w *world.World, seed uint32, info DenInfo) {
	if !info.Valid() {
		return
	}
	width, height := w.Width(), w.Height()

	for dy := -info.RadiusY; dy <= info.RadiusY; dy++ {
		for dx := -info.RadiusX; dx <= info.RadiusX; dx++ {
			nx := float64(dx) / float64(info.RadiusX)
			ny := float64(dy) / float64(info.RadiusY)
			dist := math.Sqrt(nx*nx + ny*ny)
			if dist > 1 {
				continue
			}
			x, y := info.CenterX+dx, info.CenterY+dy
			if x < 1 || x >= width-1 || y < 1 || y >= height-1 {
				continue
			}
			if dist < denShellInner {
				w.SetTile(x, y, world.Air, false)
			} else {
				w.SetTile(x, y, world.GoldOre, true)
			}
		}
	}

	// Satellite clusters sit at roughly 60% of the major radius from center,
	// in any direction, and only convert tiles that are still active
	// material. Along the short axis that distance clears the chamber, so
	// most clusters land in live rock around it.
	rng := NewStream(seed^uint32(width*31)^uint32(height*131), saltDenClusters)
	for i := 0; i < denSatellites; i++ {
		a := rng.Range(0, 2*math.Pi)
		frac := 0.6 + rng.Range(-0.15, 0.15)
		cx := info.CenterX + int(math.Cos(a)*frac*float64(info.RadiusX))
		cy := info.CenterY + int(math.Sin(a)*frac*float64(info.RadiusX))
		for dy := -denSatelliteRadius; dy <= denSatelliteRadius; dy++ {
			for dx := -denSatelliteRadius; dx <= denSatelliteRadius; dx++ {
				if dx*dx+dy*dy > denSatelliteRadius*denSatelliteRadius {
					continue
				}
				x, y := cx+dx, cy+dy
				if x < 1 || x >= width-1 || y < 1 || y >= height-1 {
					continue
				}
				if !w.Tile(x, y).Active {
					continue
				}
				w.SetTileType(x, y, world.GoldOre)
			}
		}
	}
}
