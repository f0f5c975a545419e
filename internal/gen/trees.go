package gen

import (
	"math"

	"terracraft/internal/sim/world"
)

const (
	treeMinWorldWidth    = 8
	treeSideMargin       = 3
	treeMinHeight        = 5
	treeMaxHeight        = 9
	treeMaxNeighborSlope = 3
)

// scatterTrees walks the surface left to right, attempting a tree placement
// after a randomized cooldown gap. A successful placement redraws a fresh
// gap; a failure retries on the very next column.
func scatterTrees(w *world.World, surface []int, rng *Stream, cfg Config) {
	width, height := w.Width(), w.Height()
	if width < treeMinWorldWidth {
		return
	}

	density := math.Max(0.2, cfg.TreeDensity)
	gapMin := maxInt(2, int(math.Round(4/density)))
	gapMax := maxInt(gapMin+2, int(math.Round(9/density)))

	for x := treeSideMargin; x < width-treeSideMargin; {
		if treeCandidate(surface, x, height) && placeTree(w, rng, x, surface[x]) {
			x += rng.IntRange(gapMin, gapMax)
		} else {
			x++
		}
	}
}

// treeCandidate filters columns by altitude and local slope before any grid
// state is inspected.
func treeCandidate(surface []int, x, height int) bool {
	y := surface[x]
	if y < 6 || y > height-12 {
		return false
	}
	if absInt(surface[x-1]-y) > treeMaxNeighborSlope {
		return false
	}
	if absInt(surface[x+1]-y) > treeMaxNeighborSlope {
		return false
	}
	return true
}

// placeTree validates the spot and, only then, writes the trunk and canopy.
// Any failed precondition abandons the attempt without touching the grid.
func placeTree(w *world.World, rng *Stream, x, surfaceY int) bool {
	h := rng.IntRange(treeMinHeight, treeMaxHeight)
	if surfaceY-h < 0 || surfaceY+1 >= w.Height() {
		return false
	}

	ground := w.Tile(x, surfaceY)
	if !ground.Active || (ground.Type != world.Grass && ground.Type != world.Dirt) {
		return false
	}
	below := w.Tile(x, surfaceY+1)
	if !below.Active || below.Type != world.Dirt {
		return false
	}
	for y := surfaceY - 1; y >= surfaceY-h; y-- {
		if w.Tile(x, y).Active {
			return false
		}
	}

	for y := surfaceY - 1; y >= surfaceY-h; y-- {
		w.SetTile(x, y, world.TreeTrunk, true)
	}

	// Canopy disk centered one row above the trunk top. It fills empty cells
	// and merges with neighboring canopies, but never eats trunk or terrain.
	canopyY := surfaceY - h - 1
	radius := maxInt(2, h/3)
	width, height := w.Width(), w.Height()
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			cx, cy := x+dx, canopyY+dy
			if cx < 0 || cx >= width || cy < 0 || cy >= height {
				continue
			}
			t := w.Tile(cx, cy)
			if t.Active && t.Type != world.TreeLeaves {
				continue
			}
			w.SetTile(cx, cy, world.TreeLeaves, true)
		}
	}
	return true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
