package gen

import "math"

const (
	// controlSpacing is the distance between coarse height control points.
	controlSpacing = 192

	surfaceMinNorm = 0.12
	surfaceMaxNorm = 0.85

	// maxSurfaceStep is the sheer-cliff limit between adjacent columns.
	maxSurfaceStep = 16
)

// buildSurface returns one ground row per column, measured from the top of
// the grid: a coarse interpolated base, octave perturbation scaled by the
// amplitude knob, two blur passes, and a slope clamp. The orchestrator
// applies the uniform sky-band shift afterwards, not this builder.
func buildSurface(width, height int, seed uint32, cfg Config) []int {
	surface := make([]int, width)
	if width == 0 {
		return surface
	}

	// Coarse control points: two very-low-frequency signals ("broad" swells
	// and flat-topped "mesa" offsets) combined into a normalized base height.
	numCP := width/controlSpacing + 2
	cps := make([]float64, numCP)
	for i := range cps {
		cx := float64(i * controlSpacing)
		broad := Octave(cx, seed+saltBroad, 1.0/640, 3)
		mesa := Octave(cx, seed+saltMesa, 1.0/288, 2)
		cps[i] = surfaceMinNorm + broad*0.55 + mesa*0.18
	}

	phase := Hash(int(int32(seed)), saltRidge) * 2 * math.Pi
	norm := make([]float64, width)
	for x := 0; x < width; x++ {
		i := x / controlSpacing
		t := float64(x%controlSpacing) / controlSpacing
		h := cps[i]*(1-t) + cps[i+1]*t

		fx := float64(x)
		continental := (Octave(fx, seed+saltContinental, 1.0/512, 4) - 0.5) * 0.10
		rolling := (Octave(fx, seed+saltRolling, 1.0/56, 4) - 0.5) * 0.05
		ridge := math.Sin(fx*0.0085+phase) * 0.018
		h += (continental + rolling + ridge) * cfg.TerrainAmplitude

		norm[x] = clampF(h, surfaceMinNorm, surfaceMaxNorm)
	}

	lo := height / 8
	hi := height * 5 / 6
	for x := 0; x < width; x++ {
		surface[x] = clampInt(int(norm[x]*float64(height)), lo, hi)
	}

	// Two 3-tap box-blur passes remove single-column jaggedness.
	blurred := make([]int, width)
	for pass := 0; pass < 2; pass++ {
		for x := 0; x < width; x++ {
			l := surface[maxInt(x-1, 0)]
			r := surface[minInt(x+1, width-1)]
			blurred[x] = (l + 2*surface[x] + r) / 4
		}
		copy(surface, blurred)
	}

	// Left-to-right pass caps each column's delta from its left neighbor.
	for x := 1; x < width; x++ {
		d := surface[x] - surface[x-1]
		if d > maxSurfaceStep {
			surface[x] = surface[x-1] + maxSurfaceStep
		} else if d < -maxSurfaceStep {
			surface[x] = surface[x-1] - maxSurfaceStep
		}
	}
	return surface
}
