package gen

import "terracraft/internal/sim/world"

// StageNames lists the pipeline stages in execution order. The order is
// load-bearing: every stage after the first consumes the mutated grid, and
// reordering changes every downstream random draw.
var StageNames = []string{"columns", "caves", "ores", "den", "trees"}

// Generate fills the grid in place: paint columns, carve caves, place ores,
// carve the dragon den, scatter trees. It is a pure function of
// (width, height, seed, config) and never resizes the world.
func Generate(w *world.World, seed uint32, cfg Config) {
	GeneratePrefix(w, seed, cfg, len(StageNames))
}

// GeneratePrefix runs only the first n pipeline stages, so tests can inspect
// intermediate grid state (soil layering before caves, caves before ore).
func GeneratePrefix(w *world.World, seed uint32, cfg Config, n int) {
	cfg = cfg.Clamped()
	width, height := w.Width(), w.Height()

	surface := buildSurface(width, height, seed, cfg)
	for x := range surface {
		// Uniform sky-band shift; the builder's lower clamp guarantees this
		// never goes negative.
		surface[x] -= height / 8
	}

	stages := []func(){
		func() {
			for x := 0; x < width; x++ {
				paintColumn(w, x, surface[x], seed, cfg)
			}
		},
		func() { carveCaves(w, seed, cfg) },
		func() { placeOres(w, seed, cfg) },
		func() { carveDen(w, seed, FindDen(w, seed)) },
		func() {
			rng := NewStream(uint32(width*977+height*131)+seed, saltTrees)
			scatterTrees(w, surface, rng, cfg)
		},
	}
	if n > len(stages) {
		n = len(stages)
	}
	for i := 0; i < n; i++ {
		stages[i]()
	}
}
