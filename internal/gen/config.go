package gen

// Config holds the generation knobs. Out-of-range values are clamped, never
// rejected: Generate must produce a world for any (width>0, height>0, seed).
type Config struct {
	// TerrainAmplitude scales the fine surface perturbation. Clamped to [0.2,2.0].
	TerrainAmplitude float64
	// SoilDepthScale scales both bounds of the per-column dirt layer. Clamped to [0.4,2.0].
	SoilDepthScale float64
	// CaveDensity scales worm count and length. Clamped to [0.3,2.5].
	CaveDensity float64
	// OreDensity scales vein count up and vein spacing down. Clamped to [0.3,2.5].
	OreDensity float64
	// TreeDensity inverse-scales the gap between tree attempts. Must be >0.
	TreeDensity float64
}

func DefaultConfig() Config {
	return Config{
		TerrainAmplitude: 1.0,
		SoilDepthScale:   1.0,
		CaveDensity:      1.0,
		OreDensity:       1.0,
		TreeDensity:      1.0,
	}
}

// Clamped returns a copy with every knob forced into its valid range.
func (c Config) Clamped() Config {
	c.TerrainAmplitude = clampF(c.TerrainAmplitude, 0.2, 2.0)
	c.SoilDepthScale = clampF(c.SoilDepthScale, 0.4, 2.0)
	c.CaveDensity = clampF(c.CaveDensity, 0.3, 2.5)
	c.OreDensity = clampF(c.OreDensity, 0.3, 2.5)
	if c.TreeDensity <= 0 {
		c.TreeDensity = 1.0
	}
	return c
}
