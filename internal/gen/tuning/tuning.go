// Package tuning loads worldgen preset files. Presets are named Config
// bundles; the file is schema-validated so a typoed knob fails at load time
// instead of silently generating a default world.
package tuning

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"terracraft/internal/gen"
)

//go:embed worldgen.schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("worldgen.schema.json", schemaJSON)

type Preset struct {
	Name             string  `yaml:"name" json:"name"`
	TerrainAmplitude float64 `yaml:"terrain_amplitude" json:"terrain_amplitude,omitempty"`
	SoilDepthScale   float64 `yaml:"soil_depth_scale" json:"soil_depth_scale,omitempty"`
	CaveDensity      float64 `yaml:"cave_density" json:"cave_density,omitempty"`
	OreDensity       float64 `yaml:"ore_density" json:"ore_density,omitempty"`
	TreeDensity      float64 `yaml:"tree_density" json:"tree_density,omitempty"`
}

type File struct {
	DefaultPreset string   `yaml:"default_preset" json:"default_preset,omitempty"`
	Presets       []Preset `yaml:"presets" json:"presets"`
}

// Load reads a preset file. An empty path yields a file containing only the
// built-in default preset.
func Load(path string) (File, error) {
	if strings.TrimSpace(path) == "" {
		f := File{DefaultPreset: "default", Presets: []Preset{defaultPreset()}}
		return f, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	if err := validate(raw); err != nil {
		return File{}, fmt.Errorf("worldgen presets: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("worldgen presets: %w", err)
	}
	f.Normalize()
	if err := f.check(); err != nil {
		return File{}, fmt.Errorf("worldgen presets: %w", err)
	}
	return f, nil
}

// validate checks the raw document before it is bound to the struct, so
// misspelled knobs fail loudly instead of being dropped. The yaml tree is
// round-tripped through JSON so the schema sees plain decoded values.
func validate(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var jsonDoc any
	if err := json.Unmarshal(b, &jsonDoc); err != nil {
		return err
	}
	return schema.Validate(jsonDoc)
}

func defaultPreset() Preset {
	return Preset{
		Name:             "default",
		TerrainAmplitude: 1.0,
		SoilDepthScale:   1.0,
		CaveDensity:      1.0,
		OreDensity:       1.0,
		TreeDensity:      1.0,
	}
}

// Normalize fills unset knobs with 1.0 and picks a default preset when the
// file names none. The schema rejects explicit zeros, so a zero field here
// can only mean the key was omitted.
func (f *File) Normalize() {
	for i := range f.Presets {
		p := &f.Presets[i]
		if p.TerrainAmplitude == 0 {
			p.TerrainAmplitude = 1.0
		}
		if p.SoilDepthScale == 0 {
			p.SoilDepthScale = 1.0
		}
		if p.CaveDensity == 0 {
			p.CaveDensity = 1.0
		}
		if p.OreDensity == 0 {
			p.OreDensity = 1.0
		}
		if p.TreeDensity == 0 {
			p.TreeDensity = 1.0
		}
	}
	if f.DefaultPreset == "" && len(f.Presets) > 0 {
		f.DefaultPreset = f.Presets[0].Name
	}
}

func (f *File) check() error {
	seen := map[string]bool{}
	for _, p := range f.Presets {
		if seen[p.Name] {
			return fmt.Errorf("duplicate preset %q", p.Name)
		}
		seen[p.Name] = true
	}
	if !seen[f.DefaultPreset] {
		return fmt.Errorf("default preset %q not defined", f.DefaultPreset)
	}
	return nil
}

// Config resolves a preset name to a clamped generator config. An empty name
// resolves the file's default preset.
func (f File) Config(name string) (gen.Config, error) {
	if name == "" {
		name = f.DefaultPreset
	}
	for _, p := range f.Presets {
		if p.Name == name {
			return gen.Config{
				TerrainAmplitude: p.TerrainAmplitude,
				SoilDepthScale:   p.SoilDepthScale,
				CaveDensity:      p.CaveDensity,
				OreDensity:       p.OreDensity,
				TreeDensity:      p.TreeDensity,
			}.Clamped(), nil
		}
	}
	return gen.Config{}, fmt.Errorf("unknown preset %q", name)
}
