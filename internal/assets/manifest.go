// Package assets resolves the asset paths the simulation asks for into
// terminal sprites and synthesized sound cues. The manifest plays the part
// of the texture, mesh and sound files a graphical build would load.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/void-sectors/internal/core"
)

// ErrNotFound is returned when a path has no manifest entry.
var ErrNotFound = errors.New("assets: not found")

//go:embed defaults/manifest.yaml
var defaultManifestYAML []byte

// Pattern selects how a sprite fills its box.
type Pattern string

const (
	PatternSolid Pattern = "solid" // Every cell gets the glyph
	PatternStars Pattern = "stars" // Sparse, stable starfield
	PatternFrame Pattern = "frame" // Outline only
)

// SpriteSpec describes how a texture is drawn in the terminal.
type SpriteSpec struct {
	Glyph   string  `yaml:"glyph"`
	Color   string  `yaml:"color"`
	Pattern Pattern `yaml:"pattern"`
	Density float64 `yaml:"density"` // Fraction of lit cells for the stars pattern
}

// Sprite is a resolved SpriteSpec.
type Sprite struct {
	Path    string
	Glyph   rune
	Color   core.Color
	Pattern Pattern
	Density float64
}

// Shape selects how a mesh is projected.
type Shape string

const (
	ShapeDisc Shape = "disc"
	ShapeRect Shape = "rect"
)

// MeshSpec describes a mesh.
type MeshSpec struct {
	Shape  Shape   `yaml:"shape"`
	Radius float64 `yaml:"radius"` // Model-space radius
}

// Mesh is a resolved MeshSpec.
type Mesh struct {
	Path   string
	Shape  Shape
	Radius float64
}

// Wave selects an oscillator shape.
type Wave string

const (
	WaveSine   Wave = "sine"
	WaveSquare Wave = "square"
	WaveSaw    Wave = "saw"
	WaveNoise  Wave = "noise"
)

// Cue describes a synthesized sound: a sequence of notes played with one
// oscillator, each shaped by an attack/release envelope.
type Cue struct {
	Path    string        `yaml:"-"`
	Wave    Wave          `yaml:"wave"`
	Notes   []float64     `yaml:"notes"` // Frequencies in Hz; 0 is a rest
	Note    time.Duration `yaml:"note"`  // Duration of each note
	Attack  time.Duration `yaml:"attack"`
	Release time.Duration `yaml:"release"`
	Gain    float64       `yaml:"gain"`
}

// Length returns the duration of one pass over the cue.
func (c Cue) Length() time.Duration {
	return c.Note * time.Duration(len(c.Notes))
}

// Manifest maps asset paths to their terminal equivalents.
type Manifest struct {
	Textures map[string]SpriteSpec `yaml:"textures"`
	Meshes   map[string]MeshSpec   `yaml:"meshes"`
	Sounds   map[string]Cue        `yaml:"sounds"`
}

// DefaultManifest returns the embedded manifest.
func DefaultManifest() (Manifest, error) {
	return ParseManifest(defaultManifestYAML)
}

// ParseManifest decodes and validates a manifest document.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("assets: failed to parse manifest: %w", err)
	}
	for path, spec := range m.Textures {
		if _, err := spec.resolve(path); err != nil {
			return Manifest{}, err
		}
	}
	for path, cue := range m.Sounds {
		if len(cue.Notes) == 0 || cue.Note <= 0 {
			return Manifest{}, fmt.Errorf("assets: sound %s: needs notes and a note duration", path)
		}
	}
	return m, nil
}

func (s SpriteSpec) resolve(path string) (Sprite, error) {
	glyph := []rune(s.Glyph)
	if len(glyph) != 1 {
		return Sprite{}, fmt.Errorf("assets: texture %s: glyph must be one character, got %q", path, s.Glyph)
	}
	color, ok := core.ParseColor(s.Color)
	if !ok && s.Color != "" {
		return Sprite{}, fmt.Errorf("assets: texture %s: unknown color %q", path, s.Color)
	}
	pattern := s.Pattern
	if pattern == "" {
		pattern = PatternSolid
	}
	return Sprite{
		Path:    path,
		Glyph:   glyph[0],
		Color:   color,
		Pattern: pattern,
		Density: s.Density,
	}, nil
}
