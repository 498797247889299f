package assets

import (
	"fmt"

	"github.com/vovakirdan/void-sectors/internal/core"
)

// Sheet is a core.Loader backed by a Manifest. Handles are assigned in load
// order starting at 1; loading the same path twice returns the same handle.
type Sheet struct {
	manifest Manifest

	texByPath   map[string]core.TextureHandle
	meshByPath  map[string]core.MeshHandle
	soundByPath map[string]core.SoundHandle

	textures []Sprite
	meshes   []Mesh
	sounds   []Cue
}

// NewSheet creates a loader over the given manifest.
func NewSheet(m Manifest) *Sheet {
	return &Sheet{
		manifest:    m,
		texByPath:   make(map[string]core.TextureHandle),
		meshByPath:  make(map[string]core.MeshHandle),
		soundByPath: make(map[string]core.SoundHandle),
	}
}

// LoadTexture resolves a texture path to a handle.
func (s *Sheet) LoadTexture(path string) (core.TextureHandle, error) {
	if h, ok := s.texByPath[path]; ok {
		return h, nil
	}
	spec, ok := s.manifest.Textures[path]
	if !ok {
		return 0, fmt.Errorf("assets: texture %s: %w", path, ErrNotFound)
	}
	sprite, err := spec.resolve(path)
	if err != nil {
		return 0, err
	}
	s.textures = append(s.textures, sprite)
	h := core.TextureHandle(len(s.textures))
	s.texByPath[path] = h
	return h, nil
}

// LoadMesh resolves a mesh path to a handle.
func (s *Sheet) LoadMesh(path string) (core.MeshHandle, error) {
	if h, ok := s.meshByPath[path]; ok {
		return h, nil
	}
	spec, ok := s.manifest.Meshes[path]
	if !ok {
		return 0, fmt.Errorf("assets: mesh %s: %w", path, ErrNotFound)
	}
	shape := spec.Shape
	if shape == "" {
		shape = ShapeRect
	}
	radius := spec.Radius
	if radius <= 0 {
		radius = 1
	}
	s.meshes = append(s.meshes, Mesh{Path: path, Shape: shape, Radius: radius})
	h := core.MeshHandle(len(s.meshes))
	s.meshByPath[path] = h
	return h, nil
}

// LoadSound resolves a sound path to a handle.
func (s *Sheet) LoadSound(path string) (core.SoundHandle, error) {
	if h, ok := s.soundByPath[path]; ok {
		return h, nil
	}
	cue, ok := s.manifest.Sounds[path]
	if !ok {
		return 0, fmt.Errorf("assets: sound %s: %w", path, ErrNotFound)
	}
	cue.Path = path
	s.sounds = append(s.sounds, cue)
	h := core.SoundHandle(len(s.sounds))
	s.soundByPath[path] = h
	return h, nil
}

// Texture returns the sprite behind a handle.
func (s *Sheet) Texture(h core.TextureHandle) (Sprite, bool) {
	if !h.Valid() || int(h) > len(s.textures) {
		return Sprite{}, false
	}
	return s.textures[h-1], true
}

// Mesh returns the mesh behind a handle.
func (s *Sheet) Mesh(h core.MeshHandle) (Mesh, bool) {
	if !h.Valid() || int(h) > len(s.meshes) {
		return Mesh{}, false
	}
	return s.meshes[h-1], true
}

// Sound returns the cue behind a handle.
func (s *Sheet) Sound(h core.SoundHandle) (Cue, bool) {
	if !h.Valid() || int(h) > len(s.sounds) {
		return Cue{}, false
	}
	return s.sounds[h-1], true
}
