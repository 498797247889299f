package core

// TextureHandle identifies a loaded 2D image. The zero value is invalid.
type TextureHandle int

// MeshHandle identifies a loaded 3D mesh. The zero value is invalid.
type MeshHandle int

// SoundHandle identifies a loaded sound. The zero value is invalid.
type SoundHandle int

// Valid reports whether the handle refers to a loaded texture.
func (h TextureHandle) Valid() bool { return h > 0 }

// Valid reports whether the handle refers to a loaded mesh.
func (h MeshHandle) Valid() bool { return h > 0 }

// Valid reports whether the handle refers to a loaded sound.
func (h SoundHandle) Valid() bool { return h > 0 }
