package core

// Surface receives the draw calls for one frame. Sprite positions are world
// pixels with the origin at the bottom-left and y growing up. Calls are
// collected and painted by descending z, so higher z values end up underneath.
// Text is an overlay painted after every sprite and model.
type Surface interface {
	// DrawSprite draws a textured quad of size w x h centered at (x, y),
	// rotated by angle radians.
	DrawSprite(tex TextureHandle, x, y, w, h float64, z int, angle float64)
	// DrawModel draws a textured mesh at a camera-space position, rotated
	// by angle radians around its spin axis.
	DrawModel(mesh MeshHandle, tex TextureHandle, pos Vec3, angle float64)
	// DrawText writes overlay text with its first character at (x, y).
	// Text coordinates are screen pixels with y growing down.
	DrawText(x, y float64, text string)
}

// Audio plays sound cues. Volume is linear in [0, 1]. Implementations that
// cannot reach an output device stay silent and never fail the caller.
type Audio interface {
	Play(sound SoundHandle, volume float64, loop bool)
	Stop(sound SoundHandle)
}

// Loader resolves asset paths to handles during startup.
type Loader interface {
	LoadTexture(path string) (TextureHandle, error)
	LoadMesh(path string) (MeshHandle, error)
	LoadSound(path string) (SoundHandle, error)
}

// TextMeasurer is implemented by surfaces that know how wide text renders,
// in screen pixels. Callers fall back to a fixed advance per character.
type TextMeasurer interface {
	TextWidth(text string) float64
}
