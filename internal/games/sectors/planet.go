package sectors

import (
	"github.com/vovakirdan/void-sectors/internal/core"
)

// planetNames is indexed by planet type. The black hole has no name.
var planetNames = [...]string{
	"Flarvis 5OW", "Sporia QR5", "Anides", "Saturn", "Earth",
	"Zumia", "Neptune", "Pluto", "Kestoia", "Xaglara",
}

// inspectionPose is where a planet sits while it is being inspected.
var inspectionPose = core.Vec3{X: 0, Y: 0.2, Z: 2}

// Planet is a resource node occupying one grid tile.
type Planet struct {
	Name string
	Type int

	Pos       core.Vec3 // Camera space
	Axis      core.Vec3
	Angle     float64
	SpinSpeed float64 // Radians per second

	Tile core.Rect // World-space tile the player must overlap

	Energy  int
	Science int
	Visited bool

	Texture core.TextureHandle
}

// Update spins the planet.
func (p *Planet) Update(dt float64) {
	p.Angle += p.SpinSpeed * dt
}

// Depleted reports whether both resource pools are empty.
func (p *Planet) Depleted() bool {
	return p.Energy == 0 && p.Science == 0
}
