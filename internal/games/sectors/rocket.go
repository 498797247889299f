package sectors

import (
	"time"

	"github.com/vovakirdan/void-sectors/internal/core"
)

// Shooter identifies the faction that fired a rocket.
type Shooter int

const (
	ShooterPlayer Shooter = iota
	ShooterEnemy
)

// Rocket is a projectile. It flies until it hits or leaves the playfield,
// then lingers as an explosion before it is purged.
type Rocket struct {
	Pos   core.Vec2
	Size  core.Vec2
	Dir   core.Vec2 // Unit vector
	Angle float64
	Speed float64

	Damage  int
	Texture core.TextureHandle
	Shooter Shooter

	Exploded   bool
	ExplodedAt time.Duration
}

func newRocket(origin, dir core.Vec2, a Ability, tex core.TextureHandle, shooter Shooter) *Rocket {
	dir = dir.Normalize()
	return &Rocket{
		Pos:     origin,
		Size:    core.V2(a.Size, a.Size),
		Dir:     dir,
		Angle:   core.Heading(dir),
		Speed:   a.Speed,
		Damage:  a.Damage,
		Texture: tex,
		Shooter: shooter,
	}
}

// Rect returns the rocket's bounding box.
func (r *Rocket) Rect() core.Rect {
	return core.RectAround(r.Pos, r.Size)
}

// MoveInDirection advances the rocket unconditionally.
func (r *Rocket) MoveInDirection(dt float64) {
	r.Pos = r.Pos.Add(r.Dir.Scale(r.Speed * dt))
	r.Angle = core.Heading(r.Dir)
}

// explode stamps the explosion. A zero texture keeps the flight sprite.
func (r *Rocket) explode(now time.Duration, tex core.TextureHandle) {
	r.Exploded = true
	r.ExplodedAt = now
	if tex.Valid() {
		r.Texture = tex
	}
}

// OutOfBounds reports whether the rocket has left a w x h playfield by
// more than half its size.
func (r *Rocket) OutOfBounds(w, h float64) bool {
	mx, my := r.Size.X/2, r.Size.Y/2
	return r.Pos.X < -mx || r.Pos.X > w+mx || r.Pos.Y < -my || r.Pos.Y > h+my
}

// Expired reports whether an exploded rocket has lingered strictly longer
// than linger.
func (r *Rocket) Expired(now, linger time.Duration) bool {
	return r.Exploded && now-r.ExplodedAt > linger
}
