package sectors

import (
	"time"

	"github.com/vovakirdan/void-sectors/internal/core"
)

// Kind tags a ship for logging and display. Behavior is driven by the
// ship's abilities and flags, not by its kind.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindElite
	KindMinion
	KindBoss
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindElite:
		return "elite"
	case KindMinion:
		return "minion"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Ship is the single entity shape shared by the player, enemies and bosses.
type Ship struct {
	Kind Kind

	Pos  core.Vec2
	Dest core.Vec2
	Size core.Vec2

	Speed    float64
	MaxSpeed float64
	Angle    float64

	Energy    int
	MaxEnergy int
	Science   int

	Abilities AbilitySet
	LastShot  [NumSlots]time.Duration

	// Cooldown rate-limits any two shots regardless of slot.
	Cooldown   time.Duration
	CooldownAt time.Duration

	Boss           bool
	SpawnedMinions bool
	LastHeal       time.Duration

	Texture core.TextureHandle
}

// shipSpec carries the constructor arguments of a ship.
type shipSpec struct {
	kind      Kind
	speed     float64
	pos       core.Vec2
	size      core.Vec2
	texture   core.TextureHandle
	energy    int // Starting and maximum energy
	abilities AbilitySet
	cooldown  time.Duration
	healEvery time.Duration
}

// newShip creates a ship whose cooldowns have all elapsed at now.
func newShip(spec shipSpec, now time.Duration) *Ship {
	s := &Ship{
		Kind:       spec.kind,
		Pos:        spec.pos,
		Dest:       spec.pos,
		Size:       spec.size,
		Speed:      spec.speed,
		MaxSpeed:   spec.speed,
		Energy:     spec.energy,
		MaxEnergy:  spec.energy,
		Abilities:  spec.abilities,
		Cooldown:   spec.cooldown,
		CooldownAt: now - spec.cooldown,
		LastHeal:   now - spec.healEvery,
		Boss:       spec.kind == KindBoss,
		Texture:    spec.texture,
	}
	for i, a := range s.Abilities {
		s.LastShot[i] = now - a.Cooldown
	}
	return s
}

// Alive reports whether the ship still has energy.
func (s *Ship) Alive() bool {
	return s.Energy > 0
}

// Rect returns the ship's bounding box.
func (s *Ship) Rect() core.Rect {
	return core.RectAround(s.Pos, s.Size)
}

// Facing returns the unit vector the ship points along.
func (s *Ship) Facing() core.Vec2 {
	return core.FromHeading(s.Angle)
}

// SetEnergy assigns energy clamped to [0, MaxEnergy].
func (s *Ship) SetEnergy(e int) {
	s.Energy = core.Clamp(e, 0, s.MaxEnergy)
}

// ApplyDamage subtracts damage from the ship's energy.
func (s *Ship) ApplyDamage(n int) {
	s.SetEnergy(s.Energy - n)
}

// MoveTowardDestination steers the ship toward Dest. Within threshold the
// ship does not move and keeps its angle. A step never passes Dest.
func (s *Ship) MoveTowardDestination(dt, threshold float64) {
	diff := s.Dest.Sub(s.Pos)
	dist := diff.Len()
	if dist <= threshold {
		return
	}
	dir := diff.Normalize()
	step := s.Speed * dt
	if step > dist {
		step = dist
	}
	s.Pos = s.Pos.Add(dir.Scale(step))
	s.Angle = core.Heading(dir)
}

// slotReady reports whether a slot's own cooldown has strictly elapsed.
func (s *Ship) slotReady(slot int, now time.Duration) bool {
	return now-s.LastShot[slot] > s.Abilities[slot].Cooldown
}

// sharedReady reports whether the shared cooldown has strictly elapsed.
func (s *Ship) sharedReady(now time.Duration) bool {
	return now-s.CooldownAt > s.Cooldown
}

// CanFire reports whether the ship may fire slot at now. Unknown slots
// never fire.
func (s *Ship) CanFire(slot int, now time.Duration) bool {
	if slot < 0 || slot >= NumSlots {
		return false
	}
	return s.Science >= s.Abilities[slot].ScienceCost && s.slotReady(slot, now)
}
