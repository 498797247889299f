package sectors

import (
	"time"

	"github.com/vovakirdan/void-sectors/internal/config"
)

// NumSlots is the number of ability slots on every ship.
const NumSlots = 3

// Ability is an immutable attack preset.
type Ability struct {
	Name        string
	Cooldown    time.Duration
	Damage      int
	Speed       float64
	Visual      int // Rocket texture index
	ScienceCost int
	Size        float64
}

// AbilitySet is the ordered slot set carried by a ship.
type AbilitySet [NumSlots]Ability

// abilitySet builds a slot set from catalog entries. Missing entries stay zero.
func abilitySet(specs []config.AbilitySpec) AbilitySet {
	var set AbilitySet
	for i := 0; i < NumSlots && i < len(specs); i++ {
		s := specs[i]
		set[i] = Ability{
			Name:        s.Name,
			Cooldown:    s.Cooldown,
			Damage:      s.Damage,
			Speed:       s.Speed,
			Visual:      s.Visual,
			ScienceCost: s.ScienceCost,
			Size:        s.Size,
		}
	}
	return set
}

// enemySlotCeiling returns the highest slot an enemy may fire in a sector.
// One slot unlocks every ten sectors, capped at the last slot.
func enemySlotCeiling(sector int) int {
	top := sector / 10
	if top > NumSlots-1 {
		top = NumSlots - 1
	}
	if top < 0 {
		top = 0
	}
	return top
}
