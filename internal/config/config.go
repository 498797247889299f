// Package config provides YAML-based configuration loading and difficulty
// presets for the sector simulation.
package config

import "time"

// SectorsConfig contains every tunable of the simulation.
type SectorsConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Boss      BossConfig      `yaml:"boss"`
	Planets   PlanetConfig    `yaml:"planets"`
	Rockets   RocketConfig    `yaml:"rockets"`
	Abilities AbilityCatalog  `yaml:"abilities"`
	Audio     AudioConfig     `yaml:"audio"`
}

// PlayfieldConfig defines the world dimensions in world pixels.
type PlayfieldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Tiles         int     `yaml:"tiles"`          // Grid cells per axis; a tile is width/tiles wide
	NearThreshold float64 `yaml:"near_threshold"` // Distance under which a ship stops steering
}

// TileW returns the width of one grid cell.
func (p PlayfieldConfig) TileW() float64 {
	return p.Width / float64(p.Tiles)
}

// TileH returns the height of one grid cell.
func (p PlayfieldConfig) TileH() float64 {
	return p.Height / float64(p.Tiles)
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Speed        float64       `yaml:"speed"`
	StartEnergy  int           `yaml:"start_energy"`
	MaxEnergy    int           `yaml:"max_energy"`
	StartScience int           `yaml:"start_science"`
	HealCost     int           `yaml:"heal_cost"`
	HealAmount   int           `yaml:"heal_amount"`
	HealInterval time.Duration `yaml:"heal_interval"`
}

// EnemyConfig defines regular enemy ships and their chase behavior.
type EnemyConfig struct {
	Speed            float64       `yaml:"speed"`
	SpeedBoost       float64       `yaml:"speed_boost"` // Multiplier applied within boost_range
	BoostRange       float64       `yaml:"boost_range"`
	ContactRange     float64       `yaml:"contact_range"`
	ContactDamage    int           `yaml:"contact_damage"`
	Cooldown         time.Duration `yaml:"cooldown"` // Shared cooldown between any two shots
	BaseEnergy       int           `yaml:"base_energy"`
	EnergyPerSector  int           `yaml:"energy_per_sector"`
	EliteSpeedBonus  float64       `yaml:"elite_speed_bonus"`
	EliteEnergyBonus int           `yaml:"elite_energy_bonus"`
}

// BossConfig defines boss sectors.
type BossConfig struct {
	Every               int           `yaml:"every"` // Every Nth sector is a boss sector
	Cooldown            time.Duration `yaml:"cooldown"`
	BaseEnergy          int           `yaml:"base_energy"`
	EnergyPerTier       int           `yaml:"energy_per_tier"`
	SizeFactor          float64       `yaml:"size_factor"`
	ShotOffset          float64       `yaml:"shot_offset"` // Perpendicular offset of each twin rocket
	ReinforceDivisor    int           `yaml:"reinforce_divisor"`
	MinionSpeed         float64       `yaml:"minion_speed"`
	MinionBaseEnergy    int           `yaml:"minion_base_energy"`
	MinionEnergyPerTier int           `yaml:"minion_energy_per_tier"`
}

// PlanetConfig defines the procedural planet layout.
type PlanetConfig struct {
	SpawnChance    int     `yaml:"spawn_chance"` // One in N grid cells rolls a planet
	Max            int     `yaml:"max"`
	EnergyMin      int     `yaml:"energy_min"`
	EnergyRange    int     `yaml:"energy_range"`
	ScienceMin     int     `yaml:"science_min"`
	ScienceRange   int     `yaml:"science_range"`
	SciencePerTier int     `yaml:"science_per_tier"`
	Scale          float64 `yaml:"scale"`
}

// RocketConfig defines projectile lifetime.
type RocketConfig struct {
	Linger time.Duration `yaml:"linger"` // How long an explosion stays on screen
}

// AbilitySpec is one entry of the ability catalog.
type AbilitySpec struct {
	Name        string        `yaml:"name"`
	Cooldown    time.Duration `yaml:"cooldown"`
	Damage      int           `yaml:"damage"`
	Speed       float64       `yaml:"speed"`
	Visual      int           `yaml:"visual"` // Rocket texture index
	ScienceCost int           `yaml:"science_cost"`
	Size        float64       `yaml:"size"`
}

// AbilityCatalog holds the slot sets handed to each kind of ship.
type AbilityCatalog struct {
	Player []AbilitySpec `yaml:"player"`
	Enemy  []AbilitySpec `yaml:"enemy"`
	Laser  []AbilitySpec `yaml:"laser"`
	Boss   []AbilitySpec `yaml:"boss"`
}

// AudioConfig defines cue volumes, linear in [0, 1].
type AudioConfig struct {
	Music     float64 `yaml:"music"`
	Engine    float64 `yaml:"engine"`
	Fire      float64 `yaml:"fire"`
	EnemyFire float64 `yaml:"enemy_fire"`
	Hit       float64 `yaml:"hit"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}
