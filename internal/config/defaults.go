package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/sectors.yaml
var defaultSectorsYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultSectorsYAML
}

// DefaultSectorsConfig returns the hardcoded configuration used when the
// embedded YAML cannot be parsed. It mirrors defaults/sectors.yaml.
func DefaultSectorsConfig() SectorsConfig {
	return SectorsConfig{
		Playfield: PlayfieldConfig{
			Width:         800,
			Height:        600,
			Tiles:         10,
			NearThreshold: 2,
		},
		Player: PlayerConfig{
			Speed:        100,
			StartEnergy:  100,
			MaxEnergy:    2000,
			HealCost:     500,
			HealAmount:   500,
			HealInterval: time.Second,
		},
		Enemy: EnemyConfig{
			Speed:            40,
			SpeedBoost:       1.65,
			BoostRange:       100,
			ContactRange:     10,
			ContactDamage:    300,
			Cooldown:         2 * time.Second,
			BaseEnergy:       100,
			EnergyPerSector:  25,
			EliteSpeedBonus:  10,
			EliteEnergyBonus: 100,
		},
		Boss: BossConfig{
			Every:               10,
			Cooldown:            time.Second,
			BaseEnergy:          2000,
			EnergyPerTier:       2000,
			SizeFactor:          2,
			ShotOffset:          30,
			ReinforceDivisor:    3,
			MinionSpeed:         40,
			MinionBaseEnergy:    100,
			MinionEnergyPerTier: 100,
		},
		Planets: PlanetConfig{
			SpawnChance:    20,
			Max:            10,
			EnergyMin:      20,
			EnergyRange:    180,
			ScienceMin:     100,
			ScienceRange:   350,
			SciencePerTier: 100,
			Scale:          0.85,
		},
		Rockets: RocketConfig{
			Linger: time.Second,
		},
		Abilities: AbilityCatalog{
			Player: []AbilitySpec{
				{Name: "missile", Cooldown: time.Second, Damage: 100, Speed: 100, Visual: 0, ScienceCost: 50, Size: 35},
				{Name: "torpedo", Cooldown: 2 * time.Second, Damage: 250, Speed: 180, Visual: 1, ScienceCost: 200, Size: 40},
				{Name: "nova", Cooldown: 8 * time.Second, Damage: 600, Speed: 65, Visual: 2, ScienceCost: 400, Size: 60},
			},
			Enemy: []AbilitySpec{
				{Name: "missile", Cooldown: 2 * time.Second, Damage: 200, Speed: 120, Visual: 0, Size: 35},
				{Name: "torpedo", Cooldown: 7 * time.Second, Damage: 300, Speed: 180, Visual: 1, Size: 40},
				{Name: "nova", Cooldown: 10 * time.Second, Damage: 500, Speed: 100, Visual: 2, Size: 55},
			},
			Laser: []AbilitySpec{
				{Name: "laser", Cooldown: time.Second, Damage: 100, Speed: 220, Visual: 3, Size: 30},
				{Name: "laser", Cooldown: time.Second, Damage: 100, Speed: 220, Visual: 3, Size: 30},
				{Name: "laser", Cooldown: time.Second, Damage: 100, Speed: 220, Visual: 3, Size: 30},
			},
			Boss: []AbilitySpec{
				{Name: "barrage", Cooldown: time.Second, Damage: 100, Speed: 180, Visual: 0, Size: 50},
				{Name: "lance", Cooldown: 4 * time.Second, Damage: 200, Speed: 200, Visual: 1, Size: 50},
				{Name: "sunburst", Cooldown: 10 * time.Second, Damage: 300, Speed: 120, Visual: 2, Size: 70},
			},
		},
		Audio: AudioConfig{
			Music:     0.32,
			Engine:    1.0,
			Fire:      0.18,
			EnemyFire: 0.18,
			Hit:       0.32,
		},
	}
}
