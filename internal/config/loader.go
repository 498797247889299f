package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

const fileName = "sectors.yaml"

// Load loads the simulation configuration.
// Search order: customPath -> ~/.sectors/configs/sectors.yaml -> ./configs/sectors.yaml -> embedded default
//
// Every source is decoded on top of the defaults, so a partial file only
// overrides the keys it names.
func Load(customPath string) (SectorsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SectorsConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SectorsConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(nil)
	if err != nil {
		return DefaultSectorsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document over the embedded defaults and validates
// the result. A nil document yields the defaults.
func Parse(data []byte) (SectorsConfig, error) {
	var cfg SectorsConfig
	if err := yaml.Unmarshal(defaultSectorsYAML, &cfg); err != nil {
		cfg = DefaultSectorsConfig()
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return SectorsConfig{}, fmt.Errorf("failed to parse: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return SectorsConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration back to YAML.
func Marshal(cfg SectorsConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate checks the values the simulation divides by or indexes with.
func (c SectorsConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must have a positive size", ErrInvalid)
	case c.Playfield.Tiles <= 0:
		return fmt.Errorf("%w: playfield.tiles must be positive", ErrInvalid)
	case c.Planets.SpawnChance <= 0:
		return fmt.Errorf("%w: planets.spawn_chance must be positive", ErrInvalid)
	case c.Planets.EnergyRange <= 0 || c.Planets.ScienceRange <= 0:
		return fmt.Errorf("%w: planet resource ranges must be positive", ErrInvalid)
	case c.Boss.Every <= 0:
		return fmt.Errorf("%w: boss.every must be positive", ErrInvalid)
	case c.Boss.ReinforceDivisor <= 0:
		return fmt.Errorf("%w: boss.reinforce_divisor must be positive", ErrInvalid)
	case c.Player.MaxEnergy <= 0:
		return fmt.Errorf("%w: player.max_energy must be positive", ErrInvalid)
	}
	sets := map[string][]AbilitySpec{
		"player": c.Abilities.Player,
		"enemy":  c.Abilities.Enemy,
		"laser":  c.Abilities.Laser,
		"boss":   c.Abilities.Boss,
	}
	for name, set := range sets {
		if len(set) != 3 {
			return fmt.Errorf("%w: abilities.%s must list 3 slots, got %d", ErrInvalid, name, len(set))
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sectors", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *SectorsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.StartEnergy = 300
		cfg.Player.StartScience = 250
		cfg.Enemy.ContactDamage = 200
		cfg.Enemy.SpeedBoost = 1.4
	case DifficultyHard:
		cfg.Player.StartEnergy = 100
		cfg.Player.StartScience = 0
		cfg.Enemy.ContactDamage = 450
		cfg.Enemy.SpeedBoost = 1.9
		cfg.Enemy.Cooldown = cfg.Enemy.Cooldown * 3 / 4
	}
}
