package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}

	def := DefaultSectorsConfig()
	if cfg.Playfield != def.Playfield {
		t.Errorf("Playfield = %+v, expected %+v", cfg.Playfield, def.Playfield)
	}
	if cfg.Player != def.Player {
		t.Errorf("Player = %+v, expected %+v", cfg.Player, def.Player)
	}
	if cfg.Enemy != def.Enemy {
		t.Errorf("Enemy = %+v, expected %+v", cfg.Enemy, def.Enemy)
	}
	if cfg.Boss != def.Boss {
		t.Errorf("Boss = %+v, expected %+v", cfg.Boss, def.Boss)
	}
	if cfg.Planets != def.Planets {
		t.Errorf("Planets = %+v, expected %+v", cfg.Planets, def.Planets)
	}
	if cfg.Rockets.Linger != time.Second {
		t.Errorf("Rockets.Linger = %v, expected 1s", cfg.Rockets.Linger)
	}
	for i, a := range cfg.Abilities.Player {
		if a != def.Abilities.Player[i] {
			t.Errorf("Abilities.Player[%d] = %+v, expected %+v", i, a, def.Abilities.Player[i])
		}
	}
	for i, a := range cfg.Abilities.Boss {
		if a != def.Abilities.Boss[i] {
			t.Errorf("Abilities.Boss[%d] = %+v, expected %+v", i, a, def.Abilities.Boss[i])
		}
	}
}

func TestParsePartialOverride(t *testing.T) {
	doc := []byte("player:\n  speed: 150\nrockets:\n  linger: 500ms\n")
	cfg, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Player.Speed != 150 {
		t.Errorf("Player.Speed = %v, expected 150", cfg.Player.Speed)
	}
	if cfg.Player.MaxEnergy != 2000 {
		t.Errorf("Player.MaxEnergy = %d, expected default 2000", cfg.Player.MaxEnergy)
	}
	if cfg.Rockets.Linger != 500*time.Millisecond {
		t.Errorf("Rockets.Linger = %v, expected 500ms", cfg.Rockets.Linger)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero tiles", "playfield:\n  tiles: 0\n"},
		{"zero spawn chance", "planets:\n  spawn_chance: 0\n"},
		{"short ability set", "abilities:\n  player:\n    - {name: a, cooldown: 1s}\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("player: [")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("enemy:\n  contact_damage: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Enemy.ContactDamage != 42 {
		t.Errorf("Enemy.ContactDamage = %d, expected 42", cfg.Enemy.ContactDamage)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Player.Speed != 100 {
		t.Errorf("Player.Speed = %v, expected 100", cfg.Player.Speed)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		contactDamage int
		startEnergy   int
	}{
		{DifficultyEasy, 200, 300},
		{DifficultyNormal, 300, 100},
		{DifficultyHard, 450, 100},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSectorsConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Enemy.ContactDamage != tc.contactDamage {
				t.Errorf("ContactDamage = %d, expected %d", cfg.Enemy.ContactDamage, tc.contactDamage)
			}
			if cfg.Player.StartEnergy != tc.startEnergy {
				t.Errorf("StartEnergy = %d, expected %d", cfg.Player.StartEnergy, tc.startEnergy)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %v, %v, expected normal", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset() should reject unknown presets")
	}
}

func TestMarshalRoundTripKeepsDurations(t *testing.T) {
	data, err := Marshal(DefaultSectorsConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Player.HealInterval != time.Second {
		t.Errorf("HealInterval = %v, expected 1s", cfg.Player.HealInterval)
	}
}
