package sectors

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick            uint64  `yaml:"tick"`
	Scene           string  `yaml:"scene"`
	Sector          int     `yaml:"sector"`
	Energy          int     `yaml:"energy"`
	Science         int     `yaml:"science"`
	ScienceGathered int     `yaml:"science_gathered"`
	PlayerX         float64 `yaml:"player_x"`
	PlayerY         float64 `yaml:"player_y"`
	PlayerAngle     float64 `yaml:"player_angle"`
	Enemies         int     `yaml:"enemies"`
	EnemyEnergy     int     `yaml:"enemy_energy"` // Sum over live enemies
	Rockets         int     `yaml:"rockets"`
	Planets         int     `yaml:"planets"`
	Background      int     `yaml:"background"`
	NearPlanet      bool    `yaml:"near_planet"`
	LevelNotClear   bool    `yaml:"level_not_clear"`
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:            g.tick,
		Scene:           g.scene.String(),
		Sector:          g.sector,
		ScienceGathered: g.scienceGathered,
		Enemies:         len(g.enemies),
		Rockets:         len(g.rockets),
		Planets:         len(g.planets),
		Background:      g.background,
		NearPlanet:      g.nearPlanet,
		LevelNotClear:   g.levelNotClear,
	}
	if g.player != nil {
		s.Energy = g.player.Energy
		s.Science = g.player.Science
		s.PlayerX = g.player.Pos.X
		s.PlayerY = g.player.Pos.Y
		s.PlayerAngle = g.player.Angle
	}
	for _, e := range g.enemies {
		s.EnemyEnergy += e.Energy
	}
	return s
}
