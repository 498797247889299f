package sectors

import (
	"math/rand"

	"github.com/vovakirdan/void-sectors/internal/assets"
	"github.com/vovakirdan/void-sectors/internal/config"
	"github.com/vovakirdan/void-sectors/internal/core"
)

// Planet layout constants map grid cells to camera space.
const (
	planetSpanX   = 23.0
	planetOffsetX = 10.3
	planetSpanY   = 17.5
	planetOffsetY = 7.9
	planetDepth   = 9.0
)

// generatePlanets scans the whole grid row by row. Every cell consumes one
// spawn roll even after the cap is reached, which keeps the RNG stream
// stable for a given seed.
func generatePlanets(rng *rand.Rand, sector int, cfg config.SectorsConfig, cat *assets.Catalog) []*Planet {
	pf := cfg.Playfield
	pc := cfg.Planets
	tiles := float64(pf.Tiles)
	tileW, tileH := pf.TileW(), pf.TileH()

	var planets []*Planet
	for ty := 0; ty < pf.Tiles; ty++ {
		for tx := 0; tx < pf.Tiles; tx++ {
			if rng.Intn(pc.SpawnChance) != 0 {
				continue
			}
			if len(planets) >= pc.Max {
				continue
			}

			p := &Planet{
				Pos: core.Vec3{
					X: float64(tx)/tiles*planetSpanX - planetOffsetX,
					Y: float64(ty)/tiles*planetSpanY - planetOffsetY,
					Z: planetDepth,
				},
			}
			p.Axis = core.Vec3{
				X: float64(rng.Intn(100)),
				Y: float64(rng.Intn(100)),
				Z: float64(rng.Intn(100)),
			}
			p.SpinSpeed = float64(rng.Intn(100))/100*0.5 + 0.5
			p.Type = rng.Intn(assets.NumPlanetTypes - 1)
			p.Texture = cat.Planets[p.Type]
			p.Name = planetNames[p.Type]
			p.Tile = core.NewRect(int(float64(tx)*tileW), int(float64(ty)*tileH), int(tileW), int(tileH))
			p.Energy = rng.Intn(pc.EnergyRange) + pc.EnergyMin
			p.Science = rng.Intn(pc.ScienceRange) + pc.ScienceMin + pc.SciencePerTier*(sector/cfg.Boss.Every)

			planets = append(planets, p)
		}
	}
	return planets
}

// generateLevel rebuilds the sector: new background and music, fresh
// planets, no rockets, a new enemy roster and the player back at the start.
func (g *Game) generateLevel() {
	last := g.background
	g.background = g.rng.Intn(assets.NumBackgrounds)

	g.rockets = g.rockets[:0]
	g.planets = generatePlanets(g.rng, g.sector, g.cfg, g.cat)
	g.initializeSectorBattle()
	g.scene = SceneExploration
	g.currentPlanet = nil

	g.logger.Info("sector generated",
		"sector", g.sector,
		"boss", IsBossSector(g.sector, g.cfg),
		"enemies", len(g.enemies),
		"planets", len(g.planets),
		"background", g.background,
	)

	g.switchMusic(g.cat.Music[last], g.cat.Music[g.background])
}

// initializeSectorBattle repositions the player and replaces the roster.
func (g *Game) initializeSectorBattle() {
	start := g.playerStart()
	g.player.Pos = start
	g.player.Dest = start
	g.player.Speed = g.cfg.Player.Speed
	g.enemies = Roster(g.sector, g.cfg, g.cat, g.now)
}

func (g *Game) playerStart() core.Vec2 {
	return core.V2(g.cfg.Playfield.TileW(), g.cfg.Playfield.Height/2)
}
