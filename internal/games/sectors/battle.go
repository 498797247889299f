package sectors

import (
	"time"

	"github.com/vovakirdan/void-sectors/internal/assets"
	"github.com/vovakirdan/void-sectors/internal/config"
	"github.com/vovakirdan/void-sectors/internal/core"
)

// Spawn point indices.
const (
	spawnMiddle = iota
	spawnTop
	spawnBottom
	numSpawns
)

// spawnPoints returns the enemy spawn points along the right edge.
func spawnPoints(pf config.PlayfieldConfig) [numSpawns]core.Vec2 {
	x := pf.Width - pf.TileW()
	return [numSpawns]core.Vec2{
		spawnMiddle: core.V2(x, pf.Height/2),
		spawnTop:    core.V2(x, pf.Height),
		spawnBottom: core.V2(x, pf.TileH()),
	}
}

// shipSize returns the footprint of a regular ship: one grid tile.
func shipSize(pf config.PlayfieldConfig) core.Vec2 {
	return core.V2(pf.TileW(), pf.TileH())
}

// IsBossSector reports whether a sector is a boss encounter.
func IsBossSector(sector int, cfg config.SectorsConfig) bool {
	return sector%cfg.Boss.Every == 0
}

// Roster builds the enemy line-up of a sector. It uses no randomness, so
// the same sector always yields the same ships.
func Roster(sector int, cfg config.SectorsConfig, cat *assets.Catalog, now time.Duration) []*Ship {
	spawns := spawnPoints(cfg.Playfield)
	size := shipSize(cfg.Playfield)

	if IsBossSector(sector, cfg) {
		tier := sector / cfg.Boss.Every
		bossIndex := core.Min(tier-1, assets.NumBossTypes-1)
		boss := newShip(shipSpec{
			kind:      KindBoss,
			speed:     0,
			pos:       spawns[spawnMiddle],
			size:      size.Scale(cfg.Boss.SizeFactor),
			texture:   cat.Bosses[bossIndex],
			energy:    cfg.Boss.BaseEnergy + cfg.Boss.EnergyPerTier*tier,
			abilities: abilitySet(cfg.Abilities.Boss),
			cooldown:  cfg.Boss.Cooldown,
		}, now)
		return []*Ship{
			boss,
			newMinion(sector, spawns[spawnTop], cfg, cat, now),
			newMinion(sector, spawns[spawnBottom], cfg, cat, now),
		}
	}

	block := sector%cfg.Boss.Every - 1
	count := 1 + block/3
	multiplier := 0.75 + float64(block%3+1)/4

	ships := make([]*Ship, 0, count)
	for i := 0; i < count; i++ {
		spec := shipSpec{
			kind:      KindEnemy,
			speed:     cfg.Enemy.Speed * multiplier,
			pos:       spawns[i%numSpawns],
			size:      size,
			texture:   cat.Enemies[0],
			energy:    cfg.Enemy.BaseEnergy + cfg.Enemy.EnergyPerSector*sector,
			abilities: abilitySet(cfg.Abilities.Enemy),
			cooldown:  cfg.Enemy.Cooldown,
		}
		if count == 3 && i == 0 {
			spec.kind = KindElite
			spec.speed += cfg.Enemy.EliteSpeedBonus
			spec.texture = cat.Enemies[1]
			spec.energy += cfg.Enemy.EliteEnergyBonus
			spec.abilities = abilitySet(cfg.Abilities.Laser)
		}
		ships = append(ships, newShip(spec, now))
	}
	return ships
}

// newMinion creates a boss escort.
func newMinion(sector int, pos core.Vec2, cfg config.SectorsConfig, cat *assets.Catalog, now time.Duration) *Ship {
	return newShip(shipSpec{
		kind:      KindMinion,
		speed:     cfg.Boss.MinionSpeed,
		pos:       pos,
		size:      shipSize(cfg.Playfield),
		texture:   cat.Enemies[1],
		energy:    cfg.Boss.MinionBaseEnergy + cfg.Boss.MinionEnergyPerTier*(sector/cfg.Boss.Every),
		abilities: abilitySet(cfg.Abilities.Laser),
		cooldown:  cfg.Enemy.Cooldown,
	}, now)
}
