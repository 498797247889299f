package sectors

import (
	"github.com/vovakirdan/void-sectors/internal/core"
)

// firePlayer fires the pressed slot along the ship's facing.
func (g *Game) firePlayer(slot int) {
	p := g.player
	if !p.CanFire(slot, g.now) {
		return
	}
	a := p.Abilities[slot]
	p.LastShot[slot] = g.now
	p.Science -= a.ScienceCost

	tex := g.cat.PlayerRockets[core.Clamp(a.Visual, 0, len(g.cat.PlayerRockets)-1)]
	g.rockets = append(g.rockets, newRocket(p.Pos, p.Facing(), a, tex, ShooterPlayer))
	g.audio.Play(g.cat.Fire, g.cfg.Audio.Fire, false)
}

// fireEnemies lets every enemy take at most one shot per shared cooldown
// window, preferring the highest unlocked slot.
func (g *Game) fireEnemies() {
	top := enemySlotCeiling(g.sector)
	for _, e := range g.enemies {
		if !e.sharedReady(g.now) {
			continue
		}
		e.CooldownAt = g.now

		for slot := top; slot >= 0; slot-- {
			if !e.slotReady(slot, g.now) {
				continue
			}
			e.LastShot[slot] = g.now
			g.enemyShot(e, e.Abilities[slot])
			g.audio.Play(g.cat.Fire, g.cfg.Audio.EnemyFire, false)
			break
		}
	}
}

// enemyShot spawns the rockets of one enemy shot aimed at the player.
// Bosses fire a parallel pair offset to either side of the aim line.
func (g *Game) enemyShot(e *Ship, a Ability) {
	tex := g.cat.EnemyRockets[core.Clamp(a.Visual, 0, len(g.cat.EnemyRockets)-1)]
	aim := g.player.Pos.Sub(e.Pos).Normalize()

	if !e.Boss {
		g.rockets = append(g.rockets, newRocket(e.Pos, aim, a, tex, ShooterEnemy))
		return
	}
	offset := aim.Perp().Scale(g.cfg.Boss.ShotOffset)
	g.rockets = append(g.rockets,
		newRocket(e.Pos.Add(offset), aim, a, tex, ShooterEnemy),
		newRocket(e.Pos.Sub(offset), aim, a, tex, ShooterEnemy),
	)
}

// updateRockets moves live rockets, resolves hits and bounds, and purges
// explosions that have lingered long enough.
func (g *Game) updateRockets() {
	linger := g.cfg.Rockets.Linger
	for _, r := range g.rockets {
		if r.Exploded {
			continue
		}
		r.MoveInDirection(g.dt)

		if g.resolveHits(r) {
			g.audio.Stop(g.cat.Fire)
			g.audio.Play(g.cat.Hit, g.cfg.Audio.Hit, false)
		}
		if !r.Exploded && r.OutOfBounds(g.cfg.Playfield.Width, g.cfg.Playfield.Height) {
			r.explode(g.now, 0)
		}
	}

	kept := g.rockets[:0]
	for _, r := range g.rockets {
		if r.Expired(g.now, linger) {
			continue
		}
		kept = append(kept, r)
	}
	for i := len(kept); i < len(g.rockets); i++ {
		g.rockets[i] = nil
	}
	g.rockets = kept
}

// resolveHits applies a rocket to every opposing ship it overlaps.
func (g *Game) resolveHits(r *Rocket) bool {
	box := r.Rect()
	hit := false

	switch r.Shooter {
	case ShooterPlayer:
		for _, e := range g.enemies {
			if box.Overlaps(e.Rect()) {
				e.ApplyDamage(r.Damage)
				hit = true
			}
		}
	default:
		if box.Overlaps(g.player.Rect()) {
			g.player.ApplyDamage(r.Damage)
			hit = true
		}
	}

	if hit {
		r.explode(g.now, g.cat.Explosion)
	}
	return hit
}

// purgeDeadEnemies drops enemies without energy.
func (g *Game) purgeDeadEnemies() {
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Alive() {
			kept = append(kept, e)
			continue
		}
		g.logger.Debug("enemy destroyed", "kind", e.Kind, "sector", g.sector)
	}
	for i := len(kept); i < len(g.enemies); i++ {
		g.enemies[i] = nil
	}
	g.enemies = kept
}

// reinforceBosses spawns the second escort wave once per boss, the first
// time its energy falls under the reinforcement threshold.
func (g *Game) reinforceBosses() {
	if !IsBossSector(g.sector, g.cfg) {
		return
	}
	spawns := spawnPoints(g.cfg.Playfield)
	var wave []*Ship
	for _, e := range g.enemies {
		if !e.Boss || e.SpawnedMinions || e.Energy >= e.MaxEnergy/g.cfg.Boss.ReinforceDivisor {
			continue
		}
		e.SpawnedMinions = true
		wave = append(wave,
			newMinion(g.sector, spawns[spawnTop], g.cfg, g.cat, g.now),
			newMinion(g.sector, spawns[spawnBottom], g.cfg, g.cat, g.now),
		)
		g.logger.Info("boss reinforcements", "sector", g.sector, "energy", e.Energy)
	}
	g.enemies = append(g.enemies, wave...)
}

// chase moves every enemy toward the player. It reports true when an enemy
// made contact, after the level has been regenerated.
func (g *Game) chase() bool {
	ec := g.cfg.Enemy
	for _, e := range g.enemies {
		e.Dest = g.player.Pos
		e.MoveTowardDestination(g.dt, g.cfg.Playfield.NearThreshold)

		dist := g.player.Pos.Sub(e.Pos).Len()
		if dist < ec.BoostRange {
			e.Speed = e.MaxSpeed * ec.SpeedBoost
		} else {
			e.Speed = e.MaxSpeed
		}

		if dist < ec.ContactRange {
			g.player.ApplyDamage(ec.ContactDamage)
			g.logger.Info("enemy contact", "kind", e.Kind, "sector", g.sector, "energy", g.player.Energy)
			g.generateLevel()
			return true
		}
	}
	return false
}
