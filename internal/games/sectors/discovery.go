package sectors

import "github.com/vovakirdan/void-sectors/internal/core"

// enterDiscovery moves a planet into the inspection pose and parks the player.
func (g *Game) enterDiscovery(p *Planet) {
	g.scene = SceneDiscovery
	g.currentPlanet = p
	g.planetLastPos = p.Pos
	p.Pos = inspectionPose
	g.player.Dest = g.player.Pos
	g.stopEngine()
	g.logger.Debug("discovery", "planet", p.Name, "energy", p.Energy, "science", p.Science)
}

func (g *Game) runDiscovery(in core.InputFrame) {
	p := g.currentPlanet
	if p == nil {
		g.scene = SceneExploration
		return
	}

	switch {
	case in.Has(core.ActionAbility3) || in.Has(core.ActionConfirm):
		g.leaveDiscovery()
		return
	case in.Has(core.ActionAbility1):
		g.player.SetEnergy(g.player.Energy + p.Energy)
		p.Energy = 0
	case in.Has(core.ActionAbility2):
		g.player.Science += p.Science
		g.scienceGathered += p.Science
		p.Science = 0
	}

	p.Update(g.dt)
}

// leaveDiscovery restores the planet. A depleted planet collapses into a
// black hole and can no longer be visited.
func (g *Game) leaveDiscovery() {
	p := g.currentPlanet
	g.scene = SceneExploration
	p.Pos = g.planetLastPos
	if p.Depleted() {
		p.Visited = true
		p.Texture = g.cat.BlackHole()
	}
	g.currentPlanet = nil
}
