package sectors

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/void-sectors/internal/core"
)

// Paint order. Higher z is painted first.
const (
	zBackground = 99
	zPlayer     = 20
	zSprites    = 10
	zHUD        = 1
)

// charAdvance is the fallback text width per character in screen pixels.
const charAdvance = 16.0

// Render emits the draw calls for the current frame.
func (g *Game) Render(dst core.Surface) {
	w, h := g.cfg.Playfield.Width, g.cfg.Playfield.Height

	if g.scene != SceneGameOver {
		bg := g.cat.Backgrounds[g.background]
		if g.scene == SceneStart {
			bg = g.cat.IntroBackground
		}
		dst.DrawSprite(bg, w/2, h/2, w, h, zBackground, math.Pi)
	}

	switch g.scene {
	case SceneExploration:
		g.renderExploration(dst)
	case SceneDiscovery:
		g.renderDiscovery(dst)
	}

	g.renderHUD(dst)
}

func (g *Game) renderExploration(dst core.Surface) {
	for _, p := range g.planets {
		dst.DrawModel(g.cat.Sphere, p.Texture, p.Pos, p.Angle)
	}
	for _, r := range g.rockets {
		dst.DrawSprite(r.Texture, r.Pos.X, r.Pos.Y, r.Size.X, r.Size.Y, zSprites, r.Angle)
	}
	for _, e := range g.enemies {
		dst.DrawSprite(e.Texture, e.Pos.X, e.Pos.Y, e.Size.X, e.Size.Y, zSprites, e.Angle)
	}
	p := g.player
	dst.DrawSprite(p.Texture, p.Pos.X, p.Pos.Y, p.Size.X, p.Size.Y, zPlayer, p.Angle)
}

func (g *Game) renderDiscovery(dst core.Surface) {
	if g.currentPlanet != nil {
		dst.DrawModel(g.cat.Sphere, g.currentPlanet.Texture, g.currentPlanet.Pos, g.currentPlanet.Angle)
	}
	pf := g.cfg.Playfield
	tw, th := pf.TileW(), pf.TileH()
	// Ship parked left of the planet at twice its size
	x := (pf.Width-tw)/4 + tw
	y := (pf.Height-th)/2 + th
	dst.DrawSprite(g.player.Texture, x, y, tw*2, th*2, zPlayer, 0)
}

func (g *Game) renderHUD(dst core.Surface) {
	w, h := g.cfg.Playfield.Width, g.cfg.Playfield.Height
	c := g.cat
	p := g.player

	switch g.scene {
	case SceneStart:
		dst.DrawSprite(c.Logo, w/2, h-100, 400, 100, zHUD, math.Pi)
		g.centerText(dst, h-70, "Press Enter to Play")

	case SceneExploration, SceneDiscovery:
		dst.DrawSprite(c.EnergyIcon, 30, h-30, 40, 40, zHUD, 0)
		dst.DrawSprite(c.ScienceIcon, 30, h-80, 40, 40, zHUD, math.Pi)
		for i, icon := range c.AbilityIcons {
			dst.DrawSprite(icon, 40+float64(i)*70, 40, 60, 60, zHUD, math.Pi)
		}
		dst.DrawText(60, 20, strconv.Itoa(p.Energy))
		dst.DrawText(60, 70, strconv.Itoa(p.Science))

		if g.scene == SceneDiscovery && g.currentPlanet != nil {
			planet := g.currentPlanet
			g.centerText(dst, 50, planet.Name)
			g.centerText(dst, h-170, fmt.Sprintf("1. Gather energy (%d)", planet.Energy))
			g.centerText(dst, h-120, fmt.Sprintf("2. Gather science (%d)", planet.Science))
			g.centerText(dst, h-70, "3. Continue")
			break
		}

		sector := strconv.Itoa(g.sector)
		dst.DrawText(w-textWidth(dst, sector)-25, 20, sector)
		if g.nearPlanet {
			g.centerText(dst, h-120, "Press [E] to warp")
		}
		if g.levelNotClear {
			g.centerText(dst, 100, "You must clear all enemies to move on")
		}

	case SceneGameOver:
		g.centerText(dst, 100, "Game Over")
		g.centerText(dst, h/2, fmt.Sprintf("Sector %d", g.sector))
		g.centerText(dst, h/2+70, fmt.Sprintf("Science Gathered: %d", g.scienceGathered))
		g.centerText(dst, h-70, "Press Enter to return to menu")
	}

	if g.paused {
		g.centerText(dst, h/2, "PAUSED")
	}
}

func (g *Game) centerText(dst core.Surface, y float64, text string) {
	dst.DrawText(g.cfg.Playfield.Width/2-textWidth(dst, text)/2, y, text)
}

func textWidth(dst core.Surface, text string) float64 {
	if m, ok := dst.(core.TextMeasurer); ok {
		return m.TextWidth(text)
	}
	return float64(len([]rune(text))) * charAdvance
}
