// Package sectors implements the sector shooter simulation: ships, rockets
// and planets advanced one fixed step per frame, the procedural sector
// generator and the scene state machine.
package sectors

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/void-sectors/internal/assets"
	"github.com/vovakirdan/void-sectors/internal/config"
	"github.com/vovakirdan/void-sectors/internal/core"
)

// Scene is the top-level state of the game.
type Scene int

const (
	SceneStart Scene = iota
	SceneExploration
	SceneDiscovery
	SceneGameOver
)

// String returns a human-readable name for the scene.
func (s Scene) String() string {
	switch s {
	case SceneStart:
		return "start"
	case SceneExploration:
		return "exploration"
	case SceneDiscovery:
		return "discovery"
	case SceneGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game owns every entity collection and advances them one step at a time.
type Game struct {
	cfg    config.SectorsConfig
	cat    *assets.Catalog
	audio  core.Audio
	logger *log.Logger

	rng  *rand.Rand
	tick uint64
	now  time.Duration // Simulated monotonic clock
	step time.Duration
	dt   float64 // step in seconds

	scene           Scene
	paused          bool
	sector          int
	scienceGathered int

	player  *Ship
	enemies []*Ship
	rockets []*Rocket
	planets []*Planet

	background    int
	currentPlanet *Planet
	planetLastPos core.Vec3

	// Per-frame HUD flags
	nearPlanet    bool
	levelNotClear bool

	// Audio bookkeeping; core.Audio cannot be queried.
	introPlaying  bool
	enginePlaying bool
	music         core.SoundHandle
}

// Option configures a Game.
type Option func(*Game)

// WithAudio routes sound cues to a.
func WithAudio(a core.Audio) Option {
	return func(g *Game) {
		g.audio = a
	}
}

// WithLogger sets the logger used for run events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

type silentAudio struct{}

func (silentAudio) Play(core.SoundHandle, float64, bool) {}
func (silentAudio) Stop(core.SoundHandle)                {}

// New creates a game. Call Reset before the first Step.
func New(cfg config.SectorsConfig, cat *assets.Catalog, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		cat:    cat,
		audio:  silentAudio{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "sectors"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Void Sectors"
}

// Reset returns the game to the start screen with a fresh RNG and clock.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.step = rt.Step()
	g.dt = rt.StepSeconds()
	g.tick = 0
	g.now = 0

	g.scene = SceneStart
	g.paused = false
	g.enemies = nil
	g.rockets = nil
	g.planets = nil
	g.background = 0
	g.currentPlanet = nil
	g.nearPlanet = false
	g.levelNotClear = false
	g.introPlaying = false
	g.enginePlaying = false
	g.music = 0

	g.newRun()
}

// newRun resets the player and the sector counter.
func (g *Game) newRun() {
	pc := g.cfg.Player
	g.player = newShip(shipSpec{
		kind:      KindPlayer,
		speed:     pc.Speed,
		pos:       g.playerStart(),
		size:      shipSize(g.cfg.Playfield),
		texture:   g.cat.Player,
		energy:    pc.MaxEnergy,
		abilities: abilitySet(g.cfg.Abilities.Player),
		cooldown:  g.cfg.Enemy.Cooldown,
		healEvery: pc.HealInterval,
	}, g.now)
	g.player.SetEnergy(pc.StartEnergy)
	g.player.Science = pc.StartScience
	g.sector = 1
	g.scienceGathered = 0
}

// Step advances the simulation by one fixed step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && (g.scene == SceneExploration || g.scene == SceneDiscovery) {
		g.paused = !g.paused
		if g.paused {
			g.stopEngine()
		}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.now += g.step

	switch g.scene {
	case SceneStart:
		g.runStart(in)
	case SceneExploration:
		g.runExploration(in)
	case SceneDiscovery:
		g.runDiscovery(in)
	case SceneGameOver:
		g.runGameOver(in)
	}

	return core.StepResult{State: g.State()}
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scienceGathered,
		GameOver: g.scene == SceneGameOver,
		Paused:   g.paused,
	}
}

// Scene returns the current scene.
func (g *Game) Scene() Scene {
	return g.scene
}

// Now returns the simulated clock.
func (g *Game) Now() time.Duration {
	return g.now
}

func (g *Game) runStart(in core.InputFrame) {
	if !g.introPlaying {
		g.audio.Play(g.cat.Intro, g.cfg.Audio.Music, true)
		g.introPlaying = true
	}
	g.stopEngine()
	g.stopMusic()

	if in.Has(core.ActionConfirm) {
		g.audio.Stop(g.cat.Intro)
		g.introPlaying = false
		g.newRun()
		g.logger.Info("run started", "tick", g.tick)
		g.generateLevel()
	}
}

func (g *Game) runGameOver(in core.InputFrame) {
	if in.Has(core.ActionConfirm) {
		g.scene = SceneStart
	}
}

func (g *Game) runExploration(in core.InputFrame) {
	p := g.player
	pf := g.cfg.Playfield

	g.purgeDeadEnemies()

	if !p.Alive() {
		g.scene = SceneGameOver
		g.stopEngine()
		g.logger.Info("game over", "sector", g.sector, "science", g.scienceGathered)
		return
	}

	g.reinforceBosses()

	if in.Mouse.ClickedL && in.Mouse.X >= 0 && in.Mouse.X <= pf.Width && in.Mouse.Y >= 0 && in.Mouse.Y <= pf.Height {
		p.Dest = core.V2(in.Mouse.X, pf.Height-in.Mouse.Y)
	}

	if in.Has(core.ActionHeal) {
		g.heal()
	}

	if slot := in.AbilitySlot(); slot >= 0 {
		g.firePlayer(slot)
	}
	g.fireEnemies()

	moving := p.Dest.Sub(p.Pos).Len() > pf.NearThreshold
	p.MoveTowardDestination(g.dt, pf.NearThreshold)
	if moving {
		g.startEngine()
	} else {
		g.stopEngine()
	}

	if g.chase() {
		return
	}

	g.levelNotClear = false
	if p.Pos.X >= pf.Width-p.Size.X/2 {
		if len(g.enemies) > 0 {
			g.levelNotClear = true
		} else {
			g.sector++
			g.generateLevel()
			return
		}
	}

	g.nearPlanet = false
	box := p.Rect()
	for _, planet := range g.planets {
		if !planet.Visited && box.Overlaps(planet.Tile) {
			g.nearPlanet = true
			if in.Has(core.ActionInteract) {
				g.enterDiscovery(planet)
				return
			}
		}
		planet.Update(g.dt)
	}

	g.updateRockets()
}

// heal trades science for energy at most once per heal interval.
func (g *Game) heal() {
	p := g.player
	pc := g.cfg.Player
	if g.now-p.LastHeal <= pc.HealInterval {
		return
	}
	if p.Science < pc.HealCost || p.Energy >= p.MaxEnergy {
		return
	}
	p.Science -= pc.HealCost
	p.SetEnergy(p.Energy + pc.HealAmount)
	p.LastHeal = g.now
}

func (g *Game) startEngine() {
	if !g.enginePlaying {
		g.audio.Play(g.cat.Engine, g.cfg.Audio.Engine, true)
		g.enginePlaying = true
	}
}

func (g *Game) stopEngine() {
	if g.enginePlaying {
		g.audio.Stop(g.cat.Engine)
		g.enginePlaying = false
	}
}

func (g *Game) stopMusic() {
	if g.music.Valid() {
		g.audio.Stop(g.music)
		g.music = 0
	}
}

// switchMusic stops the previous sector's track and loops the next one.
func (g *Game) switchMusic(prev, next core.SoundHandle) {
	g.audio.Stop(prev)
	g.audio.Play(next, g.cfg.Audio.Music, true)
	g.music = next
}
