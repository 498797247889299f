package assets

import (
	"fmt"

	"github.com/vovakirdan/void-sectors/internal/core"
)

// Catalog sizes.
const (
	NumPlanetTypes   = 11 // The last type is the black hole
	BlackHoleIndex   = NumPlanetTypes - 1
	NumBackgrounds   = 6
	NumMusicTracks   = 3
	NumAbilityIcons  = 4
	NumPlayerRockets = 3
	NumEnemyRockets  = 4 // Three missiles and the laser beam
	NumEnemyTypes    = 2
	NumBossTypes     = 3
)

// Catalog holds every handle the simulation draws or plays.
type Catalog struct {
	Sphere core.MeshHandle
	Quad   core.MeshHandle

	Planets     [NumPlanetTypes]core.TextureHandle
	Backgrounds [NumBackgrounds]core.TextureHandle

	IntroBackground core.TextureHandle
	Logo            core.TextureHandle
	EnergyIcon      core.TextureHandle
	ScienceIcon     core.TextureHandle
	AbilityIcons    [NumAbilityIcons]core.TextureHandle

	PlayerRockets [NumPlayerRockets]core.TextureHandle
	EnemyRockets  [NumEnemyRockets]core.TextureHandle
	Explosion     core.TextureHandle

	Player  core.TextureHandle
	Enemies [NumEnemyTypes]core.TextureHandle
	Bosses  [NumBossTypes]core.TextureHandle

	Engine core.SoundHandle
	Fire   core.SoundHandle
	Hit    core.SoundHandle
	Intro  core.SoundHandle
	// Music has one entry per background; tracks repeat across backgrounds.
	Music [NumBackgrounds]core.SoundHandle
}

// BlackHole returns the texture depleted planets switch to.
func (c *Catalog) BlackHole() core.TextureHandle {
	return c.Planets[BlackHoleIndex]
}

type catalogLoader struct {
	l   core.Loader
	err error
}

func (c *catalogLoader) texture(path string) core.TextureHandle {
	if c.err != nil {
		return 0
	}
	h, err := c.l.LoadTexture(path)
	if err != nil {
		c.err = fmt.Errorf("assets: load texture %s: %w", path, err)
	}
	return h
}

func (c *catalogLoader) mesh(path string) core.MeshHandle {
	if c.err != nil {
		return 0
	}
	h, err := c.l.LoadMesh(path)
	if err != nil {
		c.err = fmt.Errorf("assets: load mesh %s: %w", path, err)
	}
	return h
}

func (c *catalogLoader) sound(path string) core.SoundHandle {
	if c.err != nil {
		return 0
	}
	h, err := c.l.LoadSound(path)
	if err != nil {
		c.err = fmt.Errorf("assets: load sound %s: %w", path, err)
	}
	return h
}

// LoadCatalog loads every asset through l. The first failure aborts the
// load and is returned wrapped with the offending path.
func LoadCatalog(l core.Loader) (*Catalog, error) {
	c := &Catalog{}
	ld := &catalogLoader{l: l}

	c.Sphere = ld.mesh("models/sphere")
	c.Quad = ld.mesh("models/quad")

	for i := 0; i < BlackHoleIndex; i++ {
		c.Planets[i] = ld.texture(fmt.Sprintf("textures/planet%d", i+1))
	}
	c.Planets[BlackHoleIndex] = ld.texture("textures/blackhole")

	for i := range c.Backgrounds {
		c.Backgrounds[i] = ld.texture(fmt.Sprintf("textures/universe%d", i+1))
	}
	c.IntroBackground = ld.texture("textures/introbackground")
	c.Logo = ld.texture("textures/logo")
	c.EnergyIcon = ld.texture("textures/energy")
	c.ScienceIcon = ld.texture("textures/science")
	for i := range c.AbilityIcons {
		c.AbilityIcons[i] = ld.texture(fmt.Sprintf("textures/ability%dicon", i+1))
	}

	for i := range c.PlayerRockets {
		c.PlayerRockets[i] = ld.texture(fmt.Sprintf("textures/rocket%d_y", i+1))
	}
	for i := 0; i < NumEnemyRockets-1; i++ {
		c.EnemyRockets[i] = ld.texture(fmt.Sprintf("textures/rocket%d_r", i+1))
	}
	c.EnemyRockets[NumEnemyRockets-1] = ld.texture("textures/laser_beam")
	c.Explosion = ld.texture("textures/explosion")

	c.Player = ld.texture("textures/ship")
	for i := range c.Enemies {
		c.Enemies[i] = ld.texture(fmt.Sprintf("textures/enemy%d", i+1))
	}
	for i := range c.Bosses {
		c.Bosses[i] = ld.texture(fmt.Sprintf("textures/enemyboss%d", i+1))
	}

	c.Engine = ld.sound("audio/spaceship_move")
	c.Fire = ld.sound("audio/missile_fire")
	c.Hit = ld.sound("audio/missile_hit")
	c.Intro = ld.sound("audio/intro")
	var tracks [NumMusicTracks]core.SoundHandle
	for i := range tracks {
		tracks[i] = ld.sound(fmt.Sprintf("audio/background%02d", i+1))
	}
	for i := range c.Music {
		c.Music[i] = tracks[i%NumMusicTracks]
	}

	if ld.err != nil {
		return nil, ld.err
	}
	return c, nil
}
