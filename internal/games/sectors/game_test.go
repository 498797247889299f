package sectors

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/void-sectors/internal/core"
)

func placeEnemy(g *Game, pos core.Vec2, energy int) *Ship {
	e := newShip(shipSpec{
		kind:      KindEnemy,
		speed:     g.cfg.Enemy.Speed,
		pos:       pos,
		size:      shipSize(g.cfg.Playfield),
		texture:   g.cat.Enemies[0],
		energy:    energy,
		abilities: abilitySet(g.cfg.Abilities.Enemy),
		cooldown:  g.cfg.Enemy.Cooldown,
	}, g.now)
	g.enemies = append(g.enemies, e)
	return e
}

// holdFire keeps a ship from firing for the rest of a test.
func holdFire(s *Ship) {
	s.CooldownAt = time.Hour
}

func TestStartScene(t *testing.T) {
	g, a := newTestGame(t, 1, 60)

	idle(g, 5)
	if g.Scene() != SceneStart {
		t.Fatalf("Scene() = %v, expected start", g.Scene())
	}
	if got := a.count("play", g.cat.Intro); got != 1 {
		t.Errorf("intro played %d times, expected 1", got)
	}

	g.Step(press(core.ActionConfirm))
	if g.Scene() != SceneExploration {
		t.Fatalf("Scene() = %v after confirm, expected exploration", g.Scene())
	}
	if got := a.count("stop", g.cat.Intro); got != 1 {
		t.Errorf("intro stopped %d times, expected 1", got)
	}
	music := g.cat.Music[g.background]
	if got := a.count("play", music); got != 1 {
		t.Errorf("sector music played %d times, expected 1", got)
	}

	snap := g.Snapshot()
	if snap.Sector != 1 || snap.Energy != 100 || snap.Science != 0 {
		t.Errorf("Snapshot() = %+v, expected sector 1 with 100 energy and no science", snap)
	}
	if snap.Enemies != 1 {
		t.Errorf("Snapshot().Enemies = %d, expected 1", snap.Enemies)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g, _ := newTestGame(t, 1, 60)

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Fatal("pause toggled on the start screen")
	}

	startRun(t, g)
	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("State().Paused = false, expected true")
	}
	now := g.Now()
	idle(g, 10)
	if g.Now() != now {
		t.Errorf("Now() = %v while paused, expected %v", g.Now(), now)
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("State().Paused = true after second toggle")
	}
}

func TestMouseClickSetsDestination(t *testing.T) {
	g, a := newTestGame(t, 1, 60)
	startRun(t, g)

	in := core.NewInputFrame()
	in.Click(400, 100)
	g.Step(in)

	if g.player.Dest != core.V2(400, 500) {
		t.Errorf("Dest = %v, expected (400, 500)", g.player.Dest)
	}
	idle(g, 3)
	if got := a.count("play", g.cat.Engine); got != 1 {
		t.Errorf("engine played %d times, expected 1", got)
	}

	out := core.NewInputFrame()
	out.Click(900, 100)
	g.Step(out)
	if g.player.Dest != core.V2(400, 500) {
		t.Errorf("Dest = %v after click outside the playfield, expected unchanged", g.player.Dest)
	}
}

func TestRocketPurgeAfterLinger(t *testing.T) {
	g, _ := newTestGame(t, 1, 50) // 20ms steps
	startRun(t, g)

	g.rockets = append(g.rockets, &Rocket{
		Pos:        core.V2(400, 300),
		Size:       core.V2(20, 20),
		Exploded:   true,
		ExplodedAt: g.Now(),
	})

	idle(g, 50)
	if len(g.rockets) != 1 {
		t.Fatalf("rockets = %d after exactly the linger time, expected 1", len(g.rockets))
	}
	idle(g, 1)
	if len(g.rockets) != 0 {
		t.Errorf("rockets = %d after the linger time, expected 0", len(g.rockets))
	}
}

func TestRocketOutOfBoundsExplodes(t *testing.T) {
	g, _ := newTestGame(t, 1, 60)
	startRun(t, g)

	a := g.player.Abilities[0]
	r := newRocket(core.V2(799, 300), core.V2(1, 0), a, g.cat.PlayerRockets[0], ShooterPlayer)
	g.rockets = append(g.rockets, r)

	idle(g, 15)
	if !r.Exploded {
		t.Fatal("rocket past the edge did not explode")
	}
	if r.Texture != g.cat.PlayerRockets[0] {
		t.Errorf("Texture = %d, expected the flight sprite to stay", r.Texture)
	}
}

func TestPlayerRocketHitsEveryOverlappingEnemy(t *testing.T) {
	g, a := newTestGame(t, 1, 60)
	startRun(t, g)

	first := placeEnemy(g, core.V2(400, 300), 500)
	second := placeEnemy(g, core.V2(400, 310), 500)
	holdFire(first)
	holdFire(second)

	r := newRocket(core.V2(390, 300), core.V2(1, 0), g.player.Abilities[0], g.cat.PlayerRockets[0], ShooterPlayer)
	g.rockets = append(g.rockets, r)
	g.Step(core.NewInputFrame())

	for i, e := range []*Ship{first, second} {
		if e.Energy != 400 {
			t.Errorf("enemy %d Energy = %d, expected 400", i, e.Energy)
		}
	}
	if !r.Exploded || r.Texture != g.cat.Explosion {
		t.Errorf("rocket exploded = %v texture = %d, expected explosion", r.Exploded, r.Texture)
	}
	if a.count("stop", g.cat.Fire) != 1 || a.count("play", g.cat.Hit) != 1 {
		t.Errorf("audio events = %+v, expected fire stopped and hit played", a.events)
	}

	g.Step(core.NewInputFrame())
	if first.Energy != 400 {
		t.Errorf("exploded rocket hit again: Energy = %d", first.Energy)
	}
}

func TestEnemyRocketDamagesPlayer(t *testing.T) {
	g, _ := newTestGame(t, 1, 60)
	startRun(t, g)
	g.player.SetEnergy(1000)

	a := Ability{Damage: 250, Speed: 100, Size: 30}
	r := newRocket(g.player.Pos.Add(core.V2(20, 0)), core.V2(-1, 0), a, g.cat.EnemyRockets[0], ShooterEnemy)
	g.rockets = append(g.rockets, r)
	g.Step(core.NewInputFrame())

	if g.player.Energy != 750 {
		t.Errorf("Energy = %d, expected 750", g.player.Energy)
	}
}

func TestDeadEnemiesPurged(t *testing.T) {
	g, _ := newTestGame(t, 1, 60)
	startRun(t, g)

	dead := placeEnemy(g, core.V2(600, 100), 100)
	alive := placeEnemy(g, core.V2(600, 500), 100)
	holdFire(dead)
	holdFire(alive)
	dead.SetEnergy(0)

	g.Step(core.NewInputFrame())
	if len(g.enemies) != 1 || g.enemies[0] != alive {
		t.Errorf("enemies = %d, expected only the live enemy", len(g.enemies))
	}
}

func TestEnemyContact(t *testing.T) {
	tests := []struct {
		name     string
		energy   int
		expected int
		gameOver bool
	}{
		{"survives", 1000, 700, false},
		{"destroyed", 100, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame(t, 1, 60)
			startRun(t, g)
			g.player.SetEnergy(tc.energy)
			holdFire(placeEnemy(g, g.player.Pos.Add(core.V2(5, 0)), 500))

			g.Step(core.NewInputFrame())
			if g.player.Energy != tc.expected {
				t.Errorf("Energy = %d, expected %d", g.player.Energy, tc.expected)
			}
			if g.sector != 1 {
				t.Errorf("sector = %d after contact, expected 1", g.sector)
			}
			if len(g.enemies) != 1 || g.enemies[0].Pos == g.player.Pos.Add(core.V2(5, 0)) {
				t.Error("sector was not regenerated after contact")
			}
			if g.player.Pos != g.playerStart() {
				t.Errorf("player Pos = %v, expected start %v", g.player.Pos, g.playerStart())
			}

			g.Step(core.NewInputFrame())
			if g.State().GameOver != tc.gameOver {
				t.Errorf("State().GameOver = %v, expected %v", g.State().GameOver, tc.gameOver)
			}
		})
	}
}

func TestGameOverReturnsToStart(t *testing.T) {
	g, _ := newTestGame(t, 1, 60)
	startRun(t, g)
	g.player.SetEnergy(0)

	g.Step(core.NewInputFrame())
	if g.Scene() != SceneGameOver {
		t.Fatalf("Scene() = %v, expected game over", g.Scene())
	}
	g.Step(press(core.ActionConfirm))
	if g.Scene() != SceneStart {
		t.Fatalf("Scene() = %v, expected start", g.Scene())
	}
	g.Step(press(core.ActionConfirm))
	if g.sector != 1 || g.player.Energy != 100 {
		t.Errorf("new run sector = %d energy = %d, expected 1 and 100", g.sector, g.player.Energy)
	}
}

func TestSectorExit(t *testing.T) {
	t.Run("blocked by enemies", func(t *testing.T) {
		g, _ := newTestGame(t, 1, 60)
		startRun(t, g)
		holdFire(placeEnemy(g, core.V2(100, 100), 500))
		g.player.Pos = core.V2(790, 300)
		g.player.Dest = g.player.Pos

		g.Step(core.NewInputFrame())
		if !g.Snapshot().LevelNotClear {
			t.Error("LevelNotClear = false, expected true")
		}
		if g.sector != 1 {
			t.Errorf("sector = %d, expected 1", g.sector)
		}
		s := &recordingSurface{}
		g.Render(s)
		if !s.hasText("You must clear all enemies to move on") {
			t.Errorf("texts = %q, expected the clear warning", s.texts)
		}
	})

	t.Run("advances when clear", func(t *testing.T) {
		g, _ := newTestGame(t, 1, 60)
		startRun(t, g)
		g.player.Pos = core.V2(790, 300)
		g.player.Dest = g.player.Pos

		g.Step(core.NewInputFrame())
		if g.sector != 2 {
			t.Fatalf("sector = %d, expected 2", g.sector)
		}
		if g.player.Pos != g.playerStart() {
			t.Errorf("player Pos = %v, expected %v", g.player.Pos, g.playerStart())
		}
		if len(g.rockets) != 0 {
			t.Errorf("rockets = %d after advancing, expected 0", len(g.rockets))
		}
		if len(g.enemies) != 1 {
			t.Errorf("enemies = %d in sector 2, expected 1", len(g.enemies))
		}
	})
}

func TestPlayerFire(t *testing.T) {
	g, a := newTestGame(t, 1, 50)
	startRun(t, g)

	g.Step(press(core.ActionAbility1))
	if len(g.rockets) != 0 {
		t.Fatalf("rockets = %d without science, expected 0", len(g.rockets))
	}

	g.player.Science = 1000
	g.Step(press(core.ActionAbility1))
	if len(g.rockets) != 1 {
		t.Fatalf("rockets = %d, expected 1", len(g.rockets))
	}
	if g.player.Science != 950 {
		t.Errorf("Science = %d, expected 950", g.player.Science)
	}
	r := g.rockets[0]
	if r.Shooter != ShooterPlayer || r.Dir != core.V2(1, 0) {
		t.Errorf("rocket shooter = %v dir = %v, expected player along +x", r.Shooter, r.Dir)
	}

	// No shared cooldown for the player
	g.Step(press(core.ActionAbility2))
	if len(g.rockets) != 2 {
		t.Fatalf("rockets = %d after second slot, expected 2", len(g.rockets))
	}

	idle(g, 48)
	g.Step(press(core.ActionAbility1))
	if len(g.rockets) != 2 {
		t.Fatalf("slot fired after exactly its cooldown: rockets = %d", len(g.rockets))
	}
	g.Step(press(core.ActionAbility1))
	if len(g.rockets) != 3 {
		t.Errorf("rockets = %d after the cooldown, expected 3", len(g.rockets))
	}
	if got := a.count("play", g.cat.Fire); got != 3 {
		t.Errorf("fire played %d times, expected 3", got)
	}
}

func TestEnemySlotSelection(t *testing.T) {
	tests := []struct {
		sector   int
		first    int
		fallback int
	}{
		{5, 200, 200},
		{15, 300, 200},
		{25, 500, 300},
	}

	for _, tc := range tests {
		g, a := newTestGame(t, 1, 60)
		startRun(t, g)
		g.sector = tc.sector
		placeEnemy(g, core.V2(600, 300), 500)

		g.now += g.step
		g.fireEnemies()
		if len(g.rockets) != 1 || g.rockets[0].Damage != tc.first {
			t.Fatalf("sector %d: first shot = %d rockets, expected one with damage %d", tc.sector, len(g.rockets), tc.first)
		}

		g.now += time.Second
		g.fireEnemies()
		if len(g.rockets) != 1 {
			t.Fatalf("sector %d: fired inside the shared cooldown", tc.sector)
		}

		g.now += time.Second + g.step
		g.fireEnemies()
		if len(g.rockets) != 2 {
			t.Fatalf("sector %d: rockets = %d after the shared cooldown, expected 2", tc.sector, len(g.rockets))
		}
		if got := g.rockets[1].Damage; got != tc.fallback {
			t.Errorf("sector %d: second shot damage = %d, expected %d", tc.sector, got, tc.fallback)
		}
		if got := a.count("play", g.cat.Fire); got != 2 {
			t.Errorf("sector %d: fire played %d times, expected 2", tc.sector, got)
		}
	}
}

func TestEnemyAimsAtPlayer(t *testing.T) {
	g, _ := newTestGame(t, 1, 60)
	startRun(t, g)
	e := placeEnemy(g, core.V2(600, 500), 500)

	g.now += g.step
	g.fireEnemies()
	if len(g.rockets) != 1 {
		t.Fatalf("rockets = %d, expected 1", len(g.rockets))
	}
	want := g.player.Pos.Sub(e.Pos).Normalize()
	got := g.rockets[0].Dir
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("Dir = %v, expected %v", got, want)
	}
}

func TestBossFiresParallelPair(t *testing.T) {
	g, _ := newTestGame(t, 1, 60)
	startRun(t, g)
	g.sector = 20
	boss := Roster(20, g.cfg, g.cat, g.now)[0]
	boss.Pos = core.V2(720, 300)
	g.enemies = []*Ship{boss}

	g.now += g.step
	g.fireEnemies()
	if len(g.rockets) != 2 {
		t.Fatalf("rockets = %d, expected a pair", len(g.rockets))
	}
	a, b := g.rockets[0], g.rockets[1]
	if d := a.Pos.Sub(b.Pos).Len(); math.Abs(d-60) > 1e-9 {
		t.Errorf("pair spacing = %v, expected 60", d)
	}
	if a.Dir != b.Dir {
		t.Errorf("pair directions %v and %v, expected parallel", a.Dir, b.Dir)
	}
	for i, r := range []*Rocket{a, b} {
		if d := r.Pos.Sub(boss.Pos).Len(); math.Abs(d-30) > 1e-9 {
			t.Errorf("rocket %d offset = %v, expected 30", i, d)
		}
		if r.Damage != 300 {
			t.Errorf("rocket %d Damage = %d, expected 300", i, r.Damage)
		}
	}
}

func TestBossReinforcesOnce(t *testing.T) {
	g, _ := newTestGame(t, 1, 60)
	startRun(t, g)
	g.sector = 20
	g.enemies = Roster(20, g.cfg, g.cat, g.now)
	for _, e := range g.enemies {
		holdFire(e)
	}
	boss := g.enemies[0]

	g.Step(core.NewInputFrame())
	if len(g.enemies) != 3 {
		t.Fatalf("enemies = %d at full energy, expected 3", len(g.enemies))
	}

	boss.SetEnergy(boss.MaxEnergy/3 - 1)
	g.Step(core.NewInputFrame())
	if len(g.enemies) != 5 || !boss.SpawnedMinions {
		t.Fatalf("enemies = %d after the threshold, expected 5", len(g.enemies))
	}
	for _, m := range g.enemies[3:] {
		if m.Kind != KindMinion {
			t.Errorf("reinforcement Kind = %v, expected minion", m.Kind)
		}
	}

	g.Step(core.NewInputFrame())
	if len(g.enemies) != 5 {
		t.Errorf("enemies = %d, expected reinforcements only once", len(g.enemies))
	}
}

func TestHeal(t *testing.T) {
	g, _ := newTestGame(t, 1, 60)
	startRun(t, g)
	p := g.player
	p.Science = 600

	g.Step(press(core.ActionHeal))
	if p.Energy != 600 || p.Science != 100 {
		t.Fatalf("Energy = %d Science = %d, expected 600 and 100", p.Energy, p.Science)
	}

	p.Science = 600
	g.Step(press(core.ActionHeal))
	if p.Energy != 600 {
		t.Errorf("healed again inside the interval: Energy = %d", p.Energy)
	}

	idle(g, 60)
	p.SetEnergy(p.MaxEnergy)
	g.Step(press(core.ActionHeal))
	if p.Science != 600 {
		t.Errorf("heal at full energy spent science: Science = %d", p.Science)
	}
}

func TestDiscoveryBlackHole(t *testing.T) {
	g, _ := newTestGame(t, 1, 60)
	startRun(t, g)

	home := core.Vec3{X: 1, Y: 2, Z: 9}
	planet := &Planet{
		Name:    planetNames[3],
		Type:    3,
		Pos:     home,
		Tile:    g.player.Rect(),
		Energy:  50,
		Science: 120,
		Texture: g.cat.Planets[3],
	}
	g.planets = []*Planet{planet}

	g.Step(core.NewInputFrame())
	if !g.Snapshot().NearPlanet {
		t.Fatal("NearPlanet = false while overlapping a planet")
	}

	g.Step(press(core.ActionInteract))
	if g.Scene() != SceneDiscovery {
		t.Fatalf("Scene() = %v, expected discovery", g.Scene())
	}
	if planet.Pos != inspectionPose {
		t.Errorf("planet Pos = %v, expected inspection pose", planet.Pos)
	}

	g.Step(press(core.ActionAbility1))
	g.Step(press(core.ActionAbility2))
	if g.player.Energy != 150 || g.player.Science != 120 || g.scienceGathered != 120 {
		t.Errorf("Energy = %d Science = %d gathered = %d, expected 150, 120, 120",
			g.player.Energy, g.player.Science, g.scienceGathered)
	}

	g.Step(press(core.ActionAbility3))
	if g.Scene() != SceneExploration {
		t.Fatalf("Scene() = %v, expected exploration", g.Scene())
	}
	if !planet.Visited || planet.Texture != g.cat.BlackHole() {
		t.Errorf("planet visited = %v texture = %d, expected black hole", planet.Visited, planet.Texture)
	}
	if planet.Pos != home {
		t.Errorf("planet Pos = %v, expected %v", planet.Pos, home)
	}

	g.Step(press(core.ActionInteract))
	if g.Scene() != SceneExploration {
		t.Errorf("black hole entered discovery")
	}
	if g.Snapshot().NearPlanet {
		t.Error("NearPlanet = true for a black hole")
	}
}

func TestDiscoveryKeepsPartialPlanet(t *testing.T) {
	g, _ := newTestGame(t, 1, 60)
	startRun(t, g)
	planet := &Planet{Tile: g.player.Rect(), Energy: 50, Science: 120, Texture: g.cat.Planets[0]}
	g.planets = []*Planet{planet}

	g.Step(press(core.ActionInteract))
	g.Step(press(core.ActionAbility1))
	g.Step(press(core.ActionConfirm))

	if planet.Visited || planet.Texture != g.cat.Planets[0] {
		t.Error("planet with science left became a black hole")
	}
}

func TestDeterminism(t *testing.T) {
	script := func(frame int) core.InputFrame {
		in := core.NewInputFrame()
		switch {
		case frame == 0:
			in.Set(core.ActionConfirm)
		case frame%90 == 10:
			in.Click(float64(100+frame%700), float64(50+frame%500))
		case frame%45 == 0:
			in.Set(core.ActionAbility1)
		}
		return in
	}

	a, _ := newTestGame(t, 42, 60)
	b, _ := newTestGame(t, 42, 60)
	for frame := 0; frame < 600; frame++ {
		a.Step(script(frame))
		b.Step(script(frame))
		if a.Snapshot() != b.Snapshot() {
			t.Fatalf("frame %d: snapshots diverged\n%+v\n%+v", frame, a.Snapshot(), b.Snapshot())
		}
	}
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(t, 1, 60)

	s := &recordingSurface{}
	g.Render(s)
	if len(s.sprites) == 0 || s.sprites[0].tex != g.cat.IntroBackground || s.sprites[0].z != zBackground {
		t.Errorf("first sprite = %+v, expected the intro background", s.sprites)
	}
	if !s.hasText("Press Enter to Play") {
		t.Errorf("texts = %q, expected the start prompt", s.texts)
	}

	startRun(t, g)
	s = &recordingSurface{}
	g.Render(s)
	if s.sprites[0].tex != g.cat.Backgrounds[g.background] {
		t.Errorf("background = %d, expected %d", s.sprites[0].tex, g.cat.Backgrounds[g.background])
	}
	found := false
	for _, sp := range s.sprites {
		if sp.tex == g.cat.Player && sp.z == zPlayer {
			found = true
		}
	}
	if !found {
		t.Error("player sprite not drawn")
	}
	if !s.hasText("1") || !s.hasText("100") {
		t.Errorf("texts = %q, expected sector and energy", s.texts)
	}

	g.scene = SceneGameOver
	s = &recordingSurface{}
	g.Render(s)
	for _, sp := range s.sprites {
		if sp.z == zBackground {
			t.Error("background drawn on the game over screen")
		}
	}
	if !s.hasText("Game Over") || !s.hasText("Sector 1") {
		t.Errorf("texts = %q, expected the game over summary", s.texts)
	}
}
