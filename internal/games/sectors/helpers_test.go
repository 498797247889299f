package sectors

import (
	"testing"

	"github.com/vovakirdan/void-sectors/internal/assets"
	"github.com/vovakirdan/void-sectors/internal/config"
	"github.com/vovakirdan/void-sectors/internal/core"
)

func testCatalog(t *testing.T) *assets.Catalog {
	t.Helper()
	m, err := assets.DefaultManifest()
	if err != nil {
		t.Fatalf("DefaultManifest() error = %v", err)
	}
	cat, err := assets.LoadCatalog(assets.NewSheet(m))
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	return cat
}

type audioEvent struct {
	op    string // "play" or "stop"
	sound core.SoundHandle
	loop  bool
}

type recordingAudio struct {
	events []audioEvent
}

func (a *recordingAudio) Play(sound core.SoundHandle, _ float64, loop bool) {
	a.events = append(a.events, audioEvent{op: "play", sound: sound, loop: loop})
}

func (a *recordingAudio) Stop(sound core.SoundHandle) {
	a.events = append(a.events, audioEvent{op: "stop", sound: sound})
}

func (a *recordingAudio) count(op string, sound core.SoundHandle) int {
	n := 0
	for _, e := range a.events {
		if e.op == op && e.sound == sound {
			n++
		}
	}
	return n
}

type spriteCall struct {
	tex  core.TextureHandle
	x, y float64
	w, h float64
	z    int
}

type recordingSurface struct {
	sprites []spriteCall
	models  []core.TextureHandle
	texts   []string
}

func (s *recordingSurface) DrawSprite(tex core.TextureHandle, x, y, w, h float64, z int, _ float64) {
	s.sprites = append(s.sprites, spriteCall{tex: tex, x: x, y: y, w: w, h: h, z: z})
}

func (s *recordingSurface) DrawModel(_ core.MeshHandle, tex core.TextureHandle, _ core.Vec3, _ float64) {
	s.models = append(s.models, tex)
}

func (s *recordingSurface) DrawText(_, _ float64, text string) {
	s.texts = append(s.texts, text)
}

func (s *recordingSurface) hasText(text string) bool {
	for _, t := range s.texts {
		if t == text {
			return true
		}
	}
	return false
}

func newTestGame(t *testing.T, seed int64, tickRate int) (*Game, *recordingAudio) {
	t.Helper()
	a := &recordingAudio{}
	g := New(config.DefaultSectorsConfig(), testCatalog(t), WithAudio(a))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: tickRate, Seed: seed})
	return g, a
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// startRun confirms on the start screen and clears the generated sector so
// tests can place entities by hand.
func startRun(t *testing.T, g *Game) {
	t.Helper()
	g.Step(press(core.ActionConfirm))
	if g.Scene() != SceneExploration {
		t.Fatalf("Scene() = %v after confirm, expected exploration", g.Scene())
	}
	g.enemies = nil
	g.planets = nil
	g.rockets = nil
}

func idle(g *Game, frames int) {
	for i := 0; i < frames; i++ {
		g.Step(core.NewInputFrame())
	}
}
