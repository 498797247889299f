// Package audio implements core.Audio on top of gopxl/beep. Cues are
// synthesized from the asset manifest instead of decoded from files.
package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/void-sectors/internal/assets"
	"github.com/vovakirdan/void-sectors/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// CueSource resolves sound handles to cues.
type CueSource interface {
	Sound(h core.SoundHandle) (assets.Cue, bool)
}

// Player plays cues through the system speaker. Each handle owns one voice:
// playing a handle again restarts it, stopping it silences it.
type Player struct {
	mu          sync.Mutex
	cues        CueSource
	logger      *log.Logger
	mixer       *beep.Mixer
	voices      map[core.SoundHandle]*beep.Ctrl
	rng         *rand.Rand
	initialized bool
}

// NewPlayer creates a player over the given cue source.
func NewPlayer(cues CueSource, logger *log.Logger) *Player {
	return &Player{
		cues:   cues,
		logger: logger,
		mixer:  &beep.Mixer{},
		voices: make(map[core.SoundHandle]*beep.Ctrl),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Initialize opens the speaker. It must succeed before any cue is heard.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts a cue at the given linear volume.
func (p *Player) Play(sound core.SoundHandle, volume float64, loop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	cue, ok := p.cues.Sound(sound)
	if !ok {
		p.logger.Debug("unknown sound", "handle", sound)
		return
	}

	var s beep.Streamer
	if loop {
		s = newLooper(func() beep.Streamer { return cueStreamer(cue, sampleRate, p.rng) })
	} else {
		s = cueStreamer(cue, sampleRate, p.rng)
	}
	ctrl := &beep.Ctrl{Streamer: newVolume(s, volume), Paused: false}

	speaker.Lock()
	if prev, ok := p.voices[sound]; ok {
		prev.Paused = true
		prev.Streamer = nil
	}
	p.voices[sound] = ctrl
	p.mixer.Add(ctrl)
	speaker.Unlock()
}

// Stop silences the voice of a handle, if any.
func (p *Player) Stop(sound core.SoundHandle) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctrl, ok := p.voices[sound]
	if !ok {
		return
	}
	speaker.Lock()
	ctrl.Paused = true
	ctrl.Streamer = nil
	speaker.Unlock()
	delete(p.voices, sound)
}

// Close stops all sounds and releases the mixer.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	for h, ctrl := range p.voices {
		ctrl.Paused = true
		ctrl.Streamer = nil
		delete(p.voices, h)
	}
	p.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker teardown beyond clearing the mixer
	p.initialized = false
}

// Silent discards every cue.
type Silent struct{}

// Play does nothing.
func (Silent) Play(core.SoundHandle, float64, bool) {}

// Stop does nothing.
func (Silent) Stop(core.SoundHandle) {}

// Open returns a speaker-backed player, or Silent when muted or when the
// speaker cannot be opened. The returned close function is always safe to call.
func Open(cues CueSource, muted bool, logger *log.Logger) (core.Audio, func()) {
	if muted {
		return Silent{}, func() {}
	}
	p := NewPlayer(cues, logger)
	if err := p.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing silently", "error", err)
		return Silent{}, func() {}
	}
	return p, p.Close
}
