package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/void-sectors/internal/assets"
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     assets.Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

// newOscillator creates a fixed-length oscillator. A zero frequency is a rest.
func newOscillator(freq float64, duration time.Duration, wave assets.Wave, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rng,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch {
		case o.freq == 0:
			val = 0
		case o.wave == assets.WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case o.wave == assets.WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case o.wave == assets.WaveNoise:
			val = o.rng.Float64()*2 - 1
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// looper restarts a finite streamer every time it drains.
type looper struct {
	build func() beep.Streamer
	cur   beep.Streamer
}

func newLooper(build func() beep.Streamer) beep.Streamer {
	return &looper{build: build, cur: build()}
}

func (l *looper) Stream(samples [][2]float64) (n int, ok bool) {
	empty := 0
	for n < len(samples) {
		m, ok := l.cur.Stream(samples[n:])
		n += m
		if m == 0 {
			// A cue too short to yield a sample would spin forever.
			if empty++; empty > 1 {
				return n, n > 0
			}
		} else {
			empty = 0
		}
		if !ok {
			l.cur = l.build()
		}
	}
	return n, true
}

func (l *looper) Err() error { return l.cur.Err() }

// newVolume wraps s with a linear gain.
// math.Log2(0) is -Inf, so zero volume is rendered as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// cueStreamer renders one pass over a cue.
func cueStreamer(cue assets.Cue, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(cue.Notes))
	for _, freq := range cue.Notes {
		osc := newOscillator(freq, cue.Note, cue.Wave, rate, rng)
		notes = append(notes, newEnvelope(osc, cue.Note, cue.Attack, cue.Release, rate))
	}
	gain := cue.Gain
	if gain <= 0 {
		gain = 1
	}
	return newVolume(beep.Seq(notes...), gain)
}
