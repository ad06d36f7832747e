// Package audio plays the game's positive and negative cues through the
// system speaker.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Cue durations.
const (
	positiveNote = 60 * time.Millisecond
	negativeBuzz = 180 * time.Millisecond
)

// Config controls the speaker output.
type Config struct {
	Enabled bool
	Volume  float64 // 0..1
}

// Player mixes cues onto the speaker. Play never blocks the caller.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

var _ game.Sounder = (*Player)(nil)

// New initializes the speaker. A disabled config returns a player that
// drops every cue.
func New(cfg Config, logger *log.Logger) (*Player, error) {
	p := &Player{
		mixer:  &beep.Mixer{},
		volume: cfg.Volume,
		logger: logger,
	}
	if !cfg.Enabled {
		return p, nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return p, nil
}

// Play queues the sound for cue.
func (p *Player) Play(cue game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Add(CueStreamer(cue, sampleRate, p.volume))
	speaker.Unlock()
	if p.logger != nil {
		p.logger.Debug("cue", "kind", cueName(cue))
	}
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// CueStreamer builds the finite streamer for cue.
func CueStreamer(cue game.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case game.CueNegative:
		s = newTone(160, negativeBuzz, waveSaw, rate)
	default:
		s = beep.Seq(
			newTone(660, positiveNote, waveSine, rate),
			newTone(990, positiveNote, waveSine, rate),
		)
	}
	return newVolume(s, volume)
}

func cueName(cue game.Cue) string {
	if cue == game.CueNegative {
		return "negative"
	}
	return "positive"
}

// newVolume maps a linear 0..1 volume onto effects.Volume's log scale.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type wave int

const (
	waveSine wave = iota
	waveSaw
)

// tone is a fixed-length oscillator with a linear fade-out.
type tone struct {
	freq   float64
	phase  float64
	pos    int
	length int
	wave   wave
	rate   beep.SampleRate
}

func newTone(freq float64, d time.Duration, w wave, rate beep.SampleRate) *tone {
	return &tone{freq: freq, length: rate.N(d), wave: w, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case waveSaw:
			v = 2 * (t.phase - 0.5)
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		fade := 1 - float64(t.pos)/float64(t.length)
		v *= 0.3 * fade

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
