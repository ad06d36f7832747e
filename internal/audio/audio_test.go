package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// drain streams s to completion and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] > peak {
				peak = smp[0]
			}
			if -smp[0] > peak {
				peak = -smp[0]
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestCueLengths(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		cue  game.Cue
		want int
	}{
		{game.CuePositive, 2 * rate.N(positiveNote)},
		{game.CueNegative, rate.N(negativeBuzz)},
	}

	for _, tt := range tests {
		total, _ := drain(t, CueStreamer(tt.cue, rate, 1))
		if total != tt.want {
			t.Errorf("%s: %d samples, want %d", cueName(tt.cue), total, tt.want)
		}
	}
}

func TestToneStaysInRange(t *testing.T) {
	rate := beep.SampleRate(22050)
	for _, w := range []wave{waveSine, waveSaw} {
		_, peak := drain(t, newTone(440, 50*time.Millisecond, w, rate))
		if peak > 1 {
			t.Errorf("wave %d peak %f out of range", w, peak)
		}
		if peak == 0 {
			t.Errorf("wave %d is silent", w)
		}
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, CueStreamer(game.CueNegative, sampleRate, 0))
	if peak != 0 {
		t.Errorf("peak = %f, want silence", peak)
	}
}

func TestDisabledPlayerDropsCues(t *testing.T) {
	p, err := New(Config{Enabled: false, Volume: 0.5}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p.Play(game.CuePositive)
	p.Play(game.CueNegative)
	p.Close()
}
