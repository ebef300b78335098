package audio

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/bonus-pong/internal/config"
	"github.com/vovakirdan/bonus-pong/internal/core"
)

// drain streams s to completion and returns the sample count and peak amplitude.
func drain(t *testing.T, stream interface {
	Stream([][2]float64) (int, bool)
}) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for range 10000 {
		n, ok := stream.Stream(buf)
		for i := range n {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream did not finish")
	return 0, 0
}

func TestSoundBankStreamerLength(t *testing.T) {
	bank := NewSoundBank(0.5)

	cues := []core.Cue{
		core.CueWallCollision,
		core.CuePaddleCollision,
		core.CueGoal,
		core.CueSpeedBoost,
		core.CueTeleport,
		core.CueSplit,
		core.CueMenu,
	}

	for _, cue := range cues {
		t.Run(cue.String(), func(t *testing.T) {
			s, err := bank.Streamer(cue)
			if err != nil {
				t.Fatalf("Streamer(%v) failed: %v", cue, err)
			}
			if s == nil {
				t.Fatalf("Streamer(%v) returned nil", cue)
			}

			want := 0
			for _, n := range cueNotes[cue] {
				want += sampleRate.N(n.dur)
			}
			got, peak := drain(t, s)
			if got != want {
				t.Errorf("streamed %d samples, expected %d", got, want)
			}
			if peak > 0.5+1e-9 {
				t.Errorf("peak amplitude %f exceeds volume 0.5", peak)
			}
			if peak == 0 {
				t.Error("expected an audible tone")
			}
		})
	}
}

func TestSoundBankUnknownCue(t *testing.T) {
	s, err := NewSoundBank(1).Streamer(core.CueNone)
	if err != nil || s != nil {
		t.Errorf("Streamer(CueNone) = %v, %v; expected nil, nil", s, err)
	}
}

func TestSoundBankSilentVolume(t *testing.T) {
	s, err := NewSoundBank(0).Streamer(core.CueGoal)
	if err != nil {
		t.Fatalf("Streamer failed: %v", err)
	}
	if _, peak := drain(t, s); peak != 0 {
		t.Errorf("peak = %f, expected silence", peak)
	}
}

func TestSoundBankPlayBeforeInit(t *testing.T) {
	bank := NewSoundBank(1)
	// Must be a no-op without a speaker
	bank.Play(core.CueGoal)
	bank.Close()
}

func TestNewReturnsNop(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.AudioConfig
		mute bool
	}{
		{"muted", config.AudioConfig{Enabled: true, Volume: 1}, true},
		{"disabled", config.AudioConfig{Enabled: false, Volume: 1}, false},
		{"zero volume", config.AudioConfig{Enabled: true, Volume: 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := New(tc.cfg, tc.mute, nil).(Nop); !ok {
				t.Error("expected Nop player")
			}
		})
	}
}

func TestCueNotesAreShort(t *testing.T) {
	for cue, notes := range cueNotes {
		var total time.Duration
		for _, n := range notes {
			total += n.dur
		}
		if total > 500*time.Millisecond {
			t.Errorf("%v lasts %v, cues should stay under half a second", cue, total)
		}
	}
}
