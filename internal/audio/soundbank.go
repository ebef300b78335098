package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/bonus-pong/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// note is one tone of a cue; zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// cueNotes defines the melody for each cue.
var cueNotes = map[core.Cue][]note{
	core.CueWallCollision:   {{330, 35 * time.Millisecond}},
	core.CuePaddleCollision: {{660, 45 * time.Millisecond}},
	core.CueGoal: {
		{523, 90 * time.Millisecond},
		{392, 90 * time.Millisecond},
		{262, 160 * time.Millisecond},
	},
	core.CueSpeedBoost: {
		{440, 40 * time.Millisecond},
		{660, 40 * time.Millisecond},
		{880, 60 * time.Millisecond},
	},
	core.CueTeleport: {
		{1200, 40 * time.Millisecond},
		{0, 20 * time.Millisecond},
		{600, 60 * time.Millisecond},
	},
	core.CueSplit: {
		{300, 50 * time.Millisecond},
		{0, 25 * time.Millisecond},
		{300, 50 * time.Millisecond},
	},
	core.CueMenu: {{880, 30 * time.Millisecond}},
}

// SoundBank synthesises cue tones and mixes them onto the speaker.
type SoundBank struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundBank creates a sound bank with volume in [0, 1].
func NewSoundBank(volume float64) *SoundBank {
	return &SoundBank{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Init opens the speaker and starts the mixer.
func (b *SoundBank) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Play queues the tone for a cue. Unknown cues are ignored.
func (b *SoundBank) Play(cue core.Cue) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	s, err := b.Streamer(cue)
	if err != nil || s == nil {
		return
	}

	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all queued sounds.
func (b *SoundBank) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}

// Streamer builds the finite stream for a cue, or nil for cues without sound.
func (b *SoundBank) Streamer(cue core.Cue) (beep.Streamer, error) {
	notes, ok := cueNotes[cue]
	if !ok {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := sampleRate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: %v tone: %w", cue, err)
		}
		parts = append(parts, beep.Take(samples, tone))
	}

	return newVolume(beep.Seq(parts...), b.volume), nil
}

// newVolume scales a stream linearly; zero is silent since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
