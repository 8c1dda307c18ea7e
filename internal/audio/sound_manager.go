// Package audio plays short synthesized cues for game events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager mixes event cues onto the speaker.
// Every method is safe to call when the speaker could not be initialized;
// the game then simply runs silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	output      sync.Locker // Guards the mixer while the speaker streams it
	initialized bool
	muted       bool
}

// speakerLock locks the speaker's streaming goroutine.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		output: speakerLock{},
	}
}

// withMixer runs fn on the mixer, holding the speaker lock once the mixer
// is playing. Caller holds sm.mu.
func (sm *SoundManager) withMixer(fn func(*beep.Mixer)) {
	if sm.initialized {
		sm.output.Lock()
		defer sm.output.Unlock()
	}
	fn(sm.mixer)
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// 100ms of buffer keeps latency low enough for per-hop cues.
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds. beep has no speaker Close, so the mixer is
// cleared instead.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.withMixer((*beep.Mixer).Clear)
	sm.initialized = false
}

// SetMuted toggles output without tearing the speaker down.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	if muted {
		sm.withMixer((*beep.Mixer).Clear)
	}
}

// Muted reports whether cues are suppressed.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues the cue for ev. Events without a cue are ignored.
func (sm *SoundManager) Play(ev core.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	if s := Cue(ev); s != nil {
		sm.withMixer(func(m *beep.Mixer) { m.Add(s) })
	}
}

// PlayAll queues the cues for every event of a frame.
func (sm *SoundManager) PlayAll(events []core.Event) {
	for _, ev := range events {
		sm.Play(ev)
	}
}

// Cue builds the finite streamer for an event, or nil when the event is silent.
func Cue(ev core.Event) beep.Streamer {
	switch ev {
	case core.EventHop:
		return beep.Take(sampleRate.N(time.Millisecond*40), NewToneGenerator(sampleRate, 660))
	case core.EventBlocked:
		return beep.Take(sampleRate.N(time.Millisecond*80), NewToneGenerator(sampleRate, 140))
	case core.EventScored:
		return beep.Take(sampleRate.N(time.Millisecond*250), NewSweepGenerator(sampleRate, 440, 1320, time.Millisecond*250))
	case core.EventSquashed:
		return beep.Take(sampleRate.N(time.Millisecond*300), NewNoiseGenerator(sampleRate, 1))
	default:
		return nil
	}
}
