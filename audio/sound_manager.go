package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/oxidian/sandpit/events"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager maps simulation events to short synthesized cues. Audio is
// strictly a consumer of the tick event stream; nothing here feeds back
// into the simulation.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		muted: muted,
	}
}

// Initialize sets up the audio system. Failure is expected on headless
// hosts; the caller treats it as non-fatal and the manager stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.muted {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// Dispatch plays the cue for each drained tick event
func (sm *SoundManager) Dispatch(evs []events.Event) {
	for i := range evs {
		sm.play(evs[i].Type)
	}
}

func (sm *SoundManager) play(t events.Type) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var s beep.Streamer
	switch t {
	case events.TypeJumped:
		s = take(60, NewChirpGenerator(sampleRate, 330, 660))
	case events.TypeLanded:
		s = take(50, NewThudGenerator(sampleRate, 90))
	case events.TypeJumpPadLaunched:
		s = take(180, NewChirpGenerator(sampleRate, 220, 1320))
	case events.TypeBounced:
		s = take(90, NewChirpGenerator(sampleRate, 660, 330))
	case events.TypeBlockBroken:
		s = take(250, NewCrackleGenerator(sampleRate))
	case events.TypeTNTTriggered, events.TypeKnockedBack:
		s = take(350, NewThudGenerator(sampleRate, 55))
	case events.TypeMizukiriSkip:
		s = take(80, NewChirpGenerator(sampleRate, 880, 1760))
	case events.TypeAccelerated:
		s = take(200, NewChirpGenerator(sampleRate, 110, 440))
	default:
		return
	}
	sm.mixer.Add(s)
}

func take(ms int, s beep.Streamer) beep.Streamer {
	return beep.Take(sampleRate.N(time.Duration(ms)*time.Millisecond), s)
}
