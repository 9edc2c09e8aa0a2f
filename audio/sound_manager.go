// Package audio plays short feedback sounds for row edits.
// Every method is safe to call before Initialize or after Cleanup; in that
// case nothing is played.
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/wordrow/row"
)

// SoundManager owns the speaker mixer for the session
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs))
	if err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// Speaker stays open; an empty mixer is silent
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// PlayKey plays the click for an accepted letter
func (sm *SoundManager) PlayKey() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*tickDurationMs), NewTickGenerator(sampleRate)))
}

// PlayErase plays a lower click for a cleared cell
func (sm *SoundManager) PlayErase() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*tickDurationMs),
		beep.ResampleRatio(3, 0.75, NewTickGenerator(sampleRate))))
}

// PlayError plays a short buzz for a key that had no effect
func (sm *SoundManager) PlayError() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*errorBuzzDurationMs),
		NewBuzzGenerator(sampleRate, errorBuzzFrequencyHz)))
}

// PlaySubmit plays the rising chime for a submitted row
func (sm *SoundManager) PlaySubmit() {
	sm.play(NewChimeGenerator(sampleRate, chimeNotesHz[:]))
}

// PlayOutcome picks the sound for one reducer step
func (sm *SoundManager) PlayOutcome(o row.Outcome) {
	switch o {
	case row.OutcomeTyped:
		sm.PlayKey()
	case row.OutcomeErased:
		sm.PlayErase()
	case row.OutcomeSubmitted:
		sm.PlaySubmit()
	default:
		sm.PlayError()
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
