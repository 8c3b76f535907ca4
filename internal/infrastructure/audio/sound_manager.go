// Package audio plays short synthesized cues for game events.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/desertrun/internal/domain/event"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
)

// SoundManager turns events into sound cues. Without a working audio
// device every call is a no-op, so the game runs silent.
type SoundManager struct {
	mu          sync.Mutex
	config      config.AudioConfig
	logger      *log.Logger
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg config.AudioConfig, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SoundManager{
		config: cfg,
		logger: logger,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker. A disabled config is not an error.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.config.Enabled || sm.config.SampleRate <= 0 {
		sm.logger.Debug("audio disabled")
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		sm.logger.Warn("audio unavailable, running silent", "err", err)
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops every playing cue
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted mutes or unmutes new cues
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips the mute flag and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted returns the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues the cue for kind. Returns false when nothing was queued.
func (sm *SoundManager) Play(kind event.Kind) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	notes, ok := Cue(kind)
	if !ok {
		return false
	}

	s := Streamer(notes, beep.SampleRate(sm.config.SampleRate), sm.config.Volume)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// HandleEvent plays the cue of e. It matches the world's OnEvent signature.
func (sm *SoundManager) HandleEvent(e event.Event) {
	sm.Play(e.Kind)
}
