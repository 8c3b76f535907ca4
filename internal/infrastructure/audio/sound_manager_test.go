package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/desertrun/internal/domain/event"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
)

func TestSoundManager_Disabled(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{Enabled: false, SampleRate: 44100, Volume: 1}, nil)

	assert.NoError(t, sm.Initialize())
	assert.False(t, sm.Play(event.Jump), "nothing plays without a speaker")
	sm.HandleEvent(event.New(event.Splash, 0, 0))
	sm.Cleanup()
}

func TestSoundManager_ZeroSampleRate(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{Enabled: true}, nil)
	assert.NoError(t, sm.Initialize())
	assert.False(t, sm.Play(event.Jump))
}

func TestSoundManager_Mute(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{}, nil)
	assert.False(t, sm.Muted())

	assert.True(t, sm.ToggleMute())
	assert.True(t, sm.Muted())
	assert.False(t, sm.ToggleMute())

	sm.SetMuted(true)
	assert.True(t, sm.Muted())
	assert.False(t, sm.Play(event.CollectedCoin))
}

func TestSoundManager_CleanupWithoutInit(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{}, nil)
	assert.NotPanics(t, sm.Cleanup)
	assert.NotPanics(t, func() { sm.Play(event.BossDead) })
}
