package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCollected(t *testing.T) {
	assert.Equal(t, CollectedCoin, Collected("coin"))
	assert.Equal(t, CollectedBottle, Collected("bottle"))
}

func TestKind_Terminal(t *testing.T) {
	assert.True(t, BossDead.Terminal())
	assert.True(t, CharacterDead.Terminal())
	assert.False(t, BossHurt.Terminal())
	assert.False(t, Splash.Terminal())
}

func TestEvent_String(t *testing.T) {
	e := New(CharacterHurt, 85, 1500*time.Millisecond)
	assert.Equal(t, "character-hurt(85)@1.5s", e.String())
}
