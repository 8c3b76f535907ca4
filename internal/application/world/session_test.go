package world

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/desertrun/internal/application/system"
	"github.com/younwookim/desertrun/internal/domain/entity"
	"github.com/younwookim/desertrun/internal/domain/event"
)

func nextEvent(t *testing.T, s *Session) event.Event {
	t.Helper()
	select {
	case e, ok := <-s.Events():
		require.True(t, ok, "event stream closed")
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for an event")
	}
	return event.Event{}
}

func TestSession_Events(t *testing.T) {
	w := newHarness(t).world()
	w.Character().Ammo = 1

	s := NewSession(w, nil)
	ctx := context.Background()
	s.Start(ctx)

	require.NoError(t, s.Submit(ctx, Frame{Input: system.InputState{Throw: true}}))
	require.NoError(t, s.Submit(ctx, Frame{Input: system.InputState{Throw: true}, DT: tick}))

	e := nextEvent(t, s)
	assert.Equal(t, event.Throw, e.Kind)
	assert.Equal(t, tick, e.At)

	require.NoError(t, s.Stop())
	assert.True(t, w.closed)
	assert.Equal(t, tick, w.Now())

	err := s.Submit(ctx, Frame{DT: time.Second})
	assert.ErrorIs(t, err, ErrClosed)

	_, ok := <-s.Events()
	assert.False(t, ok, "stream closed after Stop")
}

func TestSession_Outcome(t *testing.T) {
	h := newHarness(t)
	h.enemy(entity.EnemyWalker, 150)
	w := h.world()
	w.Character().Energy = 15

	var direct []bool
	w.OnOutcome = func(won bool) { direct = append(direct, won) }

	s := NewSession(w, nil)
	ctx := context.Background()
	s.Start(ctx)
	defer s.Stop()

	require.NoError(t, s.Submit(ctx, Frame{DT: 3 * time.Second}))

	assert.Equal(t, event.CharacterHurt, nextEvent(t, s).Kind)
	assert.Equal(t, event.CharacterDead, nextEvent(t, s).Kind)

	select {
	case won := <-s.Outcome():
		assert.False(t, won)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the outcome")
	}

	require.NoError(t, s.Stop())
	assert.Equal(t, []bool{false}, direct, "previous callback still runs")
}

func TestSession_ContextCancel(t *testing.T) {
	w := newHarness(t).world()
	s := NewSession(w, nil)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()

	require.NoError(t, s.Stop())
	assert.ErrorIs(t, s.Submit(context.Background(), Frame{DT: tick}), ErrClosed)
}

func TestSession_StopBeforeStart(t *testing.T) {
	s := NewSession(newHarness(t).world(), nil)
	assert.NoError(t, s.Stop())
}
