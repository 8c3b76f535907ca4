package world

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/desertrun/internal/application/system"
	"github.com/younwookim/desertrun/internal/domain/event"
)

// Frame is one unit of work for a session: the input held during the
// frame and how much simulated time it covers. A zero DT only updates input.
type Frame struct {
	Input system.InputState
	DT    time.Duration
}

// Session runs a World on a single worker goroutine. Frames go in over one
// channel so input and time stay ordered; events come out over another.
type Session struct {
	world  *World
	logger *log.Logger

	frames  chan Frame
	events  chan event.Event
	outcome chan bool
	done    chan struct{}

	group  *errgroup.Group
	cancel context.CancelFunc
}

// NewSession wraps a world. The session takes over the world's OnOutcome callback.
func NewSession(w *World, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		world:   w,
		logger:  logger,
		frames:  make(chan Frame),
		events:  make(chan event.Event, 256),
		outcome: make(chan bool, 1),
		done:    make(chan struct{}),
	}

	prev := w.OnOutcome
	w.OnOutcome = func(won bool) {
		if prev != nil {
			prev(won)
		}
		s.outcome <- won
	}
	return s
}

// Start launches the worker. It runs until ctx is cancelled or Stop is called.
func (s *Session) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.group, ctx = errgroup.WithContext(ctx)
	s.group.Go(func() error {
		return s.run(ctx)
	})
}

func (s *Session) run(ctx context.Context) error {
	defer close(s.done)
	defer close(s.events)
	defer s.world.Close()

	s.logger.Debug("session started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("session stopped", "at", s.world.Now())
			return nil
		case f := <-s.frames:
			s.world.SetInput(f.Input)
			if f.DT <= 0 {
				continue
			}

			events, err := s.world.Advance(f.DT)
			if err != nil {
				return err
			}
			for _, e := range events {
				select {
				case s.events <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	}
}

// Submit hands a frame to the worker. It blocks until the worker takes it.
func (s *Session) Submit(ctx context.Context, f Frame) error {
	select {
	case s.frames <- f:
		return nil
	case <-s.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Events returns the event stream. It is closed when the worker exits.
func (s *Session) Events() <-chan event.Event {
	return s.events
}

// Outcome receives the terminal outcome once: true for a win
func (s *Session) Outcome() <-chan bool {
	return s.outcome
}

// Stop cancels the worker and waits for it. After Stop returns the world is
// closed and no phase runs again.
func (s *Session) Stop() error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	return s.group.Wait()
}
