package world

import "time"

// Phase is one fixed-rate step of the simulation
type Phase struct {
	Name   string
	Period time.Duration
	Step   func(now time.Duration)

	next time.Duration
}

// Scheduler runs every phase on one simulated clock.
//
// Each phase is due every Period. Advance runs due steps earliest first,
// and steps due at the same instant run in registration order. The result
// depends only on the total simulated time, not on how Advance calls are
// chunked.
type Scheduler struct {
	phases []*Phase
	now    time.Duration
}

// NewScheduler creates an empty scheduler at time zero
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers a phase. Its first step is due one period after the current time.
// Phases with a non-positive period are ignored.
func (s *Scheduler) Add(name string, period time.Duration, step func(now time.Duration)) {
	if period <= 0 || step == nil {
		return
	}
	s.phases = append(s.phases, &Phase{
		Name:   name,
		Period: period,
		Step:   step,
		next:   s.now + period,
	})
}

// Now returns the simulated time
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Advance moves the clock forward by dt, running every step that falls due
func (s *Scheduler) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	target := s.now + dt

	for {
		p := s.nextDue(target)
		if p == nil {
			break
		}
		s.now = p.next
		p.next += p.Period
		p.Step(s.now)
	}
	s.now = target
}

// nextDue returns the phase with the earliest step due at or before target
func (s *Scheduler) nextDue(target time.Duration) *Phase {
	var best *Phase
	for _, p := range s.phases {
		if p.next > target {
			continue
		}
		if best == nil || p.next < best.next {
			best = p
		}
	}
	return best
}
