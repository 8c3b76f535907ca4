// Package event defines the notifications the engine emits for the
// audio, UI and screen-flow collaborators.
package event

import (
	"fmt"
	"time"
)

// Kind identifies an event
type Kind string

const (
	StompKill       Kind = "stomp-kill"
	EnemyKill       Kind = "enemy-kill"
	BossHurt        Kind = "boss-hurt"
	BossDead        Kind = "boss-dead"
	CharacterHurt   Kind = "character-hurt"
	CharacterDead   Kind = "character-dead"
	BossActivated   Kind = "boss-activated"
	Splash          Kind = "splash"
	Throw           Kind = "throw"
	Jump            Kind = "jump"
	CollectedCoin   Kind = "collected:coin"
	CollectedBottle Kind = "collected:bottle"
)

// Collected returns the "collected:<kind>" event kind for a pickup name
func Collected(kind string) Kind {
	return Kind("collected:" + kind)
}

// Event is a single notification. Payload carries an energy value or a
// 0-100 percentage depending on the kind; zero otherwise.
type Event struct {
	Kind    Kind
	Payload int
	At      time.Duration
}

// New creates an event at simulated time at
func New(kind Kind, payload int, at time.Duration) Event {
	return Event{Kind: kind, Payload: payload, At: at}
}

// String formats the event for logs
func (e Event) String() string {
	return fmt.Sprintf("%s(%d)@%s", e.Kind, e.Payload, e.At)
}

// Terminal returns true for the events that end a session
func (k Kind) Terminal() bool {
	return k == BossDead || k == CharacterDead
}

// Sink receives events as they happen
type Sink func(Event)
