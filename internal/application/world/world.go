// Package world owns the live entity collections of a session and runs the
// fixed-rate phases that move them and resolve their interactions.
package world

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/younwookim/desertrun/internal/application/state"
	"github.com/younwookim/desertrun/internal/application/system"
	"github.com/younwookim/desertrun/internal/domain/entity"
	"github.com/younwookim/desertrun/internal/domain/event"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
)

// ErrClosed is returned by Advance after Close
var ErrClosed = errors.New("world: closed")

// World is the tick orchestrator. It is not safe for concurrent use; run it
// from a single goroutine or through a Session.
type World struct {
	config *config.GameConfig
	logger *log.Logger

	level       *entity.Level
	character   *entity.Character
	boss        *entity.Enemy
	enemies     []*entity.Enemy
	coins       []*entity.Collectible
	bottles     []*entity.Collectible
	projectiles []*entity.Projectile
	decorations []*entity.Decoration

	spawner    *system.Spawner
	input      *system.InputSystem
	kinematics *system.KinematicSystem
	resolver   *system.Resolver
	movement   *system.MovementSystem
	animation  *system.AnimationSystem
	scheduler  *Scheduler

	inputState system.InputState
	intents    []system.Intent
	snapshot   entity.Snapshot
	pending    []event.Event

	state     state.GameState
	latchedAt time.Duration
	delivered bool
	closed    bool

	// Callbacks
	OnEvent   func(e event.Event)
	OnOutcome func(won bool)
}

// New creates a world for a loaded level. The spawner must be the one the
// level was built with so entity IDs stay unique.
func New(cfg *config.GameConfig, lvl *entity.Level, sp *system.Spawner, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	resolver := system.NewResolver(cfg)
	w := &World{
		config:      cfg,
		logger:      logger,
		level:       lvl,
		character:   sp.Character(lvl.SpawnX),
		boss:        lvl.Boss(),
		enemies:     append([]*entity.Enemy(nil), lvl.Enemies...),
		coins:       append([]*entity.Collectible(nil), lvl.Coins...),
		bottles:     append([]*entity.Collectible(nil), lvl.Bottles...),
		decorations: append([]*entity.Decoration(nil), lvl.Decorations...),
		spawner:     sp,
		input:       system.NewInputSystem(cfg.Physics),
		kinematics:  system.NewKinematicSystem(&cfg.Physics.Kinematics),
		resolver:    resolver,
		movement:    system.NewMovementSystem(cfg, resolver.Policies()),
		animation:   system.NewAnimationSystem(cfg),
		scheduler:   NewScheduler(),
		state:       state.StatePlaying,
	}

	sc := cfg.Physics.Scheduler
	w.scheduler.Add("movement", config.Period(sc.MovementHz), w.movementStep)
	w.scheduler.Add("physics", config.Period(sc.PhysicsHz), w.physicsStep)
	w.scheduler.Add("animation", config.Period(sc.AnimationHz), w.animationStep)

	w.logger.Debug("world created", "level", lvl.Name, "enemies", len(w.enemies), "coins", len(w.coins), "bottles", len(w.bottles))
	return w
}

// SetInput replaces the input state read by the next movement step
func (w *World) SetInput(in system.InputState) {
	w.inputState = in
}

// Advance moves simulated time forward by dt and returns the events emitted
func (w *World) Advance(dt time.Duration) ([]event.Event, error) {
	if w.closed {
		return nil, ErrClosed
	}
	w.scheduler.Advance(dt)

	events := w.pending
	w.pending = nil
	return events, nil
}

// Close stops the world. Later Advance calls do nothing.
func (w *World) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.logger.Debug("world closed", "at", w.scheduler.Now())
}

func (w *World) movementStep(now time.Duration) {
	if w.state != state.StatePlaying {
		return
	}
	dt := config.Period(w.config.Physics.Scheduler.MovementHz).Seconds()

	w.intents = w.input.Intents(w.character.ID, w.inputState)
	w.emit(w.movement.UpdateCharacter(w.character, w.intents, w.level.EndX, now, dt))

	for _, e := range w.enemies {
		w.movement.UpdateEnemy(e, w.character, dt)
	}
	for _, p := range w.projectiles {
		w.movement.UpdateProjectile(p, dt)
	}
	for _, d := range w.decorations {
		w.movement.UpdateDecoration(d, dt)
	}
}

func (w *World) physicsStep(now time.Duration) {
	if w.state == state.StatePlaying {
		w.snapshot = w.kinematics.Step(w.character, w.projectiles)
		w.emit(w.resolver.ProjectileLandings(w.projectiles, now))
		w.emit(w.Tick(now))
	}
	w.deliverOutcome(now)
}

func (w *World) animationStep(now time.Duration) {
	period := config.Period(w.config.Physics.Scheduler.AnimationHz)

	w.animation.UpdateCharacter(w.character, now, period)
	for _, e := range w.enemies {
		w.animation.UpdateEnemy(e, w.character, now)
	}
	for _, p := range w.projectiles {
		w.animation.UpdateProjectile(p)
	}
}

// Tick runs one resolution pass in fixed order against the snapshot of the
// last kinematic step:
//
//	character vs enemies, pickups, throw, projectiles vs enemies,
//	boss activation, terminal checks, cleanup.
func (w *World) Tick(now time.Duration) []event.Event {
	if w.closed || w.state != state.StatePlaying {
		return nil
	}

	var events, evs []event.Event
	events = append(events, w.resolver.CharacterVsEnemies(w.character, w.snapshot, w.enemies, now)...)

	w.coins, evs = w.resolver.Collect(w.character, w.coins, now)
	events = append(events, evs...)
	w.bottles, evs = w.resolver.Collect(w.character, w.bottles, now)
	events = append(events, evs...)

	events = append(events, w.throw(now)...)
	events = append(events, w.resolver.ProjectilesVsEnemies(w.projectiles, w.enemies, now)...)
	events = append(events, w.resolver.ActivateBoss(w.character, w.boss, now)...)
	events = append(events, w.checkTerminal(now)...)

	w.cleanup(now)
	return events
}

func (w *World) throw(now time.Duration) []event.Event {
	cooldown := w.config.Physics.Combat.ThrowCooldown()
	if !system.HasThrow(w.intents) || !w.character.CanThrow(now, cooldown) {
		return nil
	}

	p := w.spawner.Projectile(w.character)
	w.character.Throw(now)
	w.projectiles = append(w.projectiles, p)

	ammo := system.Percent(w.character.Ammo, w.config.Physics.Capacity.Bottle)
	return []event.Event{event.New(event.Throw, ammo, now)}
}

// checkTerminal latches the outcome. Character death wins over boss death
// when both happen in the same tick.
func (w *World) checkTerminal(now time.Duration) []event.Event {
	var e event.Event
	switch {
	case w.character.IsDead():
		w.state = state.StateLost
		e = event.New(event.CharacterDead, 0, now)
	case w.boss != nil && w.boss.IsDead():
		w.state = state.StateWon
		e = event.New(event.BossDead, 0, now)
	default:
		return nil
	}

	w.latchedAt = now
	w.logger.Info("session decided", "state", w.state, "at", now)
	return []event.Event{e}
}

func (w *World) cleanup(now time.Duration) {
	grace := w.config.Physics.Combat.GraceWindow()
	enemies := w.enemies[:0]
	for _, e := range w.enemies {
		if e.Removable(now, grace) {
			w.logger.Debug("enemy removed", "id", e.ID, "kind", e.Kind)
			continue
		}
		enemies = append(enemies, e)
	}
	clear(w.enemies[len(enemies):])
	w.enemies = enemies

	splash := w.config.Physics.Splash
	projectiles := w.projectiles[:0]
	for _, p := range w.projectiles {
		if p.SplashDone(now, splash.Frames, splash.Frame()) {
			continue
		}
		projectiles = append(projectiles, p)
	}
	clear(w.projectiles[len(projectiles):])
	w.projectiles = projectiles
}

func (w *World) deliverOutcome(now time.Duration) {
	if !w.state.Terminal() || w.delivered {
		return
	}
	if now-w.latchedAt < w.config.Physics.Combat.TerminalDelay() {
		return
	}

	w.delivered = true
	won := w.state == state.StateWon
	w.logger.Info("outcome delivered", "won", won, "at", now)
	if w.OnOutcome != nil {
		w.OnOutcome(won)
	}
}

func (w *World) emit(events []event.Event) {
	for _, e := range events {
		w.logger.Debug("event", "kind", e.Kind, "payload", e.Payload, "at", e.At)
		if w.OnEvent != nil {
			w.OnEvent(e)
		}
		w.pending = append(w.pending, e)
	}
}

// Now returns the simulated time
func (w *World) Now() time.Duration { return w.scheduler.Now() }

// State returns the session state
func (w *World) State() state.GameState { return w.state }

// DecidedAt returns the simulated time the outcome latched, zero while playing
func (w *World) DecidedAt() time.Duration { return w.latchedAt }

// Delivered returns true once OnOutcome has fired
func (w *World) Delivered() bool { return w.delivered }

// Level returns the level the world was built from
func (w *World) Level() *entity.Level { return w.level }

// Character returns the player character
func (w *World) Character() *entity.Character { return w.character }

// Boss returns the level boss, or nil
func (w *World) Boss() *entity.Enemy { return w.boss }

// Enemies returns the live enemies, dead ones included until cleanup
func (w *World) Enemies() []*entity.Enemy { return w.enemies }

// Coins returns the coins left in the level
func (w *World) Coins() []*entity.Collectible { return w.coins }

// Bottles returns the bottles left in the level
func (w *World) Bottles() []*entity.Collectible { return w.bottles }

// Projectiles returns the projectiles in flight or splashing
func (w *World) Projectiles() []*entity.Projectile { return w.projectiles }

// Decorations returns the background decorations
func (w *World) Decorations() []*entity.Decoration { return w.decorations }

// Snapshot returns the snapshot taken by the last kinematic step
func (w *World) Snapshot() entity.Snapshot { return w.snapshot }
