package system

import (
	"time"

	"github.com/younwookim/desertrun/internal/domain/entity"
	"github.com/younwookim/desertrun/internal/domain/event"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
)

// Resolver decides what an overlap means. It flips fields on the
// entities it is handed and returns events; it never adds or removes
// entities from the world's collections.
type Resolver struct {
	config   *config.GameConfig
	policies Policies
}

// NewResolver creates a resolver with the default policy table
func NewResolver(cfg *config.GameConfig) *Resolver {
	return &Resolver{
		config:   cfg,
		policies: DefaultPolicies(&cfg.Physics.Combat),
	}
}

// Policies returns the policy table in use
func (r *Resolver) Policies() Policies {
	return r.policies
}

// CharacterVsEnemies resolves contact between the character and every live enemy.
//
// Whether the character is coming down on enemies is decided once, before
// the loop, from its current state and the snapshot taken at the start of
// the kinematic step. A bounce earned on one enemy therefore cannot turn a
// second overlapping enemy into a damage hit in the same pass.
func (r *Resolver) CharacterVsEnemies(c *entity.Character, snap entity.Snapshot, enemies []*entity.Enemy, now time.Duration) []event.Event {
	if c.IsDead() {
		return nil
	}

	descending := (c.IsAirborne() || snap.WasAirborne) && c.VY <= 0
	combat := r.config.Physics.Combat

	var events []event.Event
	bounce := false
	for _, e := range enemies {
		if !e.IsAlive() || !entity.Colliding(c, e) {
			continue
		}

		if descending && r.policies.Lookup(e.Kind).Stompable {
			e.Die(now)
			events = append(events, event.New(event.StompKill, 0, now))
			bounce = true
			continue
		}

		if c.IsHurt(now) || c.IsDead() {
			continue
		}
		c.Hit(combat.HitDamage, now)
		events = append(events, event.New(event.CharacterHurt, c.Energy, now))
	}

	if bounce {
		c.Launch(r.config.Physics.Kinematics.BounceImpulse)
	}
	return events
}

// Collect picks up every collectible overlapping the character and returns
// the ones left in the level. Bottles become ammo, coins are counted.
func (r *Resolver) Collect(c *entity.Character, items []*entity.Collectible, now time.Duration) ([]*entity.Collectible, []event.Event) {
	var events []event.Event
	kept := items[:0]
	for _, it := range items {
		if !entity.Colliding(c, it) {
			kept = append(kept, it)
			continue
		}

		var count, capacity int
		switch it.Kind {
		case entity.CollectBottle:
			c.Ammo++
			count, capacity = c.Ammo, r.config.Physics.Capacity.Bottle
		default:
			c.Coins++
			count, capacity = c.Coins, r.config.Physics.Capacity.Coin
		}
		events = append(events, event.New(event.Collected(it.Kind.String()), Percent(count, capacity), now))
	}

	// drop references held past the new length
	for i := len(kept); i < len(items); i++ {
		items[i] = nil
	}
	return kept, events
}

// ProjectilesVsEnemies resolves every flying projectile against live enemies.
// A projectile hits at most one enemy.
func (r *Resolver) ProjectilesVsEnemies(projectiles []*entity.Projectile, enemies []*entity.Enemy, now time.Duration) []event.Event {
	var events []event.Event
	for _, p := range projectiles {
		if p.Broken {
			continue
		}

		for _, e := range enemies {
			if !e.IsAlive() || !entity.Colliding(p, e) {
				continue
			}

			p.Break(now)
			events = append(events, event.New(event.Splash, 0, now))

			pol := r.policies.Lookup(e.Kind)
			switch {
			case pol.ProjectileKills:
				e.Die(now)
				events = append(events, event.New(pol.HitEvent, 0, now))
			case pol.ProjectileDamage > 0:
				e.Hit(pol.ProjectileDamage, now)
				events = append(events, event.New(pol.HitEvent, e.Energy, now))
			}
			break
		}
	}
	return events
}

// ProjectileLandings breaks projectiles that reached their ground line
func (r *Resolver) ProjectileLandings(projectiles []*entity.Projectile, now time.Duration) []event.Event {
	var events []event.Event
	for _, p := range projectiles {
		if p.Landed() && p.Break(now) {
			events = append(events, event.New(event.Splash, 0, now))
		}
	}
	return events
}

// ActivateBoss wakes the boss once the character passes the activation line
func (r *Resolver) ActivateBoss(c *entity.Character, boss *entity.Enemy, now time.Duration) []event.Event {
	if boss == nil || boss.Activated || !boss.IsAlive() {
		return nil
	}
	if c.X <= r.config.Physics.Boss.ActivationX {
		return nil
	}

	boss.Activate()
	c.Scare(now, r.config.Physics.Combat.Scare())
	return []event.Event{event.New(event.BossActivated, 0, now)}
}

// Percent converts a count into a 0-100 bar value
func Percent(count, capacity int) int {
	if capacity <= 0 || count <= 0 {
		return 0
	}
	p := count * 100 / capacity
	if p > 100 {
		p = 100
	}
	return p
}
