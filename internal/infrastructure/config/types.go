package config

import "time"

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display    DisplayConfig    `json:"display"`
	Scheduler  SchedulerConfig  `json:"scheduler"`
	Kinematics KinematicsConfig `json:"kinematics"`
	Combat     CombatConfig     `json:"combat"`
	Boss       BossConfig       `json:"boss"`
	Splash     SplashConfig     `json:"splash"`
	Capacity   CapacityConfig   `json:"capacity"`
	Throw      ThrowConfig      `json:"throw"`
	Camera     CameraConfig     `json:"camera"`
	Audio      AudioConfig      `json:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// SchedulerConfig sets the rate of each scheduler phase, in Hz
type SchedulerConfig struct {
	MovementHz  int `json:"movementHz"`
	PhysicsHz   int `json:"physicsHz"`
	AnimationHz int `json:"animationHz"`
}

// KinematicsConfig values are per kinematic step, not per second
type KinematicsConfig struct {
	Acceleration  float64 `json:"acceleration"`
	JumpImpulse   float64 `json:"jumpImpulse"`
	BounceImpulse float64 `json:"bounceImpulse"`
	ThrowImpulse  float64 `json:"throwImpulse"`
}

type CombatConfig struct {
	HitDamage       int `json:"hitDamage"`
	BossHitDamage   int `json:"bossHitDamage"`
	HurtWindowMs    int `json:"hurtWindowMs"`
	GraceWindowMs   int `json:"graceWindowMs"`
	ThrowCooldownMs int `json:"throwCooldownMs"`
	TerminalDelayMs int `json:"terminalDelayMs"`
	IdleTimeoutMs   int `json:"idleTimeoutMs"`
	ScareMs         int `json:"scareMs"`
}

type BossConfig struct {
	ActivationX  float64 `json:"activationX"`
	MinApproach  float64 `json:"minApproach"`
	BaseSpeed    float64 `json:"baseSpeed"`
	EnragedSpeed float64 `json:"enragedSpeed"`
	EnrageBelow  int     `json:"enrageBelow"`
}

type SplashConfig struct {
	Frames  int `json:"frames"`
	FrameMs int `json:"frameMs"`
}

// CapacityConfig is the count at which a pickup bar shows 100%
type CapacityConfig struct {
	Coin   int `json:"coin"`
	Bottle int `json:"bottle"`
}

// ThrowConfig places a thrown bottle relative to the character
type ThrowConfig struct {
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Speed   float64 `json:"speed"`
}

type CameraConfig struct {
	OffsetX       float64 `json:"offsetX"`
	BossLookAhead float64 `json:"bossLookAhead"`
	Easing        float64 `json:"easing"`
}

// AudioConfig controls the sound cues. A zero sample rate disables audio.
type AudioConfig struct {
	Enabled    bool    `json:"enabled"`
	SampleRate int     `json:"sampleRate"`
	Volume     float64 `json:"volume"` // 0.0-1.0
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func (c CombatConfig) HurtWindow() time.Duration    { return ms(c.HurtWindowMs) }
func (c CombatConfig) GraceWindow() time.Duration   { return ms(c.GraceWindowMs) }
func (c CombatConfig) ThrowCooldown() time.Duration { return ms(c.ThrowCooldownMs) }
func (c CombatConfig) TerminalDelay() time.Duration { return ms(c.TerminalDelayMs) }
func (c CombatConfig) IdleTimeout() time.Duration   { return ms(c.IdleTimeoutMs) }
func (c CombatConfig) Scare() time.Duration         { return ms(c.ScareMs) }

func (c SplashConfig) Frame() time.Duration { return ms(c.FrameMs) }

// Period converts a rate in Hz to a step period. Non-positive rates yield zero.
func Period(hz int) time.Duration {
	if hz <= 0 {
		return 0
	}
	return time.Second / time.Duration(hz)
}
