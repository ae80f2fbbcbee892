package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// ChargeConfig controls how held input converts into a power multiplier.
type ChargeConfig struct {
	Enabled            bool    // when false, every release yields multiplier 1.0
	FullChargeDuration float64 // seconds of hold for a fully charged action
	MaxMultiplier      float64 // multiplier at full charge (1.0 at zero charge)
}

// CombatConfig contains punch and damage tuning.
type CombatConfig struct {
	BasePunchVelocity  float64 // px/s applied at multiplier 1.0
	MinMultiplierFloor float64 // floor applied to the multiplier so a tap still swings
	PunchCooldown      float64 // seconds between impulses on the same fist
	ActiveSwingWindow  float64 // seconds after an impulse during which contacts count
	DamageScale        float64 // damage = recorded impulse magnitude * DamageScale
	CritSpeed          float64 // magnitudes above this mark the hit "heavy"

	// Knockback applied to the struck body
	KnockbackSpeed       float64 // px/s away from the attacker
	KnockbackUpwardSpeed float64 // px/s upward kick on hit
}

// ComboConfig controls the hit-streak counter.
type ComboConfig struct {
	TierInterval int     // hits per escalation tier
	Timeout      float64 // seconds without a hit before the streak resets
}

// CurveSample is one point of the slow-motion profile. Times are unscaled
// seconds from the trigger and must be strictly increasing.
type CurveSample struct {
	Time  float64 `yaml:"time"`
	Scale float64 `yaml:"scale"`
}

// DilationConfig controls the slow-motion response.
type DilationConfig struct {
	Profile          []CurveSample // piecewise scale curve, first sample at t=0
	Floor            float64       // scale is never clamped below this
	ReturnDuration   float64       // seconds to ramp back to 1.0 after the curve ends
	TriggerMagnitude float64       // impulse magnitudes at or above this trigger slow-mo
}

// ClockConfig controls the two-clock tick model.
type ClockConfig struct {
	FrameDelta    float64 // nominal unscaled seconds per frame tick (ebiten runs at fixed TPS)
	BaseFixedStep float64 // physics step in scaled seconds at time scale 1.0
	MaxSubSteps   int     // physics sub-ticks allowed per frame before time is dropped
}

// RigConfig controls the fist pullback joint.
type RigConfig struct {
	MaxPullback float64 // px the anchor retracts at full charge
	BaseSlack   float64 // travel limit around the anchor at rest
	Stiffness   float64 // spring constant pulling the fist to its anchor
	Damping     float64 // velocity damping of the spring
	FistWidth   float64
	FistHeight  float64
}

// PlayerConfig contains movement and body tuning.
type PlayerConfig struct {
	Health        float64
	MoveAccel     float64 // px/s^2
	MaxSpeed      float64 // px/s
	Friction      float64 // px/s^2 toward rest
	Gravity       float64 // px/s^2
	MaxFallSpeed  float64 // px/s
	BaseJumpSpeed float64 // px/s upward at multiplier 1.0

	CollisionWidth  float64
	CollisionHeight float64
	FistAnchorX     float64 // forward offset of the fist anchor from body center
	FistAnchorY     float64
}

// DummyConfig contains training dummy tuning.
type DummyConfig struct {
	Health          float64
	Friction        float64
	Gravity         float64
	MaxFallSpeed    float64
	CollisionWidth  float64
	CollisionHeight float64
}

// SessionConfig controls end-of-round flow.
type SessionConfig struct {
	RestartDelay float64 // unscaled seconds between the outcome and the arena reload
}

// ScreenShakeConfig contains camera shake tuning per trigger.
type ScreenShakeConfig struct {
	HitIntensity   float64 // px
	HitDuration    float64 // seconds
	HeavyIntensity float64
	HeavyDuration  float64
}

// FlashConfig contains hit flash tuning.
type FlashConfig struct {
	HitDuration   float64 // seconds
	HeavyDuration float64
}

// Config holds general game configuration
type Config struct {
	Title  string
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Charge ChargeConfig
var JumpCharge ChargeConfig
var Combat CombatConfig
var Combo ComboConfig
var Dilation DilationConfig
var Clock ClockConfig
var Rig RigConfig
var Player PlayerConfig
var Dummy DummyConfig
var Session SessionConfig
var ScreenShake ScreenShakeConfig
var Flash FlashConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	SlateGray    = color.RGBA{R: 90, G: 100, B: 120, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Title:  "Haymaker",
		Width:  640,
		Height: 360,
	}

	Charge = ChargeConfig{
		Enabled:            true,
		FullChargeDuration: 0.8,
		MaxMultiplier:      2.0,
	}

	// Jump shares the charge model but fills faster and peaks lower.
	JumpCharge = ChargeConfig{
		Enabled:            true,
		FullChargeDuration: 0.5,
		MaxMultiplier:      1.5,
	}

	Combat = CombatConfig{
		BasePunchVelocity:  260.0,
		MinMultiplierFloor: 0.1,
		PunchCooldown:      0.35,
		ActiveSwingWindow:  0.25,
		DamageScale:        0.1,
		CritSpeed:          400.0,

		KnockbackSpeed:       180.0,
		KnockbackUpwardSpeed: -120.0,
	}

	Combo = ComboConfig{
		TierInterval: 5,
		Timeout:      3.0,
	}

	Dilation = DilationConfig{
		Profile: []CurveSample{
			{Time: 0.00, Scale: 0.25},
			{Time: 0.15, Scale: 0.25},
			{Time: 0.45, Scale: 0.60},
		},
		Floor:            0.05,
		ReturnDuration:   0.35,
		TriggerMagnitude: 400.0,
	}

	Clock = ClockConfig{
		FrameDelta:    1.0 / 60.0,
		BaseFixedStep: 1.0 / 120.0,
		MaxSubSteps:   8,
	}

	Rig = RigConfig{
		MaxPullback: 18.0,
		BaseSlack:   12.0,
		Stiffness:   220.0,
		Damping:     18.0,
		FistWidth:   10.0,
		FistHeight:  10.0,
	}

	Player = PlayerConfig{
		Health:        100.0,
		MoveAccel:     1200.0,
		MaxSpeed:      160.0,
		Friction:      900.0,
		Gravity:       900.0,
		MaxFallSpeed:  600.0,
		BaseJumpSpeed: 380.0,

		CollisionWidth:  16.0,
		CollisionHeight: 40.0,
		FistAnchorX:     18.0,
		FistAnchorY:     -6.0,
	}

	Dummy = DummyConfig{
		Health:          100.0,
		Friction:        600.0,
		Gravity:         900.0,
		MaxFallSpeed:    600.0,
		CollisionWidth:  16.0,
		CollisionHeight: 40.0,
	}

	Session = SessionConfig{
		RestartDelay: 2.0,
	}

	ScreenShake = ScreenShakeConfig{
		HitIntensity:   2.5,
		HitDuration:    0.15,
		HeavyIntensity: 6.0,
		HeavyDuration:  0.3,
	}

	Flash = FlashConfig{
		HitDuration:   0.07,
		HeavyDuration: 0.14,
	}
}
