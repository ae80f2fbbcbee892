package systems

import (
	"math"
	"testing"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
)

func TestTryApplyImpulseAddsVelocity(t *testing.T) {
	restore := cfg.Combat
	defer func() { cfg.Combat = restore }()
	cfg.Combat.BasePunchVelocity = 100
	cfg.Combat.MinMultiplierFloor = 0.1
	cfg.Combat.PunchCooldown = 0.35

	var swing components.SwingData
	body := &components.BodyData{}

	if !TryApplyImpulse(1.0, &swing, body, 2.0, 1, 0) {
		t.Fatal("impulse rejected on an idle fist")
	}
	if body.SpeedX != 200 || body.SpeedY != 0 {
		t.Fatalf("velocity = (%f, %f), want (200, 0)", body.SpeedX, body.SpeedY)
	}
	if swing.Magnitude != 200 {
		t.Fatalf("recorded magnitude = %f, want 200", swing.Magnitude)
	}
	if swing.LastImpulseAt != 1.0 || !swing.Swung {
		t.Fatalf("swing record not updated: %+v", swing)
	}
	if swing.TokenConsumed {
		t.Fatal("fresh impulse left the token consumed")
	}
}

func TestTryApplyImpulseCooldown(t *testing.T) {
	restore := cfg.Combat
	defer func() { cfg.Combat = restore }()
	cfg.Combat.BasePunchVelocity = 100
	cfg.Combat.PunchCooldown = 0.35

	var swing components.SwingData
	body := &components.BodyData{}

	if !TryApplyImpulse(1.0, &swing, body, 1.0, 1, 0) {
		t.Fatal("first impulse rejected")
	}
	before := *body

	// Inside the cooldown: rejected with no state change.
	if TryApplyImpulse(1.2, &swing, body, 1.0, 1, 0) {
		t.Fatal("impulse accepted inside the cooldown")
	}
	if *body != before {
		t.Fatalf("rejected impulse changed the body: %+v", body)
	}
	if swing.LastImpulseAt != 1.0 {
		t.Fatalf("rejected impulse touched the swing record: %+v", swing)
	}

	// Cooldown elapsed: accepted again.
	if !TryApplyImpulse(1.36, &swing, body, 1.0, 1, 0) {
		t.Fatal("impulse rejected after the cooldown elapsed")
	}
	if swing.LastImpulseAt != 1.36 {
		t.Fatalf("second impulse not recorded: %+v", swing)
	}
}

func TestTryApplyImpulseMultiplierFloor(t *testing.T) {
	restore := cfg.Combat
	defer func() { cfg.Combat = restore }()
	cfg.Combat.BasePunchVelocity = 100
	cfg.Combat.MinMultiplierFloor = 0.1

	var swing components.SwingData
	body := &components.BodyData{}

	if !TryApplyImpulse(0, &swing, body, 0, 1, 0) {
		t.Fatal("impulse with zero multiplier rejected")
	}
	if math.Abs(swing.Magnitude-10) > 1e-9 {
		t.Fatalf("magnitude with floored multiplier = %f, want 10", swing.Magnitude)
	}
}

func TestTryApplyImpulseRejectsBadInput(t *testing.T) {
	var swing components.SwingData

	if TryApplyImpulse(0, &swing, nil, 1.0, 1, 0) {
		t.Fatal("impulse accepted with no body")
	}
	if TryApplyImpulse(0, &swing, &components.BodyData{}, 1.0, 0, 0) {
		t.Fatal("impulse accepted with a zero direction")
	}
	if swing.Swung {
		t.Fatal("rejected impulse recorded a swing")
	}
}

func TestTryApplyImpulseNormalizesDirection(t *testing.T) {
	restore := cfg.Combat
	defer func() { cfg.Combat = restore }()
	cfg.Combat.BasePunchVelocity = 100

	var swing components.SwingData
	body := &components.BodyData{}
	if !TryApplyImpulse(0, &swing, body, 1.0, 3, 4) {
		t.Fatal("impulse rejected")
	}
	speed := math.Hypot(body.SpeedX, body.SpeedY)
	if math.Abs(speed-100) > 1e-9 {
		t.Fatalf("resulting speed = %f, want 100 regardless of direction length", speed)
	}
}
