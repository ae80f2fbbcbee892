package systems

import (
	"math"
	"testing"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
)

func TestPullbackReachInvariantUnderCharge(t *testing.T) {
	restore := cfg.Charge
	defer func() { cfg.Charge = restore }()
	cfg.Charge = cfg.ChargeConfig{Enabled: true, FullChargeDuration: 0.8, MaxMultiplier: 2.0}

	e := newTestECS(t)
	player := spawnTestPlayer(e)
	fistEntry := components.Player.Get(player).Fist
	joint := components.PullbackJoint.Get(fistEntry)
	charge := components.Charge.Get(fistEntry)
	clk := getClock(e)
	clk.PhysicsDelta = 1.0 / 120.0

	baseReach := joint.BaseAnchorX + joint.BaseSlack

	Press(charge, 0)
	for _, hold := range []float64{0, 0.2, 0.4, 0.8, 2.0} {
		clk.Now = hold
		UpdatePullbackRigs(e)
		reach := joint.AnchorX + joint.TravelLimit
		if math.Abs(reach-baseReach) > 1e-9 {
			t.Fatalf("hold %vs: reach = %f, want invariant %f", hold, reach, baseReach)
		}
	}
}

func TestPullbackAnchorRetractsWithCharge(t *testing.T) {
	restore := cfg.Charge
	defer func() { cfg.Charge = restore }()
	cfg.Charge = cfg.ChargeConfig{Enabled: true, FullChargeDuration: 0.8, MaxMultiplier: 2.0}

	e := newTestECS(t)
	player := spawnTestPlayer(e)
	fistEntry := components.Player.Get(player).Fist
	joint := components.PullbackJoint.Get(fistEntry)
	charge := components.Charge.Get(fistEntry)
	clk := getClock(e)
	clk.PhysicsDelta = 1.0 / 120.0

	Press(charge, 0)

	// Half charge pulls the anchor halfway back.
	clk.Now = 0.4
	UpdatePullbackRigs(e)
	wantAnchor := joint.BaseAnchorX - 0.5*cfg.Rig.MaxPullback
	if math.Abs(joint.AnchorX-wantAnchor) > 1e-9 {
		t.Fatalf("half charge anchor = %f, want %f", joint.AnchorX, wantAnchor)
	}
	wantLimit := joint.BaseSlack + 0.5*cfg.Rig.MaxPullback
	if math.Abs(joint.TravelLimit-wantLimit) > 1e-9 {
		t.Fatalf("half charge travel limit = %f, want %f", joint.TravelLimit, wantLimit)
	}

	// Released: everything returns to rest.
	charge.Held = false
	UpdatePullbackRigs(e)
	if joint.AnchorX != joint.BaseAnchorX || joint.TravelLimit != joint.BaseSlack {
		t.Fatalf("released joint not at rest: %+v", joint)
	}
}

func TestJointLimitsClampFist(t *testing.T) {
	e := newTestECS(t)
	player := spawnTestPlayer(e)
	fistEntry := components.Player.Get(player).Fist
	joint := components.PullbackJoint.Get(fistEntry)
	body := components.Body.Get(fistEntry)
	obj := components.Object.Get(fistEntry)

	// Fling the fist far past its travel limit, still moving outward.
	obj.X += 500
	obj.Update()
	body.SpeedX = 400

	UpdateJointLimits(e)

	ax, ay, ok := anchorWorld(player, joint)
	if !ok {
		t.Fatal("anchor could not be resolved")
	}
	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H/2
	dist := math.Hypot(cx-ax, cy-ay)
	if dist > joint.TravelLimit+1e-6 {
		t.Fatalf("fist at distance %f, want clamped to %f", dist, joint.TravelLimit)
	}
	// Outward velocity is stripped, inward is kept.
	if body.SpeedX > 1e-9 {
		t.Fatalf("outward velocity survived the clamp: %f", body.SpeedX)
	}
}

func TestSpringPullsFistTowardAnchor(t *testing.T) {
	e := newTestECS(t)
	player := spawnTestPlayer(e)
	fistEntry := components.Player.Get(player).Fist
	body := components.Body.Get(fistEntry)
	obj := components.Object.Get(fistEntry)
	clk := getClock(e)
	clk.PhysicsDelta = 1.0 / 120.0

	// Displace the fist behind its anchor; the spring must accelerate it
	// forward.
	obj.X -= 8
	obj.Update()

	UpdatePullbackRigs(e)
	if body.SpeedX <= 0 {
		t.Fatalf("spring acceleration = %f, want positive toward the anchor", body.SpeedX)
	}
}
