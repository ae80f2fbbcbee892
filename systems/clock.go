package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
)

// UpdateClock advances the singleton clock by one nominal frame. Ebiten runs
// Update at a fixed TPS, so the unscaled frame delta is a constant.
func UpdateClock(ecs *ecs.ECS) {
	clk := getClock(ecs)
	if clk == nil {
		return
	}
	AdvanceClock(clk, cfg.Clock.FrameDelta)
}

// AdvanceClock feeds one unscaled frame delta into the clock. The scaled
// delta lands in the accumulator, where RunPhysicsTicks consumes it in
// FixedStep slices.
func AdvanceClock(clk *components.ClockData, realDelta float64) {
	if realDelta <= 0 {
		return
	}
	clk.UnscaledDelta = realDelta
	clk.ScaledDelta = realDelta * clk.TimeScale
	clk.Now += realDelta
	clk.Accumulator += clk.ScaledDelta
}

// physicsPhase runs once per fixed physics sub-tick, in order.
var physicsPhase = []func(*ecs.ECS){
	UpdatePlayers,
	UpdateImpulses,
	UpdatePullbackRigs,
	UpdateBodies,
	UpdateJointLimits,
	ResolveFistContacts,
}

// RunPhysicsTicks drains the clock accumulator in FixedStep slices and runs
// the physics-phase systems once per slice. Because the dilation controller
// rescales FixedStep together with TimeScale, the sub-tick count per frame
// stays constant under slow motion. Excess time beyond MaxSubSteps is
// dropped rather than spiraling.
func RunPhysicsTicks(ecs *ecs.ECS) {
	clk := getClock(ecs)
	if clk == nil {
		return
	}

	steps := 0
	for clk.Accumulator >= clk.FixedStep && clk.FixedStep > 0 {
		if steps >= cfg.Clock.MaxSubSteps {
			clk.Accumulator = 0
			break
		}
		clk.Accumulator -= clk.FixedStep
		clk.PhysicsDelta = clk.FixedStep
		for _, system := range physicsPhase {
			system(ecs)
		}
		steps++
	}
	clk.PhysicsDelta = 0
}

// NewClockData returns a clock at rest with the configured base step.
func NewClockData() components.ClockData {
	return components.ClockData{
		TimeScale:     1.0,
		BaseFixedStep: cfg.Clock.BaseFixedStep,
		FixedStep:     cfg.Clock.BaseFixedStep,
	}
}

func getClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return nil
	}
	return components.Clock.Get(entry)
}
