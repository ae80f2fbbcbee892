package components

import "github.com/yohamta/donburi"

// ClockData is the singleton time source. The frame tick advances it with a
// real (unscaled) delta; the slow-motion controller rescales TimeScale and
// FixedStep in lockstep. All swing, charge and combo timestamps are readings
// of Now, which runs on the unscaled clock.
type ClockData struct {
	TimeScale     float64 // global simulation speed multiplier, 1.0 = realtime
	BaseFixedStep float64 // physics step at TimeScale 1.0
	FixedStep     float64 // current physics step (BaseFixedStep * TimeScale)

	UnscaledDelta float64 // raw seconds for the current frame tick
	ScaledDelta   float64 // UnscaledDelta * TimeScale
	Now           float64 // unscaled seconds since the scene started

	Accumulator  float64 // scaled time waiting to be consumed by physics sub-ticks
	PhysicsDelta float64 // step consumed by the physics sub-tick in flight
}

var Clock = donburi.NewComponentType[ClockData]()
