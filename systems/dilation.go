package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
)

// TriggerDilation starts (or restarts) the slow-motion response. Any session
// already in flight is discarded: the curve restarts from its beginning, and
// an in-progress recovery is overridden.
func TriggerDilation(e *ecs.ECS) {
	d := getDilation(e)
	if d == nil {
		return
	}
	d.Phase = components.DilationActive
	d.Elapsed = 0
	d.Curve = buildCurve(cfg.Dilation.Profile)
	d.Recover = nil
}

// buildCurve turns the profile samples into a tween sequence. The profile is
// validated at load time: first sample at t=0, strictly increasing times.
func buildCurve(profile []cfg.CurveSample) *gween.Sequence {
	if len(profile) == 0 {
		return nil
	}
	if len(profile) == 1 {
		s := float32(profile[0].Scale)
		return gween.NewSequence(gween.New(s, s, 0, ease.Linear))
	}
	seq := gween.NewSequence()
	for i := 1; i < len(profile); i++ {
		seq.Add(gween.New(
			float32(profile[i-1].Scale),
			float32(profile[i].Scale),
			float32(profile[i].Time-profile[i-1].Time),
			ease.Linear,
		))
	}
	return seq
}

// UpdateDilation advances the slow-motion state machine by unscaled time and
// writes the resulting scale into the clock, rescaling the physics step in
// lockstep. On completion the clock is restored to exactly 1.0 and the base
// step, so no floating drift accumulates across sessions.
func UpdateDilation(e *ecs.ECS) {
	clk := getClock(e)
	d := getDilation(e)
	if clk == nil || d == nil {
		return
	}
	dt := clk.UnscaledDelta

	switch d.Phase {
	case components.DilationActive:
		d.Elapsed += dt
		if d.Curve == nil {
			startRecovery(d)
			return
		}
		value, _, done := d.Curve.Update(float32(dt))
		scale := clampScale(float64(value))
		applyScale(clk, scale)
		d.LastScale = scale
		if done {
			startRecovery(d)
		}

	case components.DilationRecovering:
		d.Elapsed += dt
		value, done := d.Recover.Update(float32(dt))
		applyScale(clk, clampScale(float64(value)))
		if done {
			d.Phase = components.DilationIdle
			clk.TimeScale = 1.0
			clk.FixedStep = clk.BaseFixedStep
		}
	}
}

func startRecovery(d *components.DilationData) {
	d.Phase = components.DilationRecovering
	d.Elapsed = 0
	d.Recover = gween.New(float32(d.LastScale), 1.0, float32(cfg.Dilation.ReturnDuration), ease.Linear)
}

func applyScale(clk *components.ClockData, scale float64) {
	clk.TimeScale = scale
	clk.FixedStep = clk.BaseFixedStep * scale
}

func clampScale(s float64) float64 {
	if s < cfg.Dilation.Floor {
		return cfg.Dilation.Floor
	}
	if s > 1.0 {
		return 1.0
	}
	return s
}

// NewDilationData returns an idle slow-motion state.
func NewDilationData() components.DilationData {
	return components.DilationData{
		Phase:     components.DilationIdle,
		LastScale: 1.0,
	}
}

func getDilation(e *ecs.ECS) *components.DilationData {
	entry, ok := components.Dilation.First(e.World)
	if !ok {
		return nil
	}
	return components.Dilation.Get(entry)
}
