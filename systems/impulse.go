package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
	"github.com/automoto/haymaker/gamemath"
)

// UpdateImpulses consumes queued punch releases and applies them as one-shot
// velocity changes on the fist body. Runs on the physics tick, so the swing
// record is visible to contact resolution in the same sub-tick.
func UpdateImpulses(e *ecs.ECS) {
	clk := getClock(e)
	if clk == nil {
		return
	}

	components.Fist.Each(e.World, func(entry *donburi.Entry) {
		fist := components.Fist.Get(entry)
		if fist.Pending == nil {
			return
		}
		req := *fist.Pending
		fist.Pending = nil

		var body *components.BodyData
		if entry.HasComponent(components.Body) {
			body = components.Body.Get(entry)
		}
		if TryApplyImpulse(clk.Now, &fist.Swing, body, req.Multiplier, req.DirX, req.DirY) {
			PlaySFX(e, cfg.SoundSwing)
		}
	})
}

// TryApplyImpulse applies an instantaneous velocity change along the given
// direction, scaled by the charge multiplier. It returns false with no state
// change while the cooldown since the previous impulse is still running, or
// when the body or direction is missing. On success the swing record is
// overwritten and the hit token re-armed; the recorded magnitude, not any
// later velocity sample, is what damage is computed from.
func TryApplyImpulse(now float64, swing *components.SwingData, body *components.BodyData, multiplier, dirX, dirY float64) bool {
	if swing.Swung && now < swing.LastImpulseAt+cfg.Combat.PunchCooldown {
		return false
	}
	if body == nil {
		return false
	}
	nx, ny := gamemath.Normalize(dirX, dirY)
	if nx == 0 && ny == 0 {
		return false
	}

	m := multiplier
	if m < cfg.Combat.MinMultiplierFloor {
		m = cfg.Combat.MinMultiplierFloor
	}
	magnitude := cfg.Combat.BasePunchVelocity * m

	body.SpeedX += nx * magnitude
	body.SpeedY += ny * magnitude
	swing.Record(now, magnitude)
	return true
}
