package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
	"github.com/automoto/haymaker/gamemath"
	"github.com/automoto/haymaker/tags"
)

// UpdateBodies integrates velocities over the current physics step and
// resolves solid collisions. Fists are joint-driven: they ignore gravity,
// friction and solids, and are bounded by their travel limit instead.
func UpdateBodies(e *ecs.ECS) {
	clk := getClock(e)
	if clk == nil {
		return
	}
	dt := clk.PhysicsDelta

	components.Body.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		obj := components.Object.Get(entry)

		if entry.HasComponent(components.Fist) {
			obj.X += body.SpeedX * dt
			obj.Y += body.SpeedY * dt
			obj.Update()
			return
		}

		body.SpeedX = gamemath.ApplyFriction(body.SpeedX, body.Friction*dt)
		if body.MaxSpeed > 0 {
			body.SpeedX = gamemath.ClampSpeed(body.SpeedX, body.MaxSpeed)
		}

		body.SpeedY += body.Gravity * dt
		if body.MaxFallSpeed > 0 && body.SpeedY > body.MaxFallSpeed {
			body.SpeedY = body.MaxFallSpeed
		}

		if dx := body.SpeedX * dt; dx != 0 {
			if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
				body.SpeedX = 0
			} else {
				obj.X += dx
			}
		}

		wasAirborne := !body.OnGround
		if dy := body.SpeedY * dt; dy != 0 {
			if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
				if dy > 0 {
					body.OnGround = true
					if wasAirborne {
						PlaySFX(e, cfg.SoundLand)
					}
				}
				body.SpeedY = 0
			} else {
				obj.Y += dy
				if dy > 0 {
					body.OnGround = false
				}
			}
		}

		obj.Update()
	})
}
