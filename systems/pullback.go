package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
	"github.com/automoto/haymaker/gamemath"
)

// UpdatePullbackRigs repositions each fist's joint anchor from its live
// charge ratio and pulls the fist toward the anchor with a damped spring.
// Charging retracts the anchor backward while widening the travel limit by
// the same distance, so the total forward reach of a punch does not depend
// on how long it was charged.
func UpdatePullbackRigs(e *ecs.ECS) {
	clk := getClock(e)
	if clk == nil {
		return
	}
	dt := clk.PhysicsDelta

	components.Fist.Each(e.World, func(entry *donburi.Entry) {
		fist := components.Fist.Get(entry)
		if fist.Owner == nil || !fist.Owner.Valid() {
			return
		}
		joint := components.PullbackJoint.Get(entry)
		body := components.Body.Get(entry)
		charge := components.Charge.Get(entry)

		ratio := ChargeRatio(charge, cfg.Charge, clk.Now)
		if ratio <= 0 {
			joint.AnchorX = joint.BaseAnchorX
			joint.AnchorY = joint.BaseAnchorY
			joint.TravelLimit = joint.BaseSlack
		} else {
			pull := ratio * cfg.Rig.MaxPullback
			joint.AnchorX = joint.BaseAnchorX - pull
			joint.AnchorY = joint.BaseAnchorY
			joint.TravelLimit = joint.BaseSlack + pull
		}

		ax, ay, ok := anchorWorld(fist.Owner, joint)
		if !ok {
			return
		}
		obj := components.Object.Get(entry)
		cx := obj.X + obj.W/2
		cy := obj.Y + obj.H/2

		sx, sy := gamemath.SpringAccel(cx, cy, body.SpeedX, body.SpeedY, ax, ay, joint.Stiffness, joint.Damping)
		body.SpeedX += sx * dt
		body.SpeedY += sy * dt
	})
}

// UpdateJointLimits clamps each fist back inside its travel limit after
// integration and strips the velocity component pushing past the limit.
func UpdateJointLimits(e *ecs.ECS) {
	components.Fist.Each(e.World, func(entry *donburi.Entry) {
		fist := components.Fist.Get(entry)
		if fist.Owner == nil || !fist.Owner.Valid() {
			return
		}
		joint := components.PullbackJoint.Get(entry)
		body := components.Body.Get(entry)
		obj := components.Object.Get(entry)

		ax, ay, ok := anchorWorld(fist.Owner, joint)
		if !ok {
			return
		}
		cx := obj.X + obj.W/2
		cy := obj.Y + obj.H/2

		nx, ny, clamped := gamemath.ClampToRadius(cx, cy, ax, ay, joint.TravelLimit)
		if !clamped {
			return
		}
		obj.X = nx - obj.W/2
		obj.Y = ny - obj.H/2
		obj.Update()
		body.SpeedX, body.SpeedY = gamemath.RemoveOutwardVelocity(nx, ny, ax, ay, body.SpeedX, body.SpeedY)
	})
}

// anchorWorld resolves a joint's local anchor to world coordinates in the
// owner's facing frame.
func anchorWorld(owner *donburi.Entry, joint *components.PullbackJointData) (float64, float64, bool) {
	if !owner.HasComponent(components.Object) || !owner.HasComponent(components.Player) {
		return 0, 0, false
	}
	ownerObj := components.Object.Get(owner)
	player := components.Player.Get(owner)

	cx := ownerObj.X + ownerObj.W/2
	cy := ownerObj.Y + ownerObj.H/2
	return cx + player.Facing*joint.AnchorX, cy + joint.AnchorY, true
}
