package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/archetypes"
	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
	"github.com/automoto/haymaker/tags"
)

// CreatePlayer spawns the wielder and its fist as a pair. The fist starts
// resting at the joint anchor, facing right.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, tags.ResolvPlayer, tags.ResolvTarget)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		Facing: cfg.DirectionRight,
	})
	components.Body.SetValue(player, components.BodyData{
		Gravity:      cfg.Player.Gravity,
		Friction:     cfg.Player.Friction,
		MaxSpeed:     cfg.Player.MaxSpeed,
		MaxFallSpeed: cfg.Player.MaxFallSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	addToSpace(ecs, obj)

	fist := createFist(ecs, player)
	components.Player.Get(player).Fist = fist

	return player
}

func createFist(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	fist := archetypes.Fist.Spawn(ecs)

	ownerObj := components.Object.Get(owner)
	x := ownerObj.X + ownerObj.W/2 + cfg.Player.FistAnchorX - cfg.Rig.FistWidth/2
	y := ownerObj.Y + ownerObj.H/2 + cfg.Player.FistAnchorY - cfg.Rig.FistHeight/2

	obj := resolv.NewObject(x, y, cfg.Rig.FistWidth, cfg.Rig.FistHeight, tags.ResolvFist)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Rig.FistWidth, cfg.Rig.FistHeight))
	obj.Data = fist

	components.Object.SetValue(fist, components.ObjectData{Object: obj})
	components.Fist.SetValue(fist, components.FistData{Owner: owner})
	// Gravity 0 marks the body as joint-driven.
	components.Body.SetValue(fist, components.BodyData{})
	components.PullbackJoint.SetValue(fist, components.PullbackJointData{
		BaseAnchorX: cfg.Player.FistAnchorX,
		BaseAnchorY: cfg.Player.FistAnchorY,
		AnchorX:     cfg.Player.FistAnchorX,
		AnchorY:     cfg.Player.FistAnchorY,
		BaseSlack:   cfg.Rig.BaseSlack,
		TravelLimit: cfg.Rig.BaseSlack,
		Stiffness:   cfg.Rig.Stiffness,
		Damping:     cfg.Rig.Damping,
	})
	addToSpace(ecs, obj)

	return fist
}
