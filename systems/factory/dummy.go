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

// CreateDummy spawns a training dummy. Dummies never act, they only take
// hits, slide from knockback and eventually fall over.
func CreateDummy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	dummy := archetypes.Dummy.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Dummy.CollisionWidth, cfg.Dummy.CollisionHeight, tags.ResolvTarget)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Dummy.CollisionWidth, cfg.Dummy.CollisionHeight))
	obj.Data = dummy

	components.Object.SetValue(dummy, components.ObjectData{Object: obj})
	components.Body.SetValue(dummy, components.BodyData{
		Gravity:      cfg.Dummy.Gravity,
		Friction:     cfg.Dummy.Friction,
		MaxFallSpeed: cfg.Dummy.MaxFallSpeed,
	})
	components.Health.SetValue(dummy, components.HealthData{
		Current: cfg.Dummy.Health,
		Max:     cfg.Dummy.Health,
	})
	addToSpace(ecs, obj)

	return dummy
}
