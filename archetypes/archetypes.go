package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
	"github.com/automoto/haymaker/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Body,
		components.Health,
		components.Charge,
		components.Combo,
	)
	Fist = newArchetype(
		tags.Fist,
		components.Fist,
		components.Object,
		components.Body,
		components.Charge,
		components.PullbackJoint,
	)
	Dummy = newArchetype(
		tags.Dummy,
		components.Object,
		components.Body,
		components.Health,
		components.Flash,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Dilation = newArchetype(
		components.Dilation,
	)
	Session = newArchetype(
		components.Session,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
	)
	ScreenShake = newArchetype(
		components.ScreenShake,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Hud = newArchetype(
		components.Hud,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
