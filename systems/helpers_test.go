package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/archetypes"
	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
	"github.com/automoto/haymaker/systems/factory"
)

// newTestECS builds a world with every singleton the systems expect, but no
// bodies. Tests mutate the singletons directly instead of going through the
// ebiten loop.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())

	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 8, 8)
	components.Clock.SetValue(archetypes.Clock.Spawn(e), NewClockData())
	components.Dilation.SetValue(archetypes.Dilation.Spawn(e), NewDilationData())
	archetypes.Session.Spawn(e)
	archetypes.Input.Spawn(e)
	archetypes.ScreenShake.Spawn(e)
	archetypes.Settings.Spawn(e)
	archetypes.Hud.Spawn(e)
	components.Audio.SetValue(archetypes.Audio.Spawn(e), components.AudioData{
		SFXVolume: 1.0,
	})

	return e
}

func spawnTestPlayer(e *ecs.ECS) *donburi.Entry {
	return factory.CreatePlayer(e, 100, 100)
}

// spawnTestDummyAt places a dummy so that its collision box top-left lands
// exactly at (x, y).
func spawnTestDummyAt(e *ecs.ECS, x, y float64) *donburi.Entry {
	return factory.CreateDummy(e, x, y)
}

// overlapFistWithDummy spawns a dummy centered on the player's fist so the
// next contact resolution finds them touching.
func overlapFistWithDummy(e *ecs.ECS, player *donburi.Entry) *donburi.Entry {
	fist := components.Player.Get(player).Fist
	obj := components.Object.Get(fist)
	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H/2
	return spawnTestDummyAt(e, cx-cfg.Dummy.CollisionWidth/2, cy-cfg.Dummy.CollisionHeight/2)
}

func countDamageEvents(e *ecs.ECS) int {
	n := 0
	for range components.DamageEvent.Iter(e.World) {
		n++
	}
	return n
}
