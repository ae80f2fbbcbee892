package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/archetypes"
	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
	"github.com/automoto/haymaker/systems"
	"github.com/automoto/haymaker/systems/factory"
)

// SceneChanger swaps the active scene. The game shell implements it.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ArenaScene is the training arena: one player, a row of dummies, solid
// bounds. It owns the full system schedule and reloads itself after a round
// ends or on manual restart.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	sfx          components.SFXPlayer
	once         sync.Once
}

func NewArenaScene(sc SceneChanger, sfx components.SFXPlayer) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, sfx: sfx}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if as.restartRequested() {
		as.sceneChanger.ChangeScene(NewArenaScene(as.sceneChanger, as.sfx))
	}
}

func (as *ArenaScene) restartRequested() bool {
	if systems.RestartDue(as.ecs) {
		return true
	}
	if entry, ok := components.Input.First(as.ecs.World); ok {
		return components.Input.Get(entry).JustPressed(cfg.ActionRestart)
	}
	return false
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Frame phase. The clock runs first so every later system sees this
	// frame's time; physics runs as a block of fixed sub-ticks in the
	// middle, then the systems that drain what the sub-ticks produced.
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateCharges)
	e.AddSystem(systems.UpdateDilation)
	e.AddSystem(systems.UpdateCombos)
	e.AddSystem(systems.RunPhysicsTicks)
	e.AddSystem(systems.UpdateDamage)
	e.AddSystem(systems.UpdateDeaths)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateHUD)

	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	// Singletons.
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 8, 8)
	components.Clock.SetValue(archetypes.Clock.Spawn(e), systems.NewClockData())
	components.Dilation.SetValue(archetypes.Dilation.Spawn(e), systems.NewDilationData())
	archetypes.Session.Spawn(e)
	archetypes.Input.Spawn(e)
	archetypes.ScreenShake.Spawn(e)
	archetypes.Settings.Spawn(e)
	archetypes.Hud.Spawn(e)
	components.Audio.SetValue(archetypes.Audio.Spawn(e), components.AudioData{
		SFXVolume: cfg.Audio.DefaultSFXVol,
		Service:   as.sfx,
	})

	// Arena contents.
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)
	factory.CreateArenaBounds(e, w, h)
	factory.CreatePlayer(e, 80, h-16-cfg.Player.CollisionHeight)
	for i := 0; i < 3; i++ {
		factory.CreateDummy(e, w/2+float64(i)*60, h-16-cfg.Dummy.CollisionHeight)
	}

	as.ecs = e

	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(e, saved)
	}
}
