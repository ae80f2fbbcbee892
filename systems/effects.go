package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
)

// UpdateEffects decays screen shake and hit flashes. Both run on unscaled
// time so feedback reads the same under slow motion.
func UpdateEffects(e *ecs.ECS) {
	clk := getClock(e)
	if clk == nil {
		return
	}
	dt := clk.UnscaledDelta

	if entry, ok := components.ScreenShake.First(e.World); ok {
		shake := components.ScreenShake.Get(entry)
		if shake.Remaining > 0 {
			shake.Remaining -= dt
			shake.Elapsed += dt
			if shake.Remaining <= 0 {
				shake.Remaining = 0
				shake.Intensity = 0
			}
		}
	}

	components.Flash.Each(e.World, func(entry *donburi.Entry) {
		flash := components.Flash.Get(entry)
		if flash.Remaining > 0 {
			flash.Remaining -= dt
			if flash.Remaining < 0 {
				flash.Remaining = 0
			}
		}
	})
}

// TriggerScreenShake starts a camera shake. A stronger shake replaces a
// weaker one in flight; a weaker one is ignored.
func TriggerScreenShake(e *ecs.ECS, intensity, duration float64) {
	entry, ok := components.ScreenShake.First(e.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Remaining > 0 && shake.Intensity > intensity {
		return
	}
	shake.Intensity = intensity
	shake.Duration = duration
	shake.Remaining = duration
	shake.Elapsed = 0
}

// TriggerHitFlash tints the struck entity. Heavy hits flash longer and
// redder.
func TriggerHitFlash(entry *donburi.Entry, heavy bool) {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	if heavy {
		flash.Remaining = cfg.Flash.HeavyDuration
		flash.R, flash.G, flash.B = 1, 0.3, 0.3
	} else {
		flash.Remaining = cfg.Flash.HitDuration
		flash.R, flash.G, flash.B = 1, 1, 1
	}
}
