package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
)

// UpdateSettings handles the mute and debug toggles and persists them.
func UpdateSettings(e *ecs.ECS) {
	input := getInput(e)
	audio := getAudio(e)
	settings := getSettings(e)
	if input == nil || audio == nil || settings == nil {
		return
	}

	changed := false
	if input.JustPressed(cfg.ActionMute) {
		audio.Muted = !audio.Muted
		changed = true
	}
	if input.JustPressed(cfg.ActionDebug) {
		settings.Debug = !settings.Debug
		changed = true
	}

	if changed {
		SaveSettings(&SavedSettings{
			SFXVolume: audio.SFXVolume,
			Muted:     audio.Muted,
			Debug:     settings.Debug,
		})
	}
}

// ApplySavedSettings copies loaded settings onto the live singletons.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	if audio := getAudio(e); audio != nil {
		audio.SFXVolume = saved.SFXVolume
		audio.Muted = saved.Muted
	}
	if settings := getSettings(e); settings != nil {
		settings.Debug = saved.Debug
	}
}

func getSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return nil
	}
	return components.Settings.Get(entry)
}
