package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
)

// UpdateAudio drains pending sound effects into the injected audio service.
// With no service (headless tests) or while muted, the queue is simply
// discarded; nothing in the core waits on playback.
func UpdateAudio(e *ecs.ECS) {
	audio := getAudio(e)
	if audio == nil {
		return
	}
	if audio.Service == nil || audio.Muted {
		audio.PendingSFX = audio.PendingSFX[:0]
		return
	}
	for _, id := range audio.PendingSFX {
		audio.Service.Play(id, audio.SFXVolume)
	}
	audio.PendingSFX = audio.PendingSFX[:0]
}

// PlaySFX queues a sound effect for the next audio drain. Safe to call from
// any system; a missing audio singleton makes it a no-op.
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	audio := getAudio(e)
	if audio == nil {
		return
	}
	audio.PendingSFX = append(audio.PendingSFX, id)
}

func getAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return nil
	}
	return components.Audio.Get(entry)
}
