package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/haymaker/config"
)

// SFXPlayer plays a pre-synthesized effect. Implemented by assets.AudioService.
type SFXPlayer interface {
	Play(id cfg.SoundID, volume float64)
}

// AudioData is the singleton audio state. The service is constructed by the
// composition root and injected here; systems queue sound IDs and the audio
// system drains them once per frame. The core never depends on playback
// succeeding.
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
	PendingSFX []cfg.SoundID
	Service    SFXPlayer
}

var Audio = donburi.NewComponentType[AudioData]()
