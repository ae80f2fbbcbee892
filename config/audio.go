package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundSwing
	SoundHit
	SoundHeavyHit
	SoundDeath
	// Movement sounds
	SoundJump
	SoundLand
	// Feedback sounds
	SoundTierUp
	SoundChargeLoop
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundTuning holds per-sound synthesis parameters. All SFX are generated
// at startup, there are no audio files on disk.
type SoundTuning struct {
	Frequency float64 // Hz
	Duration  float64 // seconds
	Volume    float64 // relative gain, multiplied by the global SFX volume
	Noise     bool    // noise burst instead of a tone (impacts)
}

var Audio AudioConfig
var Sounds map[SoundID]SoundTuning

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sounds = map[SoundID]SoundTuning{
		SoundSwing:      {Frequency: 180, Duration: 0.08, Volume: 0.5},
		SoundHit:        {Frequency: 120, Duration: 0.10, Volume: 0.8, Noise: true},
		SoundHeavyHit:   {Frequency: 70, Duration: 0.22, Volume: 1.0, Noise: true},
		SoundDeath:      {Frequency: 55, Duration: 0.5, Volume: 1.0, Noise: true},
		SoundJump:       {Frequency: 320, Duration: 0.09, Volume: 0.4},
		SoundLand:       {Frequency: 90, Duration: 0.06, Volume: 0.4, Noise: true},
		SoundTierUp:     {Frequency: 660, Duration: 0.18, Volume: 0.7},
		SoundChargeLoop: {Frequency: 240, Duration: 0.25, Volume: 0.3},
	}
}
