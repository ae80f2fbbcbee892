package assets

import (
	"bytes"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
)

// AudioService synthesizes every sound effect at startup and plays them
// through a shared ebiten audio context. There are no audio files on disk;
// each clip is generated from its tuning entry in config.Sounds.
type AudioService struct {
	context *audio.Context
	clips   map[cfg.SoundID][]byte
}

var _ components.SFXPlayer = (*AudioService)(nil)

// NewAudioService creates the audio context and renders all known clips.
func NewAudioService() *AudioService {
	s := &AudioService{
		context: audio.NewContext(cfg.Audio.SampleRate),
		clips:   make(map[cfg.SoundID][]byte, len(cfg.Sounds)),
	}
	for id, tuning := range cfg.Sounds {
		s.clips[id] = renderClip(tuning)
	}
	return s
}

// Play starts a one-shot player for the clip. Unknown IDs are ignored.
func (s *AudioService) Play(id cfg.SoundID, volume float64) {
	clip, ok := s.clips[id]
	if !ok {
		return
	}
	p, err := s.context.NewPlayer(bytes.NewReader(clip))
	if err != nil {
		return
	}
	p.SetVolume(volume)
	p.Play()
}

// renderClip produces 16-bit little-endian stereo PCM for one sound. Tones
// are sines, impacts are filtered noise bursts; both fade out linearly so
// clips never click at the tail.
func renderClip(t cfg.SoundTuning) []byte {
	samples := int(float64(cfg.Audio.SampleRate) * t.Duration)
	out := make([]byte, samples*4)

	rng := rand.New(rand.NewSource(int64(t.Frequency)))
	prev := 0.0
	for i := 0; i < samples; i++ {
		progress := float64(i) / float64(samples)
		envelope := 1.0 - progress

		var v float64
		if t.Noise {
			// One-pole lowpass over white noise; lower frequencies
			// smooth harder, which reads as a heavier impact.
			alpha := math.Min(1, t.Frequency/1000.0)
			prev += alpha * (rng.Float64()*2 - 1 - prev)
			v = prev * 3
		} else {
			phase := float64(i) / float64(cfg.Audio.SampleRate)
			v = math.Sin(2 * math.Pi * t.Frequency * phase)
		}

		sample := int16(math.Max(-1, math.Min(1, v*envelope*t.Volume)) * math.MaxInt16)
		out[i*4] = byte(sample)
		out[i*4+1] = byte(sample >> 8)
		out[i*4+2] = byte(sample)
		out[i*4+3] = byte(sample >> 8)
	}
	return out
}
