package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundPlace SoundType = iota
	SoundReturn
	SoundClear
)

const (
	sampleRate = 44100
)

// AudioManager plays the procedurally generated effects.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager. Only one audio context may
// exist per process.
func NewAudioManager(enabled bool) *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: enabled,
		volume:  0.5,
	}
	am.generateSounds()
	return am
}

// generateSounds creates procedural sounds for each event type.
func (am *AudioManager) generateSounds() {
	// Place: short click (wood on wood)
	am.sounds[SoundPlace] = generateClick(440, 0.08, 0.3)

	// Return: softer, lower click
	am.sounds[SoundReturn] = generateClick(330, 0.1, 0.2)

	// Clear: a quick run of clicks, one per sweep
	am.sounds[SoundClear] = concatPCM(
		generateClick(520, 0.05, 0.25),
		silence(0.03),
		generateClick(440, 0.05, 0.25),
		silence(0.03),
		generateClick(360, 0.07, 0.25),
	)
}

// generateClick creates a short percussive click as 16-bit stereo PCM.
func generateClick(freq float64, duration float64, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		// Exponential decay envelope
		envelope := math.Exp(-t * 30)
		// Some noise for wood texture
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		sample := (math.Sin(2*math.Pi*freq*t) + noise) * envelope * amplitude
		putStereo(data, i, sample)
	}
	return data
}

// silence returns duration seconds of zero samples.
func silence(duration float64) []byte {
	return make([]byte, int(sampleRate*duration)*4)
}

func concatPCM(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// putStereo writes sample i to both channels, clamped to [-1, 1].
func putStereo(data []byte, i int, sample float64) {
	sample = math.Max(-1, math.Min(1, sample))
	val := int16(sample * 32767)
	data[i*4] = byte(val)
	data[i*4+1] = byte(val >> 8)
	data[i*4+2] = byte(val)
	data[i*4+3] = byte(val >> 8)
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if am == nil || !am.enabled {
		return
	}

	data, ok := am.sounds[sound]
	if !ok {
		return
	}

	// A new player per play allows overlapping sounds
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}
