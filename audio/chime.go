package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const (
	ChimeDuration            = 600 * time.Millisecond
	ChimeAttack              = 5 * time.Millisecond
	ChimeFundamentalHalfLife = 150 * time.Millisecond
	ChimeOvertoneHalfLife    = 40 * time.Millisecond

	// Base pitch A5, each catalogue step raises it a whole tone
	chimeBaseFreq = 880.0
	wholeTone     = 1.122462048309373
)

// ChimeFreq returns the fundamental for the body at catalogue position index
func ChimeFreq(index int) float64 {
	f := chimeBaseFreq
	for i := 0; i < index; i++ {
		f *= wholeTone
	}
	return f
}

// CreateChimeSound generates a short bell marking one completed revolution
func CreateChimeSound(cfg *Config, freq float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Struck bells ring a bright overtone that dies well before the fundamental
	fund := NewDecay(NewTone(freq, ChimeDuration, WaveSine, rate), ChimeDuration, ChimeAttack, ChimeFundamentalHalfLife, rate)
	over := NewDecay(NewTone(freq*2, ChimeDuration, WaveTriangle, rate), ChimeDuration, ChimeAttack, ChimeOvertoneHalfLife, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)

	return newVolume(mixed, cfg.ChimeVolume*cfg.MasterVolume)
}
