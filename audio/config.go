package audio

import (
	"os"
	"strconv"
)

// Config controls revolution chime playback
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	ChimeVolume  float64 // 0.0-1.0, scaled by MasterVolume
	SampleRate   int
}

// DefaultConfig returns audio disabled at a moderate volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      false,
		MasterVolume: 0.5,
		ChimeVolume:  0.8,
		SampleRate:   44100,
	}
}

// LoadConfig overlays ORRERY_AUDIO_* environment variables onto the defaults
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("ORRERY_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv("ORRERY_AUDIO_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	if sampleRate := os.Getenv("ORRERY_AUDIO_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
