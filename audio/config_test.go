package audio

import "testing"

// TestDefaultConfig verifies default configuration
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Enabled {
		t.Error("Expected audio disabled by default")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
}

// TestLoadConfigFromEnv verifies environment overrides
func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantEnabled bool
		wantVolume  float64
		wantRate    int
	}{
		{"defaults", nil, false, 0.5, 44100},
		{"enabled", map[string]string{"ORRERY_AUDIO_ENABLED": "true"}, true, 0.5, 44100},
		{"volume", map[string]string{"ORRERY_AUDIO_VOLUME": "25"}, false, 0.25, 44100},
		{"volume_clamped", map[string]string{"ORRERY_AUDIO_VOLUME": "250"}, false, 1, 44100},
		{"negative_volume_clamped", map[string]string{"ORRERY_AUDIO_VOLUME": "-10"}, false, 0, 44100},
		{"rate", map[string]string{"ORRERY_AUDIO_SAMPLE_RATE": "48000"}, false, 0.5, 48000},
		{"invalid_values_ignored", map[string]string{
			"ORRERY_AUDIO_ENABLED":     "maybe",
			"ORRERY_AUDIO_VOLUME":      "loud",
			"ORRERY_AUDIO_SAMPLE_RATE": "-1",
		}, false, 0.5, 44100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"ORRERY_AUDIO_ENABLED", "ORRERY_AUDIO_VOLUME", "ORRERY_AUDIO_SAMPLE_RATE"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := LoadConfig()
			if cfg.Enabled != tt.wantEnabled {
				t.Errorf("Expected Enabled=%v, got %v", tt.wantEnabled, cfg.Enabled)
			}
			if cfg.MasterVolume != tt.wantVolume {
				t.Errorf("Expected MasterVolume=%v, got %v", tt.wantVolume, cfg.MasterVolume)
			}
			if cfg.SampleRate != tt.wantRate {
				t.Errorf("Expected SampleRate=%d, got %d", tt.wantRate, cfg.SampleRate)
			}
		})
	}
}
