package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestToneRange verifies every waveform stays within [-1, 1] on both channels
func TestToneRange(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, wave := range []Waveform{WaveSine, WaveSquare, WaveTriangle} {
		tone := NewTone(440.0, 100*time.Millisecond, wave, rate)

		samples := make([][2]float64, 100)
		n, ok := tone.Stream(samples)
		if !ok || n != 100 {
			t.Fatalf("wave %d: expected 100 samples ok, got n=%d ok=%v", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
				t.Errorf("wave %d: sample %d out of range: %f", wave, i, samples[i][0])
			}
			if samples[i][0] != samples[i][1] {
				t.Errorf("wave %d: sample %d channels differ", wave, i)
			}
		}
		if tone.Err() != nil {
			t.Errorf("Expected no error, got: %v", tone.Err())
		}
	}
}

func TestWaveformAt(t *testing.T) {
	tests := []struct {
		wave Waveform
		p    float64
		want float64
	}{
		{WaveSine, 0.25, 1},
		{WaveSine, 0.75, -1},
		{WaveSquare, 0.1, 1},
		{WaveSquare, 0.6, -1},
		{WaveTriangle, 0, -1},
		{WaveTriangle, 0.5, 1},
	}

	for _, tt := range tests {
		if got := tt.wave.at(tt.p); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("wave %d at %v: expected %v, got %v", tt.wave, tt.p, tt.want, got)
		}
	}
}

// TestToneDuration verifies a tone stops after its duration and then drains
func TestToneDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expectedSamples := rate.N(duration)

	tone := NewTone(440.0, duration, WaveSine, rate)

	samples := make([][2]float64, expectedSamples*2)
	n, ok := tone.Stream(samples)
	if n != expectedSamples || !ok {
		t.Errorf("Expected %d samples ok, got n=%d ok=%v", expectedSamples, n, ok)
	}

	n2, ok2 := tone.Stream(make([][2]float64, 10))
	if ok2 || n2 != 0 {
		t.Errorf("Expected drained stream, got n=%d ok=%v", n2, ok2)
	}
}

// TestDecayShape reads the gain curve through a square wave of magnitude 1
func TestDecayShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 200 * time.Millisecond
	attack := 10 * time.Millisecond
	halfLife := 50 * time.Millisecond

	d := NewDecay(NewTone(100.0, duration, WaveSquare, rate), duration, attack, halfLife, rate)

	samples := make([][2]float64, rate.N(duration))
	n, ok := d.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Expected %d samples, got n=%d ok=%v", len(samples), n, ok)
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	peak := rate.N(attack)
	if got := math.Abs(samples[peak][0]); got != 1.0 {
		t.Errorf("Expected full volume at end of attack, got %f", got)
	}
	if got := math.Abs(samples[peak+rate.N(halfLife)][0]); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected half volume one half-life later, got %f", got)
	}
	if last := math.Abs(samples[n-1][0]); last > 0.01 {
		t.Errorf("Expected near silence at end, got %f", last)
	}

	if n2, ok2 := d.Stream(make([][2]float64, 10)); ok2 || n2 != 0 {
		t.Errorf("Expected drained decay, got n=%d ok=%v", n2, ok2)
	}
}

// TestChimeLength verifies the chime plays for exactly its duration
func TestChimeLength(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	chime := CreateChimeSound(cfg, ChimeFreq(3))

	total := 0
	drained := false
	buf := make([][2]float64, 512)
	for i := 0; i < 1000 && !drained; i++ {
		n, ok := chime.Stream(buf)
		total += n
		drained = !ok
	}
	if !drained {
		t.Fatal("Chime did not terminate")
	}

	if want := rate.N(ChimeDuration); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

// TestChimeSilentAtZeroVolume verifies muted chimes produce only zeros
func TestChimeSilentAtZeroVolume(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0

	chime := CreateChimeSound(cfg, 880)
	buf := make([][2]float64, 1024)
	n, _ := chime.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("Expected silence, got %v at %d", buf[i], i)
		}
	}
}

// TestChimeFreq verifies six whole tones make an octave
func TestChimeFreq(t *testing.T) {
	if got := ChimeFreq(0); got != 880 {
		t.Errorf("Expected 880Hz base, got %f", got)
	}
	if got := ChimeFreq(6); math.Abs(got-1760) > 1e-6 {
		t.Errorf("Expected 1760Hz after six whole tones, got %f", got)
	}
}

// TestPlayerDisabledIsNoop verifies a disabled player never opens the speaker
func TestPlayerDisabledIsNoop(t *testing.T) {
	p := NewPlayer(nil)
	if err := p.Initialize(); err != nil {
		t.Fatalf("Expected disabled Initialize to succeed, got %v", err)
	}
	if p.Enabled() {
		t.Error("Expected disabled player")
	}
	p.PlayChime(880)
	p.Close()
}
