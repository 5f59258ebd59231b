package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Waveform selects the periodic shape of a tone
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveTriangle
)

// fadeOut ramps every decay to zero so streams never end on a click
const fadeOut = 5 * time.Millisecond

// at evaluates w at cycle position p in [0,1)
func (w Waveform) at(p float64) float64 {
	switch w {
	case WaveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(p-0.5)
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// tone is a fixed-length periodic wave, identical on both channels
type tone struct {
	wave Waveform
	step float64 // cycles per sample
	pos  float64
	left int
}

// NewTone returns a streamer of freq Hz lasting duration
func NewTone(freq float64, duration time.Duration, wave Waveform, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave: wave,
		step: freq / float64(rate),
		left: rate.N(duration),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.left <= 0 {
		return 0, false
	}
	n = min(len(samples), t.left)
	for i := 0; i < n; i++ {
		v := t.wave.at(t.pos)
		samples[i] = [2]float64{v, v}
		t.pos += t.step
		if t.pos >= 1 {
			t.pos -= math.Floor(t.pos)
		}
	}
	t.left -= n
	return n, true
}

func (t *tone) Err() error { return nil }

// decay gives a stream a struck-bell shape: a linear attack, then exponential
// fall with the given half-life, with a short linear fade into the end
type decay struct {
	streamer beep.Streamer
	pos      int
	attack   int
	fade     int
	total    int
	halfLife float64 // samples
}

// NewDecay shapes s over duration, samples beyond duration are dropped
func NewDecay(s beep.Streamer, duration, attack, halfLife time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &decay{
		streamer: s,
		attack:   min(rate.N(attack), total),
		fade:     min(rate.N(fadeOut), total),
		total:    total,
		halfLife: math.Max(float64(rate.N(halfLife)), 1),
	}
}

func (d *decay) gain(pos int) float64 {
	if pos < d.attack {
		return float64(pos) / float64(d.attack)
	}
	g := math.Exp2(-float64(pos-d.attack) / d.halfLife)
	if remaining := d.total - pos; remaining < d.fade {
		g *= float64(remaining) / float64(d.fade)
	}
	return g
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := d.total - d.pos
	if remaining <= 0 {
		return 0, false
	}
	if len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := d.gain(d.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		d.pos++
	}
	return n, ok || n > 0
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume wraps s in a linear gain, 0 silences instead of taking Log2(0)
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
