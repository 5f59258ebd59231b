// Package rotation spins a body about a tilted axis from a fixed keyframe table
//
// The table holds one full turn split into equal arcs about the local up axis,
// each keyframe pre-multiplied by a constant tilt about X. Playback position is
// a fractional phase in [0,1) advanced by an external per-frame clock, so speed
// changes rescale the rate of advance without moving the phase.
package rotation

import (
	"time"

	"github.com/lixenwraith/orrery/vmath"
)

// KeyframeCount keyframes span ArcCount equal arcs, first and last coincide at a full turn
const (
	KeyframeCount = 4
	ArcCount      = KeyframeCount - 1
)

// Keyframes is the precomputed orientation table for one cycle
type Keyframes [KeyframeCount]vmath.Quat

// Animator owns the keyframe table and playback state of a single body
// Not safe for concurrent use; each body drives its own instance from one frame callback
type Animator struct {
	cfg        Config
	keyframes  Keyframes
	multiplier float64

	phase   float64
	running bool
	laps    uint64
}

// New validates cfg and builds the keyframe table, phase starts at zero and playback stopped
func New(cfg Config) (*Animator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Animator{
		cfg:        cfg,
		keyframes:  BuildKeyframes(cfg.Clockwise, cfg.AxisTiltDeg),
		multiplier: cfg.SpeedMultiplier,
	}, nil
}

// BuildKeyframes returns tilt·spin(angle) for angle = i·120°, mirrored to 360°-angle when clockwise
// Tilt is the left operand so the spin happens about the tilted axis
func BuildKeyframes(clockwise bool, axisTiltDeg float64) Keyframes {
	var keys Keyframes
	tilt := vmath.QAxisAngle(vmath.V3FRight, axisTiltDeg)
	for i := range keys {
		angle := float64(i) * vmath.FullTurnDeg / ArcCount
		if clockwise {
			angle = vmath.FullTurnDeg - angle
		}
		keys[i] = vmath.QMul(tilt, vmath.QAxisAngle(vmath.V3FUp, angle))
	}
	return keys
}

// Activate starts the cycle from the current phase, no-op when already running
func (a *Animator) Activate() {
	a.running = true
}

// Deactivate stops the cycle and discards playback state
// A later Activate restarts from phase zero
func (a *Animator) Deactivate() {
	if !a.running {
		return
	}
	a.running = false
	a.phase = 0
	a.laps = 0
}

// Advance moves the phase by elapsed and returns the orientation to apply this frame
// Stopped or paused animators return the frozen orientation
func (a *Animator) Advance(elapsed time.Duration) vmath.Quat {
	if !a.running || a.multiplier == 0 || elapsed <= 0 {
		return a.Orientation()
	}

	step := elapsed.Seconds() * a.effectiveSpeed() / vmath.FullTurnDeg
	phase, whole := vmath.WrapUnit(a.phase + step)
	a.phase = phase
	a.laps += uint64(whole)

	return a.Orientation()
}

// SetSpeedMultiplier changes the live multiplier, applied from the next Advance
// Phase is untouched so the body does not jump
func (a *Animator) SetSpeedMultiplier(m float64) error {
	if err := validateMultiplier(m); err != nil {
		return err
	}
	if err := validateCycle(a.cfg.DegreesPerSecond, m); err != nil {
		return err
	}
	a.multiplier = m
	return nil
}

// Duration is the length of one full cycle at the live multiplier, 0 while paused
// Saturates at MaxCycle
func (a *Animator) Duration() time.Duration {
	speed := a.effectiveSpeed()
	if speed == 0 {
		return 0
	}
	ns := cycleNanos(speed)
	if ns >= float64(MaxCycle) {
		return MaxCycle
	}
	return time.Duration(ns)
}

// Orientation samples the keyframe table at the current phase
func (a *Animator) Orientation() vmath.Quat {
	return Sample(a.keyframes, a.phase)
}

// Phase is the position within the current cycle, in [0,1)
func (a *Animator) Phase() float64 { return a.phase }

// Running reports whether the animator is active
func (a *Animator) Running() bool { return a.running }

// Laps counts cycles completed since the last activation
func (a *Animator) Laps() uint64 { return a.laps }

// SpeedMultiplier is the live multiplier, 0 while paused
func (a *Animator) SpeedMultiplier() float64 { return a.multiplier }

// Keyframes returns a copy of the orientation table
func (a *Animator) Keyframes() Keyframes { return a.keyframes }

// Config returns the creation config, the live multiplier is reported separately
func (a *Animator) Config() Config { return a.cfg }

func (a *Animator) effectiveSpeed() float64 {
	return a.cfg.DegreesPerSecond * a.multiplier
}

// Sample interpolates keys at phase, slerping within the arc the phase falls into
// Phase outside [0,1) is wrapped
func Sample(keys Keyframes, phase float64) vmath.Quat {
	phase, _ = vmath.WrapUnit(phase)

	scaled := phase * ArcCount
	arc := int(scaled)
	if arc >= ArcCount {
		arc = ArcCount - 1
	}
	return vmath.QSlerp(keys[arc], keys[arc+1], scaled-float64(arc))
}
