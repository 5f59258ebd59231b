package rotation

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/orrery/vmath"
)

var (
	// ErrZeroSpeed rejects a config whose cycle would never complete
	ErrZeroSpeed = errors.New("rotation: degrees per second must be nonzero")

	// ErrInvalidConfig covers negative or non-finite rates and multipliers
	ErrInvalidConfig = errors.New("rotation: invalid config")
)

// Default nominal spin rate, one turn every 4 seconds at multiplier 1
const DefaultDegreesPerSecond = 90.0

// Config is the immutable creation-time description of a spinning body
type Config struct {
	Clockwise        bool    // spin direction about the local up axis
	AxisTiltDeg      float64 // constant pre-rotation about the X axis
	SpeedMultiplier  float64 // initial multiplier, 0 = paused
	DegreesPerSecond float64 // angular speed at multiplier 1
}

// DefaultConfig returns an untilted counter-clockwise spin at 90°/s
func DefaultConfig() Config {
	return Config{
		SpeedMultiplier:  1,
		DegreesPerSecond: DefaultDegreesPerSecond,
	}
}

// Validate checks the config can produce a finite positive cycle duration once unpaused
func (c Config) Validate() error {
	if c.DegreesPerSecond == 0 {
		return ErrZeroSpeed
	}
	if !isFinite(c.DegreesPerSecond) || c.DegreesPerSecond < 0 {
		return fmt.Errorf("%w: degrees per second %v", ErrInvalidConfig, c.DegreesPerSecond)
	}
	if !isFinite(c.AxisTiltDeg) {
		return fmt.Errorf("%w: axis tilt %v", ErrInvalidConfig, c.AxisTiltDeg)
	}
	if err := validateMultiplier(c.SpeedMultiplier); err != nil {
		return err
	}
	return validateCycle(c.DegreesPerSecond, c.SpeedMultiplier)
}

// MaxCycle is the longest cycle a time.Duration can report
const MaxCycle = time.Duration(math.MaxInt64)

func validateMultiplier(m float64) error {
	if !isFinite(m) || m < 0 {
		return fmt.Errorf("%w: speed multiplier %v", ErrInvalidConfig, m)
	}
	return nil
}

// validateCycle rejects effective speeds that overflow, or are so slow one turn outlasts MaxCycle
// Paused multipliers always pass
func validateCycle(dps, m float64) error {
	if m == 0 {
		return nil
	}
	if !isFinite(dps * m) {
		return fmt.Errorf("%w: %v°/s x%v overflows", ErrInvalidConfig, dps, m)
	}
	if cycleNanos(dps*m) >= float64(MaxCycle) {
		return fmt.Errorf("%w: %v°/s x%v never completes a turn within %v", ErrInvalidConfig, dps, m, MaxCycle)
	}
	return nil
}

func cycleNanos(speed float64) float64 {
	return float64(time.Second) * vmath.FullTurnDeg / speed
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
