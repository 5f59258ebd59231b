package celestial

import (
	"log"
	"time"
)

// LapFunc is invoked on the frame a body completes one or more revolutions
type LapFunc func(b *Body, laps uint64)

// Stage holds at most one placed body, replacing it when another is selected
// Owned by the frame loop goroutine
type Stage struct {
	active *Body
	onInfo InfoFunc
	onLap  LapFunc
}

// NewStage creates an empty stage, either callback may be nil
func NewStage(onInfo InfoFunc, onLap LapFunc) *Stage {
	return &Stage{onInfo: onInfo, onLap: onLap}
}

// Active returns the placed body or nil
func (s *Stage) Active() *Body {
	return s.active
}

// Select places a new body built from spec, removing the previous one
// On error the previous body stays on stage
func (s *Stage) Select(spec Spec) (*Body, error) {
	b, err := NewBody(spec, s.onInfo)
	if err != nil {
		return nil, err
	}
	if s.active != nil {
		log.Printf("stage: removing %s (%s)", s.active.Name(), s.active.ID)
		s.active.Remove()
	}
	s.active = b
	b.Place()
	log.Printf("stage: placed %s (%s) tilt=%.2f clockwise=%v", b.Name(), b.ID, spec.Tilt, spec.Clockwise)
	return b, nil
}

// Apply brings the stage in line with spec
// A body with the same shape only has its speed changed, so the spin continues without a jump
func (s *Stage) Apply(spec Spec) (*Body, error) {
	spec = spec.withDefaults()
	if s.active != nil && s.active.State() == StatePlaced && sameShape(s.active.Spec(), spec) {
		s.active.spec.Info = spec.Info
		if s.active.SpeedMultiplier() != spec.SpeedMultiplier {
			if err := s.active.SetSpeedMultiplier(spec.SpeedMultiplier); err != nil {
				return nil, err
			}
			log.Printf("stage: %s speed multiplier %.2f", spec.Name, spec.SpeedMultiplier)
		}
		return s.active, nil
	}
	return s.Select(spec)
}

// Update advances the active body and reports completed revolutions
func (s *Stage) Update(dt time.Duration) {
	if s.active == nil {
		return
	}
	if laps := s.active.Update(dt); laps > 0 && s.onLap != nil {
		s.onLap(s.active, laps)
	}
}

// Tap forwards a tap to the active body, reports whether a body received it
func (s *Stage) Tap() bool {
	if s.active == nil || s.active.State() != StatePlaced {
		return false
	}
	s.active.Tap()
	return true
}

// Hide deactivates the active body without discarding it
func (s *Stage) Hide() {
	if s.active != nil {
		s.active.Hide()
	}
}

// Show re-places a hidden active body, its spin restarts from phase zero
func (s *Stage) Show() {
	if s.active != nil {
		s.active.Place()
	}
}

// Clear removes the active body
func (s *Stage) Clear() {
	if s.active != nil {
		s.active.Remove()
		s.active = nil
	}
}

// sameShape compares everything except the live speed multiplier and info text
func sameShape(a, b Spec) bool {
	return a.Name == b.Name &&
		a.Scale == b.Scale &&
		a.Tilt == b.Tilt &&
		a.Clockwise == b.Clockwise &&
		a.DegreesPerSecond == b.DegreesPerSecond
}
