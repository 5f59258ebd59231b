// Package celestial places spinning bodies on a stage and drives their animators
package celestial

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/orrery/rotation"
	"github.com/lixenwraith/orrery/vmath"
)

// InfoCardHeight places the info card above the body, as a fraction of its scale
const InfoCardHeight = 0.55

// InfoFunc is invoked when a placed body is tapped
type InfoFunc func(b *Body)

// State is the placement lifecycle of a body
type State int

const (
	StateDetached State = iota // created, never placed or hidden since
	StatePlaced                // animator running
	StateRemoved               // permanently discarded
)

func (s State) String() string {
	switch s {
	case StateDetached:
		return "detached"
	case StatePlaced:
		return "placed"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Body is one spinning celestial body with its info card
type Body struct {
	ID   uuid.UUID
	spec Spec

	anim        *rotation.Animator
	orientation vmath.Quat
	state       State

	cardVisible bool
	infoShown   bool
	onInfo      InfoFunc
}

// NewBody builds a detached body, the animator config is validated here
func NewBody(spec Spec, onInfo InfoFunc) (*Body, error) {
	spec = spec.withDefaults()
	anim, err := rotation.New(spec.RotationConfig())
	if err != nil {
		return nil, fmt.Errorf("body %q: %w", spec.Name, err)
	}
	return &Body{
		ID:          uuid.New(),
		spec:        spec,
		anim:        anim,
		orientation: anim.Orientation(),
		onInfo:      onInfo,
	}, nil
}

// Place activates the body, starting its spin and showing the card
func (b *Body) Place() {
	if b.state == StateRemoved {
		return
	}
	b.state = StatePlaced
	b.cardVisible = true
	b.anim.Activate()
}

// Hide deactivates the body, the spin restarts from phase zero on the next Place
func (b *Body) Hide() {
	if b.state != StatePlaced {
		return
	}
	b.state = StateDetached
	b.cardVisible = false
	b.infoShown = false
	b.anim.Deactivate()
	b.orientation = b.anim.Orientation()
}

// Remove permanently discards the body
func (b *Body) Remove() {
	b.Hide()
	b.state = StateRemoved
	b.onInfo = nil
}

// Update advances the spin by dt and reports how many revolutions completed
func (b *Body) Update(dt time.Duration) uint64 {
	if b.state != StatePlaced {
		return 0
	}
	before := b.anim.Laps()
	b.orientation = b.anim.Advance(dt)
	return b.anim.Laps() - before
}

// Tap opens the info view for a placed body
func (b *Body) Tap() {
	if b.state != StatePlaced {
		return
	}
	b.infoShown = true
	if b.onInfo != nil {
		b.onInfo(b)
	}
}

// DismissInfo closes the info view
func (b *Body) DismissInfo() {
	b.infoShown = false
}

// SetSpeedMultiplier rescales spin speed live without moving the phase
func (b *Body) SetSpeedMultiplier(m float64) error {
	if err := b.anim.SetSpeedMultiplier(m); err != nil {
		return fmt.Errorf("body %q: %w", b.spec.Name, err)
	}
	return nil
}

// CardOffset is the info card position relative to the body centre
func (b *Body) CardOffset() vmath.Vec3F {
	return vmath.Vec3F{Y: b.spec.Scale * InfoCardHeight}
}

// Axis is the body's tilted spin axis in scene space
func (b *Body) Axis() vmath.Vec3F {
	return vmath.QRotate(b.orientation, vmath.V3FUp)
}

// Name is the catalogue name
func (b *Body) Name() string { return b.spec.Name }

// Spec returns the resolved spec the body was built from
func (b *Body) Spec() Spec { return b.spec }

// Info is the text shown on the info card
func (b *Body) Info() string { return b.spec.Info }

// State is the lifecycle state
func (b *Body) State() State { return b.state }

// Orientation is the rotation sampled on the last Update
func (b *Body) Orientation() vmath.Quat { return b.orientation }

// Phase is the position within the current revolution, in [0,1)
func (b *Body) Phase() float64 { return b.anim.Phase() }

// Laps counts revolutions since the body was last placed
func (b *Body) Laps() uint64 { return b.anim.Laps() }

// SpeedMultiplier is the live multiplier, 0 while paused
func (b *Body) SpeedMultiplier() float64 { return b.anim.SpeedMultiplier() }

// CycleDuration is the time one revolution takes at the live speed, 0 while paused
func (b *Body) CycleDuration() time.Duration { return b.anim.Duration() }

// CardVisible reports whether the info card anchor is shown, true while placed
func (b *Body) CardVisible() bool { return b.cardVisible }

// InfoShown reports whether the info card is open
func (b *Body) InfoShown() bool { return b.infoShown }
