package celestial

import (
	"strings"

	"github.com/lixenwraith/orrery/rotation"
)

// Spec describes a body before placement
type Spec struct {
	Name             string
	Scale            float64
	Tilt             float64 // axial tilt in degrees about X
	Clockwise        bool    // retrograde spin
	SpeedMultiplier  float64
	DegreesPerSecond float64
	Info             string // info card text
}

// RotationConfig derives the animator creation config
func (s Spec) RotationConfig() rotation.Config {
	return rotation.Config{
		Clockwise:        s.Clockwise,
		AxisTiltDeg:      s.Tilt,
		SpeedMultiplier:  s.SpeedMultiplier,
		DegreesPerSecond: s.DegreesPerSecond,
	}
}

const (
	Sun     = "Sun"
	Mercury = "Mercury"
	Venus   = "Venus"
	Earth   = "Earth"
	Mars    = "Mars"
	Jupiter = "Jupiter"
	Saturn  = "Saturn"
	Uranus  = "Uranus"
	Neptune = "Neptune"
)

// DefaultBody is selected when a requested name is unknown
const DefaultBody = Mercury

// withDefaults fills unset optional fields
func (s Spec) withDefaults() Spec {
	if s.Scale <= 0 {
		s.Scale = 1
	}
	return s
}

// Retrograde rotators carry their tilt as the supplement of the IAU obliquity
var catalog = map[string]Spec{
	Sun:     base(Sun, 7.25, false),
	Mercury: base(Mercury, 0.03, false),
	Venus:   base(Venus, 2.64, true),
	Earth:   base(Earth, 23.44, false),
	Mars:    base(Mars, 25.19, false),
	Jupiter: base(Jupiter, 3.13, false),
	Saturn:  base(Saturn, 26.73, false),
	Uranus:  base(Uranus, 82.23, true),
	Neptune: base(Neptune, 28.32, false),
}

// Order in which the viewer cycles bodies
var catalogOrder = []string{Sun, Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune}

func base(name string, tilt float64, clockwise bool) Spec {
	return Spec{
		Name:             name,
		Scale:            1,
		Tilt:             tilt,
		Clockwise:        clockwise,
		SpeedMultiplier:  1,
		DegreesPerSecond: rotation.DefaultDegreesPerSecond,
		Info:             descriptions[name],
	}
}

// Lookup returns the catalogue spec for name, case-insensitive
func Lookup(name string) (Spec, bool) {
	key := strings.TrimSpace(name)
	for _, n := range catalogOrder {
		if strings.EqualFold(n, key) {
			return catalog[n], true
		}
	}
	return Spec{}, false
}

// LookupOrDefault returns the catalogue spec for name, falling back to DefaultBody
func LookupOrDefault(name string) Spec {
	if s, ok := Lookup(name); ok {
		return s
	}
	return catalog[DefaultBody]
}

// Names returns catalogue names in viewing order
func Names() []string {
	return append([]string(nil), catalogOrder...)
}

// Next returns the catalogue name after name, wrapping around
// Unknown names start from the first entry
func Next(name string) string {
	for i, n := range catalogOrder {
		if strings.EqualFold(n, name) {
			return catalogOrder[(i+1)%len(catalogOrder)]
		}
	}
	return catalogOrder[0]
}
