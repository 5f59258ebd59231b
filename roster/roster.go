// Package roster loads the body roster file and applies it to a stage
//
// The roster names the active body and optionally overrides catalogue values
// per body. Editing the file while the viewer runs switches the active body or
// changes its speed in place.
package roster

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/orrery/celestial"
)

var (
	ErrUnknownBody = errors.New("roster: unknown body")

	// ErrEmptyRoster rejects a document with no content, such as a file caught mid-save
	ErrEmptyRoster = errors.New("roster: empty document")
)

// BodySpec overrides catalogue values for one body, nil fields keep the catalogue value
type BodySpec struct {
	Name             string   `yaml:"name"`
	Scale            *float64 `yaml:"scale,omitempty"`
	Tilt             *float64 `yaml:"tilt,omitempty"`
	Clockwise        *bool    `yaml:"clockwise,omitempty"`
	SpeedMultiplier  *float64 `yaml:"speed_multiplier,omitempty"`
	DegreesPerSecond *float64 `yaml:"degrees_per_second,omitempty"`
	Info             *string  `yaml:"info,omitempty"`
}

// Roster is the decoded roster file
type Roster struct {
	Active string     `yaml:"active"`
	Bodies []BodySpec `yaml:"bodies"`
}

// Load reads and validates the roster at path
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster: load %s: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("roster: %s: %w", path, err)
	}
	return r, nil
}

// Parse decodes and validates roster YAML, an empty document is an error
func Parse(data []byte) (*Roster, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if isEmptyDocument(&doc) {
		return nil, ErrEmptyRoster
	}

	var r Roster
	if err := doc.Decode(&r); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// isEmptyDocument reports blank, comment-only and bare null documents
func isEmptyDocument(doc *yaml.Node) bool {
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return true
	}
	root := doc.Content[0]
	return root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null"
}

// Validate checks names are known and unique and every resolved spec builds an animator
func (r *Roster) Validate() error {
	seen := make(map[string]bool, len(r.Bodies))
	for i, b := range r.Bodies {
		key := strings.ToLower(strings.TrimSpace(b.Name))
		if key == "" {
			return fmt.Errorf("bodies[%d]: missing name", i)
		}
		if seen[key] {
			return fmt.Errorf("bodies[%d]: duplicate body %q", i, b.Name)
		}
		seen[key] = true

		spec, err := b.Resolve()
		if err != nil {
			return fmt.Errorf("bodies[%d]: %w", i, err)
		}
		if err := spec.RotationConfig().Validate(); err != nil {
			return fmt.Errorf("bodies[%d] %s: %w", i, spec.Name, err)
		}
	}

	if strings.TrimSpace(r.Active) != "" {
		if _, err := r.Spec(r.Active); err != nil {
			return fmt.Errorf("active: %w", err)
		}
	}
	return nil
}

// Resolve overlays the override onto the catalogue entry of the same name
func (b BodySpec) Resolve() (celestial.Spec, error) {
	spec, ok := celestial.Lookup(b.Name)
	if !ok {
		return celestial.Spec{}, fmt.Errorf("%w: %q", ErrUnknownBody, b.Name)
	}
	if b.Scale != nil {
		spec.Scale = *b.Scale
	}
	if b.Tilt != nil {
		spec.Tilt = *b.Tilt
	}
	if b.Clockwise != nil {
		spec.Clockwise = *b.Clockwise
	}
	if b.SpeedMultiplier != nil {
		spec.SpeedMultiplier = *b.SpeedMultiplier
	}
	if b.DegreesPerSecond != nil {
		spec.DegreesPerSecond = *b.DegreesPerSecond
	}
	if b.Info != nil {
		spec.Info = *b.Info
	}
	return spec, nil
}

// Spec returns the resolved spec for name, catalogue defaults when the roster has no override
func (r *Roster) Spec(name string) (celestial.Spec, error) {
	for _, b := range r.Bodies {
		if strings.EqualFold(strings.TrimSpace(b.Name), strings.TrimSpace(name)) {
			return b.Resolve()
		}
	}
	spec, ok := celestial.Lookup(name)
	if !ok {
		return celestial.Spec{}, fmt.Errorf("%w: %q", ErrUnknownBody, name)
	}
	return spec, nil
}

// ActiveSpec resolves the active body, an empty selection falls back to the default body
func (r *Roster) ActiveSpec() (celestial.Spec, error) {
	name := strings.TrimSpace(r.Active)
	if name == "" {
		name = celestial.DefaultBody
	}
	return r.Spec(name)
}

// Apply places or updates the roster's active body on stage
func Apply(stage *celestial.Stage, r *Roster) (*celestial.Body, error) {
	spec, err := r.ActiveSpec()
	if err != nil {
		return nil, err
	}
	return stage.Apply(spec)
}

// Default returns a roster selecting the default body with catalogue values
func Default() *Roster {
	return &Roster{Active: celestial.DefaultBody}
}

// Encode writes r back to YAML
func (r *Roster) Encode() ([]byte, error) {
	return yaml.Marshal(r)
}
