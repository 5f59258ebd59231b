package main

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/celestial"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/roster"
	"github.com/lixenwraith/orrery/view"
)

const (
	minMultiplier = 0.125
	maxMultiplier = 16.0
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionFaster
	actionSlower
	actionTap
	actionHide
	actionNext
	actionClock
)

// actionFor maps a key press to a viewer action
func actionFor(key tcell.Key, ch rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyEnter:
		return actionTap
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return actionQuit
		case ' ':
			return actionPause
		case '+', '=':
			return actionFaster
		case '-', '_':
			return actionSlower
		case 'h', 'H':
			return actionHide
		case 'n', 'N':
			return actionNext
		case 'c', 'C':
			return actionClock
		}
	}
	return actionNone
}

// controller owns viewer state, every method except Done runs on the frame loop goroutine
type controller struct {
	screen  tcell.Screen
	clock   *engine.PausableClock
	stage   *celestial.Stage
	readout *view.Readout
	roster  *roster.Roster
	status  view.Status

	// resume is the multiplier restored when a paused body is resumed
	resume float64
	hidden bool

	quit     chan struct{}
	quitOnce sync.Once
}

func newController(screen tcell.Screen, clock *engine.PausableClock, stage *celestial.Stage, r *roster.Roster, status view.Status) *controller {
	return &controller{
		screen:  screen,
		clock:   clock,
		stage:   stage,
		readout: view.NewReadout(),
		roster:  r,
		status:  status,
		resume:  1,
		quit:    make(chan struct{}),
	}
}

// Done is closed once the user asks to quit
func (c *controller) Done() <-chan struct{} {
	return c.quit
}

// Update redraws the frame, it runs after the stage has advanced
func (c *controller) Update(time.Duration) {
	if c.screen == nil {
		return
	}
	c.status.ClockPaused = c.clock.IsPaused()
	c.readout.Draw(c.screen, c.stage.Active(), c.status)
	c.screen.Show()
}

func (c *controller) apply(a action) {
	switch a {
	case actionQuit:
		c.quitOnce.Do(func() { close(c.quit) })
	case actionPause:
		c.togglePause()
	case actionFaster:
		c.scale(2)
	case actionSlower:
		c.scale(0.5)
	case actionTap:
		if b := c.stage.Active(); b != nil && b.InfoShown() {
			b.DismissInfo()
			return
		}
		c.stage.Tap()
	case actionHide:
		c.toggleHidden()
	case actionNext:
		c.next()
	case actionClock:
		c.clock.Toggle()
		c.status.ClockPaused = c.clock.IsPaused()
	}
}

func (c *controller) togglePause() {
	b := c.stage.Active()
	if b == nil {
		return
	}
	if m := b.SpeedMultiplier(); m > 0 {
		c.resume = m
		c.setMultiplier(b, 0)
		return
	}
	c.setMultiplier(b, c.resume)
}

// scale multiplies the speed, a paused body only has its resume speed changed
func (c *controller) scale(factor float64) {
	b := c.stage.Active()
	if b == nil {
		return
	}
	m := b.SpeedMultiplier()
	if m == 0 {
		c.resume = clampMultiplier(c.resume * factor)
		c.status.Message = fmt.Sprintf("resume speed x%.3g", c.resume)
		return
	}
	c.setMultiplier(b, clampMultiplier(m*factor))
}

func (c *controller) setMultiplier(b *celestial.Body, m float64) {
	if err := b.SetSpeedMultiplier(m); err != nil {
		c.status.Message = err.Error()
		return
	}
	c.status.Message = ""
	log.Printf("controller: %s speed multiplier %.3g", b.Name(), m)
}

func (c *controller) toggleHidden() {
	if c.hidden {
		c.stage.Show()
	} else {
		c.stage.Hide()
	}
	c.hidden = !c.hidden
}

// next places the catalogue body after the active one, applying any roster override
func (c *controller) next() {
	current := ""
	if b := c.stage.Active(); b != nil {
		current = b.Name()
	}
	name := celestial.Next(current)
	spec, err := c.roster.Spec(name)
	if err != nil {
		c.status.Message = err.Error()
		return
	}
	if _, err := c.stage.Select(spec); err != nil {
		c.status.Message = err.Error()
		return
	}
	c.hidden = false
	c.resume = 1
	c.status.Message = ""
}

// reload re-reads the roster file, on failure the current body keeps spinning
func (c *controller) reload(path string) {
	r, err := roster.Load(path)
	if err != nil {
		log.Printf("controller: reload failed: %v", err)
		c.status.Message = "reload failed: " + err.Error()
		return
	}
	if _, err := roster.Apply(c.stage, r); err != nil {
		log.Printf("controller: apply failed: %v", err)
		c.status.Message = "apply failed: " + err.Error()
		return
	}
	c.roster = r
	c.hidden = false
	c.status.Message = "roster reloaded"
}

func clampMultiplier(m float64) float64 {
	if m < minMultiplier {
		return minMultiplier
	}
	if m > maxMultiplier {
		return maxMultiplier
	}
	return m
}
