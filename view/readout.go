// Package view draws a text readout of the active body onto a tcell screen
package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/celestial"
	"github.com/lixenwraith/orrery/vmath"
)

const (
	headerRows   = 6
	footerRows   = 1
	phaseBarSize = 30
	ringSamples  = 48
	axisOverhang = 1.3
	cardMaxWidth = 64
	cardPadding  = 2
)

// Marker runes for the projected globe
const (
	RuneFront    = '•'
	RuneBack     = '·'
	RuneMeridian = '@'
	RuneAxis     = '|'
	RuneNorth    = 'N'
	RuneSouth    = 'S'
)

const helpLine = "space pause  +/- speed  enter info  h hide  n next  c clock  q quit"

// Status is viewer state not owned by the body
type Status struct {
	ClockPaused bool
	Audio       bool
	Source      string // roster path or "catalogue"
	Message     string // last reload outcome
}

// Readout renders body state, reusing styles across frames
type Readout struct {
	title  tcell.Style
	text   tcell.Style
	dim    tcell.Style
	accent tcell.Style
	warn   tcell.Style
}

// NewReadout creates a readout with the default palette
func NewReadout() *Readout {
	base := tcell.StyleDefault
	return &Readout{
		title:  base.Bold(true).Foreground(tcell.ColorGold),
		text:   base,
		dim:    base.Foreground(tcell.ColorGray),
		accent: base.Foreground(tcell.ColorAqua),
		warn:   base.Foreground(tcell.ColorOrangeRed),
	}
}

// Draw clears s and paints one frame, caller calls Show
func (r *Readout) Draw(s tcell.Screen, b *celestial.Body, st Status) {
	s.Clear()
	w, h := s.Size()

	if b == nil {
		drawText(s, 0, 0, r.title, "orrery")
		drawText(s, 0, 1, r.dim, "no body placed")
		drawText(s, 0, h-1, r.dim, helpLine)
		return
	}

	drawText(s, 0, 0, r.title, fmt.Sprintf("orrery  %s  [%s]", b.Name(), b.State()))
	if st.ClockPaused {
		drawText(s, w-len("CLOCK PAUSED"), 0, r.warn, "CLOCK PAUSED")
	}

	spec := b.Spec()
	drawText(s, 0, 1, r.text, fmt.Sprintf("tilt %.2f°  %s  speed x%.2f  cycle %s",
		spec.Tilt, direction(spec.Clockwise), b.SpeedMultiplier(), cycleLabel(b)))
	drawText(s, 0, 2, r.accent, fmt.Sprintf("phase %s %.3f  laps %d", PhaseBar(b.Phase(), phaseBarSize), b.Phase(), b.Laps()))

	q := b.Orientation()
	drawText(s, 0, 3, r.dim, fmt.Sprintf("q = (%+.4f, %+.4f, %+.4f, %+.4f)", q.Real, q.Imag, q.Jmag, q.Kmag))

	source := st.Source
	if source == "" {
		source = "catalogue"
	}
	audio := "off"
	if st.Audio {
		audio = "on"
	}
	drawText(s, 0, 4, r.dim, fmt.Sprintf("source %s  chime %s", source, audio))
	if st.Message != "" {
		drawText(s, 0, 5, r.warn, st.Message)
	}

	r.drawGlobe(s, b, 0, headerRows, w, h-headerRows-footerRows)

	if b.InfoShown() {
		r.drawInfoCard(s, b, headerRows, w, h-headerRows-footerRows)
	}

	drawText(s, 0, h-1, r.dim, helpLine)
}

// drawGlobe projects the equator, prime meridian and spin axis into the given area
func (r *Readout) drawGlobe(s tcell.Screen, b *celestial.Body, x0, y0, w, h int) {
	if w < 8 || h < 4 || b.State() != celestial.StatePlaced {
		return
	}

	// Terminal cells are roughly twice as tall as wide
	ry := float64(h-1) / 2 / axisOverhang
	rx := math.Min(ry*2, float64(w-1)/2/axisOverhang)
	ry = rx / 2
	cx := x0 + w/2
	cy := y0 + h/2

	q := b.Orientation()
	plot := func(p vmath.Vec3F, ch rune, style tcell.Style) {
		x := cx + int(math.Round(p.X*rx))
		y := cy - int(math.Round(p.Y*ry))
		if x >= x0 && x < x0+w && y >= y0 && y < y0+h {
			s.SetContent(x, y, ch, nil, style)
		}
	}

	for i := 0; i < ringSamples; i++ {
		a := 2 * math.Pi * float64(i) / ringSamples
		p := vmath.QRotate(q, vmath.Vec3F{X: math.Cos(a), Z: -math.Sin(a)})
		if p.Z >= 0 {
			plot(p, RuneFront, r.text)
		} else {
			plot(p, RuneBack, r.dim)
		}
	}

	axis := vmath.QRotate(q, vmath.V3FUp)
	for i := -4; i <= 4; i++ {
		plot(vmath.V3FScale(axis, float64(i)/4), RuneAxis, r.dim)
	}
	plot(vmath.V3FScale(axis, axisOverhang), RuneNorth, r.accent)
	plot(vmath.V3FScale(axis, -axisOverhang), RuneSouth, r.accent)

	meridian := vmath.QRotate(q, vmath.V3FRight)
	if meridian.Z >= 0 {
		plot(meridian, RuneMeridian, r.title)
	} else {
		plot(meridian, RuneMeridian, r.dim)
	}
}

// drawInfoCard overlays the body's description in a centred box over the globe area
// Text that does not fit in h rows is cut with an ellipsis
func (r *Readout) drawInfoCard(s tcell.Screen, b *celestial.Body, y0, w, h int) {
	if h < 1 || w < 1 {
		return
	}
	cardW := min(w, cardMaxWidth)
	x0 := (w - cardW) / 2
	textW := cardW - 2*cardPadding

	lines := WrapText(b.Info(), textW)
	if fit := h - 1; len(lines) > fit {
		lines = lines[:max(fit, 0)]
		if fit > 0 {
			last := []rune(lines[fit-1])
			if len(last) >= textW {
				last = last[:textW-1]
			}
			lines[fit-1] = string(last) + "…"
		}
	}

	for y := y0; y <= y0+len(lines); y++ {
		for x := x0; x < x0+cardW; x++ {
			s.SetContent(x, y, ' ', nil, r.text)
		}
	}

	title := fmt.Sprintf("[ %s ]", b.Name())
	drawText(s, x0+(cardW-len([]rune(title)))/2, y0, r.title, title)
	for i, line := range lines {
		drawText(s, x0+cardPadding, y0+1+i, r.text, line)
	}
}

// WrapText breaks text into lines of at most width runes at spaces
// Words longer than width are split
func WrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line []rune
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > width {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(w) == 0:
		case len(line) == 0:
			line = w
		case len(line)+1+len(w) <= width:
			line = append(append(line, ' '), w...)
		default:
			lines = append(lines, string(line))
			line = w
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}

// PhaseBar renders phase in [0,1) as a fixed width progress bar
func PhaseBar(phase float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(phase * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func direction(clockwise bool) string {
	if clockwise {
		return "clockwise"
	}
	return "counter-clockwise"
}

func cycleLabel(b *celestial.Body) string {
	d := b.CycleDuration()
	if d == 0 {
		return "paused"
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	w, h := s.Size()
	if y < 0 || y >= h {
		return
	}
	for _, ch := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			s.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}
