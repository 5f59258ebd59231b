package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/celestial"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/roster"
	"github.com/lixenwraith/orrery/view"
)

func newTestController(t *testing.T, screen tcell.Screen) (*controller, *celestial.Stage) {
	t.Helper()
	clock := engine.NewPausableClock(engine.NewMockTimeProvider(time.Unix(0, 0)))
	stage := celestial.NewStage(nil, nil)
	r := roster.Default()
	if _, err := roster.Apply(stage, r); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	return newController(screen, clock, stage, r, view.Status{}), stage
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		ch   rune
		want action
	}{
		{tcell.KeyEscape, 0, actionQuit},
		{tcell.KeyCtrlC, 0, actionQuit},
		{tcell.KeyEnter, 0, actionTap},
		{tcell.KeyRune, 'q', actionQuit},
		{tcell.KeyRune, ' ', actionPause},
		{tcell.KeyRune, '+', actionFaster},
		{tcell.KeyRune, '=', actionFaster},
		{tcell.KeyRune, '-', actionSlower},
		{tcell.KeyRune, 'h', actionHide},
		{tcell.KeyRune, 'n', actionNext},
		{tcell.KeyRune, 'c', actionClock},
		{tcell.KeyRune, 'x', actionNone},
		{tcell.KeyTab, 0, actionNone},
	}

	for _, tt := range tests {
		if got := actionFor(tt.key, tt.ch); got != tt.want {
			t.Errorf("actionFor(%v, %q): expected %d, got %d", tt.key, tt.ch, tt.want, got)
		}
	}
}

func TestControllerPauseResumesPreviousSpeed(t *testing.T) {
	c, stage := newTestController(t, nil)
	b := stage.Active()

	c.apply(actionFaster)
	if b.SpeedMultiplier() != 2 {
		t.Fatalf("Expected multiplier 2, got %v", b.SpeedMultiplier())
	}

	stage.Update(time.Second)
	phase := b.Phase()

	c.apply(actionPause)
	if b.SpeedMultiplier() != 0 {
		t.Errorf("Expected paused multiplier 0, got %v", b.SpeedMultiplier())
	}
	stage.Update(time.Second)
	if b.Phase() != phase {
		t.Errorf("Expected phase frozen at %v, got %v", phase, b.Phase())
	}

	// Speed keys while paused only change the resume speed
	c.apply(actionFaster)
	if b.SpeedMultiplier() != 0 {
		t.Errorf("Expected body to stay paused, got %v", b.SpeedMultiplier())
	}

	c.apply(actionPause)
	if b.SpeedMultiplier() != 4 {
		t.Errorf("Expected resume at 4, got %v", b.SpeedMultiplier())
	}
}

func TestControllerScaleClamps(t *testing.T) {
	c, stage := newTestController(t, nil)
	b := stage.Active()

	for i := 0; i < 10; i++ {
		c.apply(actionFaster)
	}
	if b.SpeedMultiplier() != maxMultiplier {
		t.Errorf("Expected clamp at %v, got %v", maxMultiplier, b.SpeedMultiplier())
	}

	for i := 0; i < 20; i++ {
		c.apply(actionSlower)
	}
	if b.SpeedMultiplier() != minMultiplier {
		t.Errorf("Expected clamp at %v, got %v", minMultiplier, b.SpeedMultiplier())
	}
}

func TestControllerNextCyclesCatalogue(t *testing.T) {
	c, stage := newTestController(t, nil)
	first := stage.Active()
	if first.Name() != celestial.Mercury {
		t.Fatalf("Expected Mercury first, got %s", first.Name())
	}

	c.apply(actionNext)
	if got := stage.Active().Name(); got != celestial.Venus {
		t.Errorf("Expected Venus, got %s", got)
	}
	if first.State() != celestial.StateRemoved {
		t.Error("Expected previous body removed")
	}
}

func TestControllerTapTogglesInfo(t *testing.T) {
	c, stage := newTestController(t, nil)
	b := stage.Active()

	c.apply(actionTap)
	if !b.InfoShown() {
		t.Fatal("Expected info shown after first tap")
	}
	c.apply(actionTap)
	if b.InfoShown() {
		t.Error("Expected info dismissed after second tap")
	}
}

func TestControllerHideAndClock(t *testing.T) {
	c, stage := newTestController(t, nil)
	b := stage.Active()

	c.apply(actionHide)
	if b.State() != celestial.StateDetached {
		t.Errorf("Expected detached, got %v", b.State())
	}
	c.apply(actionHide)
	if b.State() != celestial.StatePlaced {
		t.Errorf("Expected placed again, got %v", b.State())
	}

	c.apply(actionClock)
	if !c.clock.IsPaused() || !c.status.ClockPaused {
		t.Error("Expected clock paused")
	}
	c.apply(actionClock)
	if c.clock.IsPaused() {
		t.Error("Expected clock resumed")
	}
}

func TestControllerQuitIsIdempotent(t *testing.T) {
	c, _ := newTestController(t, nil)
	c.apply(actionQuit)
	c.apply(actionQuit)

	select {
	case <-c.Done():
	default:
		t.Error("Expected Done closed after quit")
	}
}

func TestControllerReload(t *testing.T) {
	c, stage := newTestController(t, nil)
	path := filepath.Join(t.TempDir(), "roster.yaml")

	if err := os.WriteFile(path, []byte("active: Saturn\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	c.reload(path)
	if got := stage.Active().Name(); got != celestial.Saturn {
		t.Errorf("Expected Saturn after reload, got %s", got)
	}

	if err := os.WriteFile(path, []byte("active: Pluto\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	c.reload(path)
	if got := stage.Active().Name(); got != celestial.Saturn {
		t.Errorf("Expected Saturn kept after failed reload, got %s", got)
	}
	if !strings.HasPrefix(c.status.Message, "reload failed") {
		t.Errorf("Expected reload failure message, got %q", c.status.Message)
	}
	// A file caught mid-save is empty and must not fall back to the default body
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	c.reload(path)
	if got := stage.Active().Name(); got != celestial.Saturn {
		t.Errorf("Expected Saturn kept after empty reload, got %s", got)
	}
}

func TestControllerUpdateDraws(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	c, _ := newTestController(t, screen)
	loop := engine.NewFrameLoop(c.clock, engine.DefaultTickInterval)
	loop.Add(c)
	loop.Post(func() { c.apply(actionClock) })
	loop.Step()

	if r, _, _, _ := screen.GetContent(0, 0); r != 'o' {
		t.Errorf("Expected title drawn, got %q", r)
	}
	if !c.status.ClockPaused {
		t.Error("Expected posted command applied before draw")
	}
}

func TestCatalogIndex(t *testing.T) {
	if got := catalogIndex("sun"); got != 0 {
		t.Errorf("Expected Sun at 0, got %d", got)
	}
	if got := catalogIndex(celestial.Neptune); got != len(celestial.Names())-1 {
		t.Errorf("Expected Neptune last, got %d", got)
	}
}
