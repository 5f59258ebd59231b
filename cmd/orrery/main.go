package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/celestial"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/roster"
	"github.com/lixenwraith/orrery/view"
)

var (
	rosterFlag      = flag.String("roster", "", "Roster YAML file, reloaded on change (default: catalogue, Mercury active)")
	debugFlag       = flag.Bool("debug", false, "Write logs to logs/orrery.log")
	tickFlag        = flag.Duration("tick", engine.DefaultTickInterval, "Frame interval")
	soundFlag       = flag.Bool("sound", false, "Play a chime on every completed revolution")
	writeRosterFlag = flag.Bool("write-roster", false, "Print the resolved roster as YAML and exit")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	r, err := loadRoster(*rosterFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(1)
	}

	if *writeRosterFlag {
		data, err := r.Encode()
		if err != nil {
			fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	if *tickFlag <= 0 {
		fmt.Fprintf(os.Stderr, "orrery: tick must be positive, got %v\n", *tickFlag)
		os.Exit(1)
	}

	if err := run(r); err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(1)
	}
}

func loadRoster(path string) (*roster.Roster, error) {
	if path == "" {
		return roster.Default(), nil
	}
	return roster.Load(path)
}

func run(r *roster.Roster) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if rec := recover(); rec != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mORRERY CRASHED: %v\x1b[0m\n", rec)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	audioCfg := audio.LoadConfig()
	if *soundFlag {
		audioCfg.Enabled = true
	}
	player := audio.NewPlayer(audioCfg)
	if err := player.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer player.Close()

	onInfo := func(b *celestial.Body) {
		log.Printf("info: %s tilt=%.2f clockwise=%v", b.Name(), b.Spec().Tilt, b.Spec().Clockwise)
	}
	onLap := func(b *celestial.Body, laps uint64) {
		log.Printf("lap: %s completed %d (total %d)", b.Name(), laps, b.Laps())
		player.PlayChime(audio.ChimeFreq(catalogIndex(b.Name())))
	}
	stage := celestial.NewStage(onInfo, onLap)
	if _, err := roster.Apply(stage, r); err != nil {
		return err
	}

	clock := engine.NewPausableClock(nil)
	loop := engine.NewFrameLoop(clock, *tickFlag)

	source := "catalogue"
	if *rosterFlag != "" {
		source = *rosterFlag
	}
	ctrl := newController(screen, clock, stage, r, view.Status{Audio: player.Enabled(), Source: source})

	loop.Add(engine.UpdaterFunc(stage.Update))
	loop.Add(ctrl)

	if *rosterFlag != "" {
		w, err := roster.NewWatcher(*rosterFlag)
		if err != nil {
			log.Printf("roster watch failed: %v (live reload disabled)", err)
		} else {
			defer w.Close()
			go forwardRosterChanges(w, loop, ctrl)
		}
	}

	go pollInput(screen, loop, ctrl)

	loop.Start()
	defer loop.Stop()

	<-ctrl.Done()
	return nil
}

// forwardRosterChanges hands every roster change to the loop goroutine until the watcher closes
func forwardRosterChanges(w *roster.Watcher, loop *engine.FrameLoop, ctrl *controller) {
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			log.Printf("roster changed: %s", path)
			if !loop.Post(func() { ctrl.reload(path) }) {
				log.Printf("roster reload dropped, command queue full")
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("roster watch error: %v", err)
		}
	}
}

// pollInput translates terminal events into loop commands, it exits when the screen is finalized
func pollInput(screen tcell.Screen, loop *engine.FrameLoop, ctrl *controller) {
	defer func() {
		if rec := recover(); rec != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", rec)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			a := actionFor(ev.Key(), ev.Rune())
			if a == actionNone {
				continue
			}
			if a == actionQuit {
				// Quit must not be lost to a full queue
				ctrl.apply(actionQuit)
				continue
			}
			if !loop.Post(func() { ctrl.apply(a) }) {
				log.Printf("input dropped, command queue full")
			}
		}
	}
}

func catalogIndex(name string) int {
	for i, n := range celestial.Names() {
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return 0
}
