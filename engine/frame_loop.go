package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTickInterval drives the loop at roughly 60 frames per second
const DefaultTickInterval = 16 * time.Millisecond

// commandQueueSize bounds work posted from input and reload goroutines between ticks
const commandQueueSize = 64

// Updater is advanced once per frame with scene time elapsed since the previous frame
type Updater interface {
	Update(dt time.Duration)
}

// UpdaterFunc adapts a function to Updater
type UpdaterFunc func(dt time.Duration)

// Update calls f(dt)
func (f UpdaterFunc) Update(dt time.Duration) { f(dt) }

// FrameLoop owns scene state on a single goroutine and ticks it on a fixed interval
// Other goroutines mutate scene state only through Post
type FrameLoop struct {
	clock        *PausableClock
	tickInterval time.Duration
	updaters     []Updater
	commands     chan func()

	mu               sync.Mutex
	lastTickTime     time.Time // Last tick in scene time
	nextTickDeadline time.Time // Next tick deadline for drift correction

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewFrameLoop creates a stopped loop ticking every tickInterval of scene time
func NewFrameLoop(clock *PausableClock, tickInterval time.Duration) *FrameLoop {
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}
	return &FrameLoop{
		clock:        clock,
		tickInterval: tickInterval,
		commands:     make(chan func(), commandQueueSize),
		lastTickTime: clock.Now(),
		stopChan:     make(chan struct{}),
	}
}

// Add registers an updater, must be called before Start
// Updaters run in registration order
func (fl *FrameLoop) Add(u Updater) {
	if u == nil {
		return
	}
	fl.updaters = append(fl.updaters, u)
}

// Post queues cmd to run on the loop goroutine before the next frame's updaters
// Returns false when the queue is full
func (fl *FrameLoop) Post(cmd func()) bool {
	if cmd == nil {
		return true
	}
	select {
	case fl.commands <- cmd:
		return true
	default:
		return false
	}
}

// Step runs one frame synchronously and returns the elapsed scene time it used
// Paused clocks yield zero elapsed time
func (fl *FrameLoop) Step() time.Duration {
	fl.drainCommands()

	fl.mu.Lock()
	now := fl.clock.Now()
	dt := now.Sub(fl.lastTickTime)
	fl.lastTickTime = now
	fl.mu.Unlock()

	if dt < 0 {
		dt = 0
	}
	for _, u := range fl.updaters {
		u.Update(dt)
	}
	fl.tickCount.Add(1)
	return dt
}

// TickCount returns the number of frames run so far
func (fl *FrameLoop) TickCount() uint64 {
	return fl.tickCount.Load()
}

// Start begins the loop goroutine, no-op if already running
func (fl *FrameLoop) Start() {
	if fl.running.CompareAndSwap(false, true) {
		fl.wg.Add(1)
		go fl.loop()
	}
}

// Stop halts the loop and waits for the current frame to finish
func (fl *FrameLoop) Stop() {
	fl.stopOnce.Do(func() {
		if fl.running.CompareAndSwap(true, false) {
			close(fl.stopChan)
			fl.wg.Wait()
		}
	})
}

func (fl *FrameLoop) loop() {
	defer fl.wg.Done()

	fl.mu.Lock()
	fl.lastTickTime = fl.clock.Now()
	fl.nextTickDeadline = fl.lastTickTime.Add(fl.tickInterval)
	fl.mu.Unlock()

	timer := time.NewTimer(fl.tickInterval)
	defer timer.Stop()

	for {
		var sleepDuration time.Duration

		if fl.clock.IsPaused() {
			// Keep draining input and redrawing at half rate while scene time is frozen
			fl.Step()
			sleepDuration = fl.tickInterval * 2
		} else {
			gameNow := fl.clock.Now()

			fl.mu.Lock()
			deadline := fl.nextTickDeadline
			fl.mu.Unlock()

			if !gameNow.Before(deadline) {
				fl.Step()

				fl.mu.Lock()
				fl.nextTickDeadline = fl.nextTickDeadline.Add(fl.tickInterval)
				maxBehind := fl.tickInterval * 2
				if gameNow.Sub(fl.nextTickDeadline) > maxBehind {
					fl.nextTickDeadline = gameNow.Add(fl.tickInterval)
				}
				deadline = fl.nextTickDeadline
				fl.mu.Unlock()
			}

			sleepDuration = deadline.Sub(fl.clock.Now())
			if sleepDuration < 0 {
				sleepDuration = 0
			}
		}

		timer.Reset(sleepDuration)
		select {
		case <-fl.stopChan:
			return
		case <-timer.C:
		}
	}
}

func (fl *FrameLoop) drainCommands() {
	for {
		select {
		case cmd := <-fl.commands:
			cmd()
		default:
			return
		}
	}
}
