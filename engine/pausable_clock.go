package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides scene time that stops while paused
// Scene elapsed = real elapsed - total paused time
type PausableClock struct {
	mu sync.RWMutex

	provider      TimeProvider
	realStartTime time.Time // When clock was created (real time)

	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a running clock on the given provider, nil uses real time
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider:      provider,
		realStartTime: provider.Now(),
	}
}

// Now returns current scene time, frozen at the pause point while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.realStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}
	realElapsed := pc.provider.Now().Sub(pc.realStartTime)
	return pc.realStartTime.Add(realElapsed - pc.totalPausedTime)
}

// Elapsed returns scene time since the clock was created
func (pc *PausableClock) Elapsed() time.Duration {
	return pc.Now().Sub(pc.realStartTime)
}

// RealTime returns provider time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.provider.Now()
}

// Pause stops scene time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.isPaused.Load() {
		return
	}
	pc.pauseStartTime = pc.provider.Now()
	pc.isPaused.Store(true)
}

// Resume continues scene time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.isPaused.Load() {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.isPaused.Store(false)
}

// Toggle flips the pause state and reports whether the clock is now paused
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// GetTotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) GetTotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
