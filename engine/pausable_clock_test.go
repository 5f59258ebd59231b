package engine

import (
	"testing"
	"time"
)

func newMockClock() (*PausableClock, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewPausableClock(mock), mock
}

func TestPausableClockAdvancesWithProvider(t *testing.T) {
	clock, mock := newMockClock()

	mock.Advance(1500 * time.Millisecond)
	if got := clock.Elapsed(); got != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s elapsed, got %v", got)
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	clock, mock := newMockClock()

	mock.Advance(time.Second)
	clock.Pause()
	frozen := clock.Now()

	mock.Advance(3 * time.Second)
	if !clock.Now().Equal(frozen) {
		t.Errorf("Expected frozen time %v, got %v", frozen, clock.Now())
	}
	if got := clock.GetTotalPauseDuration(); got != 3*time.Second {
		t.Errorf("Expected 3s of pause so far, got %v", got)
	}

	clock.Resume()
	mock.Advance(500 * time.Millisecond)
	if got := clock.Elapsed(); got != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s scene time after resume, got %v", got)
	}
	if got := clock.RealTime().Sub(frozen); got != 3500*time.Millisecond {
		t.Errorf("Expected real time to keep running, got %v since pause", got)
	}
}

func TestPausableClockPauseResumeIdempotent(t *testing.T) {
	clock, mock := newMockClock()

	clock.Pause()
	mock.Advance(time.Second)
	clock.Pause()
	mock.Advance(time.Second)
	clock.Resume()
	clock.Resume()

	if got := clock.GetTotalPauseDuration(); got != 2*time.Second {
		t.Errorf("Expected 2s total pause, got %v", got)
	}
	if clock.IsPaused() {
		t.Error("Expected clock running after Resume")
	}
}

func TestPausableClockToggle(t *testing.T) {
	clock, _ := newMockClock()

	if paused := clock.Toggle(); !paused || !clock.IsPaused() {
		t.Error("Expected first Toggle to pause")
	}
	if paused := clock.Toggle(); paused || clock.IsPaused() {
		t.Error("Expected second Toggle to resume")
	}
}

func TestNewPausableClockDefaultsToRealTime(t *testing.T) {
	clock := NewPausableClock(nil)
	time.Sleep(5 * time.Millisecond)
	if clock.Elapsed() < 5*time.Millisecond {
		t.Errorf("Expected real time to advance, got %v", clock.Elapsed())
	}
}
