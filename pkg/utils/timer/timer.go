// Package timer tracks elapsed time for a whole command and for its current stage.
package timer

import (
	"sync"
	"time"
)

// Timer measures total elapsed time since Start and time spent in the current stage.
type Timer interface {
	// Start begins timing. Calling Start again resets the timer.
	Start()
	// NewStage marks the beginning of a new stage.
	NewStage()
	// GetTiming returns the total elapsed time and the elapsed time of the current stage.
	GetTiming() (time.Duration, time.Duration)
	// Stop freezes the timer; subsequent GetTiming calls return the stopped values.
	Stop()
}

type timer struct {
	mu         sync.Mutex
	now        func() time.Time
	start      time.Time
	stageStart time.Time
	stoppedAt  time.Time
	stopped    bool
}

// New returns a Timer backed by the wall clock.
func New() Timer {
	return &timer{now: time.Now}
}

func (t *timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.start = now
	t.stageStart = now
	t.stopped = false
}

func (t *timer) NewStage() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stageStart = t.now()
}

func (t *timer) GetTiming() (time.Duration, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.start.IsZero() {
		return 0, 0
	}

	end := t.now()
	if t.stopped {
		end = t.stoppedAt
	}

	return end.Sub(t.start), end.Sub(t.stageStart)
}

func (t *timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}

	t.stoppedAt = t.now()
	t.stopped = true
}
