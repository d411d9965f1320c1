// Package timer implements the break session timer: a two-state machine
// producing elapsed whole seconds for a single running break.
package timer

import (
	"errors"
	"time"
)

// State of the session timer.
type State int

const (
	// Idle means no break is being timed.
	Idle State = iota
	// Running means a break is in progress.
	Running
)

var (
	// ErrAlreadyRunning is returned by Start while a break is in progress.
	ErrAlreadyRunning = errors.New("timer is already running")

	// ErrNotRunning is returned by Stop when no break is in progress.
	ErrNotRunning = errors.New("timer is not running")
)

// Clock abstracts time.Now so tests can drive the timer deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// Timer is a single logical session timer: IDLE -> RUNNING -> IDLE, no pause
// state. Stop freezes the final elapsed value so a failed submission can be
// retried with the same reading; Reset clears it explicitly after a
// successful submission.
//
// Timer is not safe for concurrent use. The session owns exactly one timer
// and drives it from a single event loop.
type Timer struct {
	clock Clock
	state State
	start time.Time

	// lastTick is the monotonic floor for the current run.
	lastTick int64

	// final is the frozen reading from the last Stop.
	final int64
}

func New(clock Clock) *Timer {
	if clock == nil {
		clock = SystemClock()
	}
	return &Timer{clock: clock}
}

// State returns the current timer state.
func (t *Timer) State() State {
	return t.state
}

// Start begins timing a new run. Valid only from Idle; a second Start while
// running is an error, never a restart.
func (t *Timer) Start() error {
	if t.state == Running {
		return ErrAlreadyRunning
	}

	t.start = t.clock.Now()
	t.lastTick = 0
	t.state = Running
	return nil
}

// Elapsed returns the whole seconds since Start while running, recomputed
// from the clock on every call; monotonic non-decreasing for a given run.
// While idle it returns the value frozen by the last Stop.
func (t *Timer) Elapsed() int64 {
	if t.state != Running {
		return t.final
	}

	seconds := int64(t.clock.Now().Sub(t.start) / time.Second)
	if seconds > t.lastTick {
		t.lastTick = seconds
	}
	return t.lastTick
}

// Stop ends timing and returns the final elapsed seconds. The value stays
// readable via Elapsed until Reset is called.
func (t *Timer) Stop() (int64, error) {
	if t.state != Running {
		return 0, ErrNotRunning
	}

	t.final = t.Elapsed()
	t.state = Idle
	return t.final, nil
}

// Reset clears the frozen elapsed value. Callers reset only after a
// successful submission. Resetting a running timer is not permitted.
func (t *Timer) Reset() error {
	if t.state == Running {
		return ErrAlreadyRunning
	}
	t.final = 0
	return nil
}
