package logic

import (
	"sync"
	"time"
)

// Timer accumulates productive time from a stream of per-tick verdicts,
// forgiving lapses shorter than the grace period.
//
// The zero value is not usable; construct with NewTimer. All methods are
// safe for concurrent use: the tick loop calls Update while the status
// tracker and HTTP handlers read. The whole state tuple lives behind one
// mutex so a reader never observes a half-committed transition (a new
// state paired with a stale transition timestamp).
type Timer struct {
	mu sync.Mutex

	grace       time.Duration
	state       TimerState
	accumulated time.Duration
	// lastChange is the wall-clock instant of the most recent state change.
	lastChange time.Time
	// graceDeadline is meaningful only while state == StateGrace.
	graceDeadline time.Time
	counts        TransitionCounts
}

// NewTimer creates a timer in the Paused state with the given grace period.
func NewTimer(grace time.Duration, now time.Time) *Timer {
	return &Timer{
		grace:      grace,
		state:      StatePaused,
		lastChange: now,
	}
}

// Update advances the state machine one tick. It returns the transition if
// the verdict caused a state change, nil otherwise. Each call is evaluated
// independently against the state at call time; there is no batching.
func (t *Timer) Update(productive bool, now time.Time) *Transition {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.state {
	case StatePaused:
		if productive {
			return t.transition(StateRunning, now)
		}

	case StateRunning:
		if !productive {
			// Fold the finished run into the accumulator before the
			// grace clock starts, so Elapsed is continuous across the
			// boundary.
			t.accumulated += now.Sub(t.lastChange)
			t.graceDeadline = now.Add(t.grace)
			return t.transition(StateGrace, now)
		}

	case StateGrace:
		if productive {
			// The lapse is forgiven: nothing is added for the grace
			// window itself, and the next lapse clock starts here.
			return t.transition(StateRunning, now)
		}
		if now.After(t.graceDeadline) {
			return t.transition(StatePaused, now)
		}
	}

	return nil
}

// transition commits a state change. Caller must hold t.mu.
func (t *Timer) transition(to TimerState, now time.Time) *Transition {
	tr := &Transition{
		Timestamp: now,
		From:      t.state,
		To:        to,
		Elapsed:   t.accumulated,
	}
	t.state = to
	t.lastChange = now

	switch to {
	case StateRunning:
		t.counts.Running++
	case StateGrace:
		t.counts.Grace++
	case StatePaused:
		t.counts.Paused++
	}
	return tr
}

// State returns the current timer state.
func (t *Timer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Elapsed returns the total productive time as of now. While Running, the
// in-progress run is included live without being committed, so repeated
// calls without an Update never change stored state.
func (t *Timer) Elapsed(now time.Time) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateRunning {
		return t.accumulated + now.Sub(t.lastChange)
	}
	return t.accumulated
}

// RemainingGrace returns the whole seconds left before the grace period
// expires. It is 0 in every state except GracePeriod, and never negative.
func (t *Timer) RemainingGrace(now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateGrace {
		return 0
	}
	rem := t.graceDeadline.Sub(now)
	if rem < 0 {
		return 0
	}
	return int(rem / time.Second)
}

// Counts returns a snapshot of state-entry counts since construction.
func (t *Timer) Counts() TransitionCounts {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts
}

// GracePeriod returns the configured grace period duration.
func (t *Timer) GracePeriod() time.Duration {
	return t.grace
}
