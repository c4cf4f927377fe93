// Package logic contains the pure decision core of the productivity monitor:
// the signal fusion rule and the grace-period timer state machine.
// This package has NO external dependencies (no input hooks, camera, MQTT,
// or time.Sleep). Time is always injectable via time.Time parameters.
package logic

import "time"

// Classification is the productivity category of the active window,
// produced by the window-title classifier.
type Classification string

const (
	ClassProductive   Classification = "PRODUCTIVE"
	ClassUnproductive Classification = "UNPRODUCTIVE"
	ClassNeutral      Classification = "NEUTRAL"
)

// TimerState represents the state of the productivity timer.
type TimerState string

const (
	StateRunning TimerState = "RUNNING"
	StatePaused  TimerState = "PAUSED"
	StateGrace   TimerState = "GRACE_PERIOD"
)

// Signals is one tick's worth of sensor input.
type Signals struct {
	// Activity is true if any keyboard or mouse input occurred since the
	// previous poll (consume-and-clear at the source).
	Activity bool
	// Screen is the classification of the active window title.
	Screen Classification
	// Focused is true if a present user's head pose faces the screen.
	Focused bool
}

// Transition records a timer state change to be published.
type Transition struct {
	Timestamp time.Time
	From      TimerState
	To        TimerState
	// Elapsed is the committed productive time at the instant of the
	// transition (the finished run, if any, already folded in).
	Elapsed time.Duration
}

// TransitionCounts tracks the number of entries into each state since the
// timer was created.
type TransitionCounts struct {
	Running int
	Grace   int
	Paused  int
}
