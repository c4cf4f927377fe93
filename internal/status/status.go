// Package status provides a thread-safe status tracker for the prodmon
// daemon. It is read by the HTTP status server and serialized into MQTT
// system events.
package status

import (
	"sync"
	"time"

	"github.com/ayuss-kr/productivity-monitor/internal/logic"
)

// Config contains daemon configuration for display.
type Config struct {
	PollMs      int64
	GraceMs     int64
	HeartbeatMs int64
	FlushMs     int64
	Broker      string
	HTTPPort    string
	FocusTopic  string
	DBPath      string
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	SessionID      int64
	State          logic.TimerState
	ElapsedSeconds float64
	RemainingGrace int
	Screen         logic.Classification
	ActiveTitle    string
	Counts         logic.TransitionCounts
	StartTime      time.Time
	Now            time.Time
	MQTTConnected  bool
	Config         Config
}

// Uptime returns the duration since the session was punched in.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker for the given session.
func NewTracker(sessionID int64, startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			SessionID: sessionID,
			State:     logic.StatePaused,
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets the timer view and the current screen classification.
// Called from runLoop on every tick.
func (t *Tracker) Update(state logic.TimerState, elapsedSeconds float64, remainingGrace int,
	screen logic.Classification, title string, counts logic.TransitionCounts) {
	t.mu.Lock()
	t.snap.State = state
	t.snap.ElapsedSeconds = elapsedSeconds
	t.snap.RemainingGrace = remainingGrace
	t.snap.Screen = screen
	t.snap.ActiveTitle = title
	t.snap.Counts = counts
	t.mu.Unlock()
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
