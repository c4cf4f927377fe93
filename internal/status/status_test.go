package status

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ayuss-kr/productivity-monitor/internal/logic"
)

func testConfig() Config {
	return Config{
		PollMs:      1000,
		GraceMs:     15000,
		HeartbeatMs: 300000,
		FlushMs:     5000,
		Broker:      "tcp://127.0.0.1:1883",
		HTTPPort:    ":8090",
		FocusTopic:  "productivity/monitor/face",
		DBPath:      "./prodmon.db",
	}
}

func TestTrackerInitialSnapshot(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(7, start, testConfig())

	snap := tr.Snapshot()
	if snap.SessionID != 7 {
		t.Errorf("SessionID: got %d, want 7", snap.SessionID)
	}
	if snap.State != logic.StatePaused {
		t.Errorf("State: got %s, want PAUSED", snap.State)
	}
	if !snap.StartTime.Equal(start) {
		t.Errorf("StartTime: got %v", snap.StartTime)
	}
	if snap.Now.IsZero() {
		t.Error("Snapshot should stamp Now")
	}
}

func TestTrackerUpdate(t *testing.T) {
	tr := NewTracker(1, time.Now(), testConfig())

	tr.Update(logic.StateGrace, 42.5, 3, logic.ClassProductive, "main.go - Visual Studio Code",
		logic.TransitionCounts{Running: 2, Grace: 1})
	tr.SetMQTTConnected(true)

	snap := tr.Snapshot()
	if snap.State != logic.StateGrace {
		t.Errorf("State: got %s", snap.State)
	}
	if snap.ElapsedSeconds != 42.5 {
		t.Errorf("ElapsedSeconds: got %v", snap.ElapsedSeconds)
	}
	if snap.RemainingGrace != 3 {
		t.Errorf("RemainingGrace: got %d", snap.RemainingGrace)
	}
	if snap.Screen != logic.ClassProductive {
		t.Errorf("Screen: got %s", snap.Screen)
	}
	if !snap.MQTTConnected {
		t.Error("expected MQTTConnected")
	}
	if snap.Counts.Running != 2 || snap.Counts.Grace != 1 {
		t.Errorf("Counts: got %+v", snap.Counts)
	}
}

func TestFormatHMS(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00"},
		{59.9, "00:00:59"},
		{61, "00:01:01"},
		{3661, "01:01:01"},
		{36000, "10:00:00"},
	}
	for _, c := range cases {
		if got := FormatHMS(c.seconds); got != c.want {
			t.Errorf("FormatHMS(%v) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestFormatJSON(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(3, start, testConfig())
	tr.Update(logic.StateRunning, 125, 0, logic.ClassNeutral, "Documents",
		logic.TransitionCounts{Running: 1})

	data := FormatJSON(tr.Snapshot())

	var got StatusJSON
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("FormatJSON produced invalid JSON: %v", err)
	}
	if got.Status.SessionID != 3 {
		t.Errorf("session_id: got %d", got.Status.SessionID)
	}
	if got.Status.Timer.State != "RUNNING" {
		t.Errorf("timer.state: got %q", got.Status.Timer.State)
	}
	if got.Status.Timer.Elapsed != "00:02:05" {
		t.Errorf("timer.elapsed: got %q, want 00:02:05", got.Status.Timer.Elapsed)
	}
	if got.Status.Screen.Classification != "NEUTRAL" {
		t.Errorf("screen.classification: got %q", got.Status.Screen.Classification)
	}
	if got.Status.Event != "" {
		t.Errorf("web JSON must not carry an event, got %q", got.Status.Event)
	}
}

func TestFormatStatusEvent(t *testing.T) {
	tr := NewTracker(1, time.Now(), testConfig())
	data := FormatStatusEvent(tr.Snapshot(), "SHUTDOWN", "SIGTERM")

	var got StatusJSON
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Status.Event != "SHUTDOWN" || got.Status.Reason != "SIGTERM" {
		t.Errorf("event/reason: got %q/%q", got.Status.Event, got.Status.Reason)
	}
	// Empty state renders as UNKNOWN rather than an empty tag.
	tr2 := &Tracker{}
	data = FormatStatusEvent(tr2.Snapshot(), "STARTUP", "")
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Status.Timer.State != "UNKNOWN" {
		t.Errorf("expected UNKNOWN for empty state, got %q", got.Status.Timer.State)
	}
}
