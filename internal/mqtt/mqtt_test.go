package mqtt

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ayuss-kr/productivity-monitor/internal/logic"
)

func TestFormatPayload(t *testing.T) {
	tr := logic.Transition{
		Timestamp: time.Date(2026, 1, 1, 12, 0, 10, 0, time.UTC),
		From:      logic.StateRunning,
		To:        logic.StateGrace,
		Elapsed:   10 * time.Second,
	}

	data, err := FormatPayload(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got Payload
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}

	if got.Timer.Timestamp != "2026-01-01T12:00:10Z" {
		t.Errorf("timestamp: got %q", got.Timer.Timestamp)
	}
	if got.Timer.State != "GRACE_PERIOD" {
		t.Errorf("state: got %q, want GRACE_PERIOD", got.Timer.State)
	}
	if got.Timer.Previous != "RUNNING" {
		t.Errorf("previous: got %q, want RUNNING", got.Timer.Previous)
	}
	if got.Timer.ElapsedSeconds != 10 {
		t.Errorf("elapsed_seconds: got %v, want 10", got.Timer.ElapsedSeconds)
	}
}

func TestFormatSystemPayload(t *testing.T) {
	event := SystemEvent{
		Timestamp: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
		Event:     "SHUTDOWN",
		Reason:    "SIGTERM",
	}

	data, err := FormatSystemPayload(event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got SystemPayload
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if got.System.Event != "SHUTDOWN" {
		t.Errorf("event: got %q", got.System.Event)
	}
	if got.System.Reason != "SIGTERM" {
		t.Errorf("reason: got %q", got.System.Reason)
	}
}

func TestFormatSystemPayloadRawPassthrough(t *testing.T) {
	raw := []byte(`{"status":{"event":"HEARTBEAT"}}`)
	data, err := FormatSystemPayload(SystemEvent{Event: "HEARTBEAT", RawPayload: raw})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != string(raw) {
		t.Errorf("expected raw payload passthrough, got %s", data)
	}
}

func TestFakePublisherRecords(t *testing.T) {
	f := NewFakePublisher()

	tr := logic.Transition{
		Timestamp: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
		From:      logic.StatePaused,
		To:        logic.StateRunning,
	}
	if err := f.Publish(tr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.PublishSystem(SystemEvent{Event: "STARTUP"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.Transitions) != 1 || f.Transitions[0].To != logic.StateRunning {
		t.Errorf("transitions not recorded: %+v", f.Transitions)
	}
	if len(f.Payloads) != 1 || len(f.SystemPayloads) != 1 {
		t.Errorf("payloads not recorded: %d/%d", len(f.Payloads), len(f.SystemPayloads))
	}

	f.Reset()
	if len(f.Transitions) != 0 || len(f.SystemEvents) != 0 {
		t.Error("Reset did not clear recorded events")
	}
}
