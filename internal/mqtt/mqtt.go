// Package mqtt provides MQTT publishing with abstraction for testing.
package mqtt

import (
	"encoding/json"
	"time"

	"github.com/ayuss-kr/productivity-monitor/internal/logic"
)

// Topic is the MQTT topic for timer transition events.
const Topic = "productivity/monitor/events"

// TopicSystem is the MQTT topic for system lifecycle events.
const TopicSystem = "productivity/monitor/system"

// Publisher publishes events to MQTT.
type Publisher interface {
	// Publish sends a timer transition to the broker.
	// Returns error if publishing fails (should not crash the process).
	Publish(tr logic.Transition) error

	// PublishSystem sends a system lifecycle event to the broker.
	PublishSystem(event SystemEvent) error

	// Close disconnects from the broker.
	Close() error
}

// ConnectionStatus reports whether the MQTT connection is active.
type ConnectionStatus interface {
	IsConnected() bool
}

// SystemEvent represents a system lifecycle event (e.g., startup, shutdown, heartbeat).
type SystemEvent struct {
	Timestamp  time.Time
	Event      string // e.g., "STARTUP", "SHUTDOWN", "HEARTBEAT"
	Reason     string // e.g., "SIGTERM", "SIGINT" (shutdown only)
	RawPayload []byte // Pre-formatted JSON payload; if set, FormatSystemPayload returns it directly
	Retained   bool   // Whether the message should be retained by the broker
}

// Payload represents the MQTT message payload structure.
type Payload struct {
	Timer TimerPayload `json:"timer"`
}

// TimerPayload contains the transition details.
type TimerPayload struct {
	Timestamp      string  `json:"timestamp"`
	State          string  `json:"state"`
	Previous       string  `json:"previous"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

// FormatPayload creates the JSON payload for a timer transition.
func FormatPayload(tr logic.Transition) ([]byte, error) {
	payload := Payload{
		Timer: TimerPayload{
			Timestamp:      tr.Timestamp.UTC().Format(time.RFC3339),
			State:          string(tr.To),
			Previous:       string(tr.From),
			ElapsedSeconds: tr.Elapsed.Seconds(),
		},
	}
	return json.Marshal(payload)
}

// SystemPayload represents the MQTT message payload for system events.
type SystemPayload struct {
	System SystemPayloadInner `json:"system"`
}

// SystemPayloadInner contains the system event details.
type SystemPayloadInner struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Reason    string `json:"reason,omitempty"`
}

// FormatSystemPayload creates the JSON payload for a system event.
// If event.RawPayload is set, it is returned directly (used for full status snapshots).
func FormatSystemPayload(event SystemEvent) ([]byte, error) {
	if event.RawPayload != nil {
		return event.RawPayload, nil
	}

	payload := SystemPayload{
		System: SystemPayloadInner{
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Event:     event.Event,
			Reason:    event.Reason,
		},
	}
	return json.Marshal(payload)
}
