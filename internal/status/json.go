package status

import (
	"encoding/json"
	"fmt"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event          string     `json:"event,omitempty"`
	Reason         string     `json:"reason,omitempty"`
	SessionID      int64      `json:"session_id"`
	Timer          TimerJSON  `json:"timer"`
	Screen         ScreenJSON `json:"screen"`
	UptimeSeconds  int64      `json:"uptime_seconds"`
	StartTime      string     `json:"start_time"`
	Timestamp      string     `json:"timestamp"`
	MQTT           MQTTStatus `json:"mqtt"`
	Counts         CountsJSON `json:"transition_counts"`
	Config         ConfigJSON `json:"config"`
}

// TimerJSON is the JSON representation of the productivity timer.
type TimerJSON struct {
	State             string  `json:"state"`
	ElapsedSeconds    float64 `json:"elapsed_seconds"`
	Elapsed           string  `json:"elapsed"` // HH:MM:SS
	RemainingGraceSec int     `json:"remaining_grace_seconds"`
}

// ScreenJSON is the JSON representation of the active-window classification.
type ScreenJSON struct {
	Classification string `json:"classification"`
	ActiveTitle    string `json:"active_title,omitempty"`
}

// MQTTStatus reports MQTT connection state.
type MQTTStatus struct {
	Connected bool   `json:"connected"`
	Broker    string `json:"broker"`
}

// CountsJSON is the JSON representation of state-entry counts.
type CountsJSON struct {
	Running int `json:"running"`
	Grace   int `json:"grace"`
	Paused  int `json:"paused"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	PollMs      int64  `json:"poll_ms"`
	GraceMs     int64  `json:"grace_ms"`
	HeartbeatMs int64  `json:"heartbeat_ms"`
	FlushMs     int64  `json:"flush_ms"`
	Broker      string `json:"broker"`
	HTTPPort    string `json:"http_port"`
	FocusTopic  string `json:"focus_topic"`
	DBPath      string `json:"db_path"`
}

// FormatHMS renders whole seconds as HH:MM:SS.
func FormatHMS(totalSeconds float64) string {
	s := int64(totalSeconds)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

func buildInner(snap Snapshot) StatusInner {
	state := string(snap.State)
	if state == "" {
		state = "UNKNOWN"
	}
	class := string(snap.Screen)
	if class == "" {
		class = "NEUTRAL"
	}

	return StatusInner{
		SessionID: snap.SessionID,
		Timer: TimerJSON{
			State:             state,
			ElapsedSeconds:    snap.ElapsedSeconds,
			Elapsed:           FormatHMS(snap.ElapsedSeconds),
			RemainingGraceSec: snap.RemainingGrace,
		},
		Screen: ScreenJSON{
			Classification: class,
			ActiveTitle:    snap.ActiveTitle,
		},
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		MQTT:          MQTTStatus{Connected: snap.MQTTConnected, Broker: snap.Config.Broker},
		Counts: CountsJSON{
			Running: snap.Counts.Running,
			Grace:   snap.Counts.Grace,
			Paused:  snap.Counts.Paused,
		},
		Config: ConfigJSON{
			PollMs:      snap.Config.PollMs,
			GraceMs:     snap.Config.GraceMs,
			HeartbeatMs: snap.Config.HeartbeatMs,
			FlushMs:     snap.Config.FlushMs,
			Broker:      snap.Config.Broker,
			HTTPPort:    snap.Config.HTTPPort,
			FocusTopic:  snap.Config.FocusTopic,
			DBPath:      snap.Config.DBPath,
		},
	}
}

// FormatJSON returns the JSON status for the web endpoint (no event/reason).
func FormatJSON(snap Snapshot) []byte {
	inner := buildInner(snap)
	data, _ := json.MarshalIndent(StatusJSON{Status: inner}, "", "  ")
	return data
}

// FormatStatusEvent returns the JSON status for an MQTT system event.
func FormatStatusEvent(snap Snapshot, event, reason string) []byte {
	inner := buildInner(snap)
	inner.Event = event
	inner.Reason = reason
	data, _ := json.Marshal(StatusJSON{Status: inner})
	return data
}
