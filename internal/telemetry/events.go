// Package telemetry defines the typed event structs that flow over the
// WebSocket connection between meshfreqd and its clients. These types serve
// as documentation for the event schema; handlers also attach them to the
// MQTT publisher payloads so both transports stay in sync.
package telemetry

import (
	"time"

	"github.com/large-farva/meshfreq/internal/freqslot"
)

// EventType identifies the kind of WebSocket event.
type EventType string

const (
	EventHeartbeat  EventType = "heartbeat"
	EventState      EventType = "state"
	EventLog        EventType = "log"
	EventResolution EventType = "resolution"
)

// Event is the base envelope shared by every event type.
type Event struct {
	Type EventType `json:"type"`
	TS   string    `json:"ts"`
}

// NowTS returns the current UTC time as an RFC 3339 nano string, matching
// the timestamp format used across all events.
func NowTS() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// Heartbeat is sent periodically so clients can detect connectivity and
// monitor daemon uptime.
type Heartbeat struct {
	Event
	State         string `json:"state"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Resolutions   uint64 `json:"resolutions"`
}

// StateTransition is emitted whenever the daemon moves between operating
// states (e.g. BOOTING -> SERVING).
type StateTransition struct {
	Event
	From string `json:"from"`
	To   string `json:"to"`
}

// LogLine carries a human-readable log message at a severity level.
type LogLine struct {
	Event
	Level     string `json:"level"`
	Message   string `json:"message"`
	Component string `json:"component,omitempty"`
}

// Resolution announces one completed channel-to-frequency resolution,
// including its origin so dashboards can tell API traffic from the demo
// rotation.
type Resolution struct {
	Event
	Source string          `json:"source"` // "api", "demo", or "mqtt"
	Result freqslot.Result `json:"result"`
}
