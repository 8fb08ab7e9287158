package model

import "time"

// SimulationEvent is the audit-trail record emitted for training-platform
// activity. Indexed best-effort; never part of a request's outcome.
type SimulationEvent struct {
	Timestamp       time.Time `json:"timestamp"`
	EventType       string    `json:"event_type"`
	MicrolearningID string    `json:"microlearning_id,omitempty"`
	Language        string    `json:"language,omitempty"`
	MessageCount    int       `json:"message_count,omitempty"`
}
