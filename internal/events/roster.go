// Package events defines roster change payloads and their Kafka publisher.
package events

import "time"

// Event types carried in the event_type message header.
const (
	TypeParticipantSignedUp     = "roster.signed_up"
	TypeParticipantUnregistered = "roster.unregistered"
)

// RosterChanged is the message emitted for every accepted roster mutation.
type RosterChanged struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	RosterSize int       `json:"roster_size"`
	OccurredAt time.Time `json:"occurred_at"`
}
