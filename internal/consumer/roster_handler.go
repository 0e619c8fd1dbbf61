package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"example.com/signup/internal/events"
)

// RosterHandler tails the roster event stream for auditing: each change is logged and
// counted per event type.
type RosterHandler struct {
	logger *log.Logger
}

// NewRosterHandler constructs a RosterHandler.
func NewRosterHandler(logger *log.Logger) *RosterHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &RosterHandler{logger: logger}
}

// Handle decodes the roster payload and records it.
func (h *RosterHandler) Handle(ctx context.Context, msg Message) error {
	var change events.RosterChanged
	if err := json.Unmarshal(msg.Payload, &change); err != nil {
		return fmt.Errorf("unmarshal roster event: %w", err)
	}

	switch msg.EventType {
	case events.TypeParticipantSignedUp:
		h.logger.Printf("signed up %s for %s (roster=%d)", change.Email, change.Activity, change.RosterSize)
	case events.TypeParticipantUnregistered:
		h.logger.Printf("unregistered %s from %s (roster=%d)", change.Email, change.Activity, change.RosterSize)
	default:
		return fmt.Errorf("unknown event type %q", msg.EventType)
	}

	recordRosterEvent(msg.EventType, change.Activity, change.RosterSize)
	return nil
}
