// Package events provides an in-process audit event stream for the content
// pipeline. Services publish events for operator-visible actions (review
// decisions, prompt changes) without knowing who consumes them; handlers
// subscribe for audit logging or future export.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types published by the pipeline.
const (
	// EventReviewRecorded is published after a moderation decision is
	// persisted.
	EventReviewRecorded = "review_recorded"

	// EventPromptUpdated is published after the generation prompt template
	// is replaced.
	EventPromptUpdated = "prompt_updated"

	// EventBatchRequested is published when a generation batch is
	// dispatched to the work queue.
	EventBatchRequested = "batch_requested"
)

// Event is a single audit record. The payload is event-type specific and
// serialized as JSON so handlers can stay decoupled from publisher types.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *Event) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEvent creates an Event of the given type with a JSON-serialized payload.
func NewEvent(eventType string, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Handler processes published events.
type Handler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *Event) error
}

// Emitter publishes events to registered handlers.
type Emitter interface {
	// Emit publishes the given event to all registered handlers.
	Emit(ctx context.Context, event *Event) error
}
