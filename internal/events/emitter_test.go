package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	events []*Event
	err    error
}

func (h *recordingHandler) HandleEvent(ctx context.Context, event *Event) error {
	h.events = append(h.events, event)
	return h.err
}

func TestNewEventSerializesPayload(t *testing.T) {
	t.Parallel()

	event, err := NewEvent(EventReviewRecorded, map[string]string{"itemId": "item_0a1b2c3d"})
	require.NoError(t, err)

	assert.Equal(t, EventReviewRecorded, event.Type)
	assert.NotEqual(t, event.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.False(t, event.CreatedAt.IsZero())

	var payload map[string]string
	require.NoError(t, event.UnmarshalPayload(&payload))
	assert.Equal(t, "item_0a1b2c3d", payload["itemId"])
}

func TestEmitDispatchesToAllHandlers(t *testing.T) {
	t.Parallel()

	emitter := NewInMemoryEmitter(nil)
	first := &recordingHandler{}
	second := &recordingHandler{}
	emitter.RegisterHandler(first)
	emitter.RegisterHandler(second)

	event, err := NewEvent(EventPromptUpdated, map[string]int{"length": 42})
	require.NoError(t, err)
	require.NoError(t, emitter.Emit(context.Background(), event))

	require.Len(t, first.events, 1)
	require.Len(t, second.events, 1)
	assert.Equal(t, event.ID, first.events[0].ID)
}

func TestEmitContinuesPastFailingHandler(t *testing.T) {
	t.Parallel()

	emitter := NewInMemoryEmitter(nil)
	failing := &recordingHandler{err: errors.New("sink unavailable")}
	healthy := &recordingHandler{}
	emitter.RegisterHandler(failing)
	emitter.RegisterHandler(healthy)

	event, err := NewEvent(EventBatchRequested, map[string]int{"count": 3})
	require.NoError(t, err)

	emitErr := emitter.Emit(context.Background(), event)

	assert.Error(t, emitErr)
	assert.Len(t, healthy.events, 1, "later handlers must still receive the event")
}

func TestEmitWithoutHandlers(t *testing.T) {
	t.Parallel()

	emitter := NewInMemoryEmitter(nil)

	event, err := NewEvent(EventReviewRecorded, nil)
	require.NoError(t, err)

	assert.NoError(t, emitter.Emit(context.Background(), event))
}
