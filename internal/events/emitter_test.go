package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingHandler struct {
	events []*Event
	err    error
}

func (h *recordingHandler) HandleEvent(_ context.Context, event *Event) error {
	h.events = append(h.events, event)
	return h.err
}

func TestNewEvent(t *testing.T) {
	payload := UserRegisteredPayload{
		UserID:   uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
	}

	event, err := NewEvent(TypeUserRegistered, payload)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, TypeUserRegistered, event.Type)
	assert.False(t, event.CreatedAt.IsZero())

	var decoded UserRegisteredPayload
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, payload, decoded)
}

func TestEmitEventNoHandlers(t *testing.T) {
	emitter := NewInMemoryEventEmitter(discardLogger())

	event, err := NewEvent(TypeUserRegistered, UserRegisteredPayload{Username: "alice"})
	require.NoError(t, err)

	assert.NoError(t, emitter.EmitEvent(context.Background(), event))
}

func TestEmitEventDeliversToAllHandlers(t *testing.T) {
	emitter := NewInMemoryEventEmitter(discardLogger())
	first := &recordingHandler{}
	second := &recordingHandler{}
	emitter.RegisterHandler(first)
	emitter.RegisterHandler(second)

	event, err := NewEvent(TypeUserRegistered, UserRegisteredPayload{Username: "alice"})
	require.NoError(t, err)

	require.NoError(t, emitter.EmitEvent(context.Background(), event))
	require.Len(t, first.events, 1)
	require.Len(t, second.events, 1)
	assert.Equal(t, event.ID, first.events[0].ID)
}

func TestEmitEventReturnsFirstHandlerError(t *testing.T) {
	emitter := NewInMemoryEventEmitter(discardLogger())
	handlerErr := errors.New("delivery failed")
	failing := &recordingHandler{err: handlerErr}
	trailing := &recordingHandler{}
	emitter.RegisterHandler(failing)
	emitter.RegisterHandler(trailing)

	event, err := NewEvent(TypeUserRegistered, UserRegisteredPayload{Username: "alice"})
	require.NoError(t, err)

	err = emitter.EmitEvent(context.Background(), event)
	assert.ErrorIs(t, err, handlerErr)
	assert.Len(t, trailing.events, 1, "later handlers still run")
}
