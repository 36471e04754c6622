package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls []string
	d.Subscribe(EventUserCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "first:"+string(e.Type))
		return nil
	})
	d.Subscribe(EventUserCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "second:"+string(e.Type))
		return nil
	})

	err := d.Publish(context.Background(), NewEvent(EventUserCreated, 7, nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"first:user_created", "second:user_created"}, calls)
}

func TestDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var reached bool
	d.Subscribe(EventUserDeleted, func(context.Context, Event) error {
		return errors.New("observer failed")
	})
	d.Subscribe(EventUserDeleted, func(context.Context, Event) error {
		reached = true
		return nil
	})

	err := d.Publish(context.Background(), NewEvent(EventUserDeleted, 1, nil))
	require.NoError(t, err)
	assert.True(t, reached)
}

func TestDispatcher_PublishWithoutSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), NewEvent(EventUserUpdated, 3, nil)))
}

func TestNewEvent_StampsIDAndTimestamp(t *testing.T) {
	e := NewEvent(EventUserCreated, 42, UserChangedPayload{Name: "Ann", Email: "a@b.com"})

	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Timestamp.IsZero())
	assert.Equal(t, int64(42), e.UserID)
	assert.Equal(t, EventUserCreated, e.Type)
}
