package events

import (
	"context"

	"go.uber.org/zap"
)

// RegisterAuditLog subscribes a logging handler to every user lifecycle
// event so record mutations leave a trail.
func RegisterAuditLog(dispatcher Dispatcher, logger *zap.Logger) {
	handler := func(_ context.Context, event Event) error {
		logger.Info("user event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Int64("user_id", event.UserID),
		)
		return nil
	}

	for _, eventType := range []EventType{EventUserCreated, EventUserUpdated, EventUserDeleted} {
		dispatcher.Subscribe(eventType, handler)
	}
}
