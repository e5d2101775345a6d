package service

import (
	"context"
	"time"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, interface{}) error { return nil }

// publishEvent logs broker failures instead of returning them: the write
// that triggered the event has already succeeded.
func publishEvent(ctx context.Context, events EventPublisher, event entity.DomainEvent) {
	if events == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := events.Publish(ctx, event); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"event_type": event.Type,
			"key":        event.MessageKey(),
		}).Error("Failed to publish event")
	}
}

func invalidate(ctx context.Context, snapshot SnapshotInvalidator) {
	if snapshot != nil {
		snapshot.Invalidate(ctx)
	}
}
