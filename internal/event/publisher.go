// Package event provides domain event publishing.
//
// Only the logging publisher is implemented. When a real broker is needed,
// add a new file implementing Publisher and wire it up in main based on
// configuration; the service layer does not change.
package event

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event types emitted by the services.
const (
	TypeUserRegistered = "user.registered"
	TypeProductCreated = "product.created"
	TypeProductUpdated = "product.updated"
	TypeProductDeleted = "product.deleted"
)

// Event is a record of something that happened to an aggregate.
type Event struct {
	ID         uuid.UUID
	Type       string
	Subject    string
	OccurredAt time.Time
}

// New builds an event for the given type and subject (the aggregate's
// identifying field: username or product id).
func New(eventType, subject string) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
	}
}

// Publisher sends domain events somewhere. Publishing is fire-and-forget from
// the services' point of view: a failed publish never changes a request
// outcome.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// LoggingPublisher implements Publisher by logging events.
type LoggingPublisher struct {
	logger *zap.Logger
}

func NewLoggingPublisher(logger *zap.Logger) *LoggingPublisher {
	return &LoggingPublisher{logger: logger}
}

func (p *LoggingPublisher) Publish(_ context.Context, event Event) {
	p.logger.Info("event published",
		zap.String("event_id", event.ID.String()),
		zap.String("event_type", event.Type),
		zap.String("subject", event.Subject),
		zap.Time("occurred_at", event.OccurredAt),
	)
}

// NoopPublisher is a no-op implementation for when event publishing is
// disabled.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) Publish(context.Context, Event) {}
