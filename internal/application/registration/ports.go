package registration

import (
	"context"
	"time"

	"github.com/invite-labs/event-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type EventRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// AddParticipant appends p to the event's participant sequence as a
	// single conditional write: the storage layer must reject a second
	// participant with the same contact number atomically and return
	// domain.ErrAlreadyRegistered.
	AddParticipant(ctx context.Context, eventID string, p *domain.Participant) error
}

type Cache interface {
	Delete(ctx context.Context, keys ...string) error
}

type Publisher interface {
	PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error
}
