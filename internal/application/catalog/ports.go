package catalog

import (
	"context"
	"time"

	"github.com/invite-labs/event-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	// Delete removes the event and its participants. Deleting an absent
	// event is a no-op, not an error.
	Delete(ctx context.Context, id string) error
}

// AdminRepo maintains the denormalized events-created list on the admin
// record. Both methods are best-effort from the caller's perspective.
type AdminRepo interface {
	AppendEventSummary(ctx context.Context, adminID string, s domain.EventSummary) error
	RemoveEventSummary(ctx context.Context, adminID, eventID string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type Publisher interface {
	PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error
}
