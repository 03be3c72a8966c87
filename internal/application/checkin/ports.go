package checkin

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
	// MarkEntry sets entry=true for the participant and returns the updated
	// row. found=false means the pass id does not belong to the event; the
	// caller skips it. Re-marking an already-entered participant is a no-op
	// that still reports found=true.
	MarkEntry(ctx context.Context, eventID, passID string) (p *domain.Participant, found bool, err error)
}

type Cache interface {
	Delete(ctx context.Context, keys ...string) error
}

type Publisher interface {
	PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error
}

// Notification is the payload handed to the Notifier per checked-in
// participant. RegistrationRef is the pass id (the participant's only
// registration-number surrogate).
type Notification struct {
	Recipient       string
	Name            string
	RegistrationRef string
	ContactNumber   string
	EventName       string
}

// Notifier delivers a check-in confirmation. Fire-and-forget from this
// service's perspective: errors are logged, never retried, never propagated.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
