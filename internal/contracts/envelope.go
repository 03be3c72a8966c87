package contracts

import "time"

const (
	EventVersion  = 1
	EventProducer = "event-service"
)

// Routing keys emitted by this service.
const (
	RouteEventCreated          = "event.created"
	RouteEventDeleted          = "event.deleted"
	RouteParticipantRegistered = "participant.registered"
	RouteParticipantCheckedIn  = "participant.checked_in"
)

// Envelope is the stable contract for all domain events emitted by this
// service. Consumers should rely on version/producer/message_id/occurred_at
// plus the payload; trace_id is optional.
type Envelope[T any] struct {
	Version    int       `json:"version"`
	Producer   string    `json:"producer"`
	MessageID  string    `json:"message_id"`
	TraceID    string    `json:"trace_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    T         `json:"payload"`
}

// EventCreatedPayload rides routing key event.created.
type EventCreatedPayload struct {
	EventID   string `json:"event_id"`
	AdminID   string `json:"admin_id"`
	Name      string `json:"name"`
	Venue     string `json:"venue"`
	Organizer string `json:"organizer"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// EventDeletedPayload rides routing key event.deleted.
type EventDeletedPayload struct {
	EventID string `json:"event_id"`
	AdminID string `json:"admin_id"`
}

// ParticipantRegisteredPayload rides routing key participant.registered.
type ParticipantRegisteredPayload struct {
	EventID       string `json:"event_id"`
	PassID        string `json:"pass_id"`
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
}

// ParticipantCheckedInPayload rides routing key participant.checked_in.
// One message per check-in batch; PassIDs lists the ids actually flipped.
type ParticipantCheckedInPayload struct {
	EventID string   `json:"event_id"`
	PassIDs []string `json:"pass_ids"`
}
