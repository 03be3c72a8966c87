package dto

import "time"

// EventResp is the stable API model for an event, participants included in
// registration order.
type EventResp struct {
	EventID     string `json:"event_id"`
	Name        string `json:"name"`
	Venue       string `json:"venue"`
	Organizer   string `json:"organizer"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Profile     string `json:"profile"`
	Cover       string `json:"cover"`

	Participants []ParticipantResp `json:"participants"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ParticipantResp struct {
	PassID        string    `json:"pass_id"`
	Name          string    `json:"name"`
	ContactNumber string    `json:"contactNumber"`
	Entry         bool      `json:"entry"`
	RegisteredAt  time.Time `json:"registered_at"`
}
