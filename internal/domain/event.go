package domain

import (
	"strings"
	"time"
)

// Image URLs applied when the organizer uploads nothing. Carried over from
// the web client's placeholder assets.
const (
	DefaultProfileImage = "https://i.etsystatic.com/15907303/r/il/c8acad/1940223106/il_794xN.1940223106_9tfg.jpg"
	DefaultCoverImage   = "https://eventplanning24x7.files.wordpress.com/2018/04/events.png"
)

// Event is the aggregate both registration and check-in mutate. Date and
// Time are display-formatted strings supplied by the caller and treated as
// opaque here (no timezone, no ordering semantics).
type Event struct {
	ID          string
	Name        string
	Venue       string
	Organizer   string
	Date        string
	Time        string
	Description string
	Price       int // catalog only supports free events; always 0
	Profile     string
	Cover       string

	// Participants in registration order.
	Participants []Participant

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewEvent(name, venue, organizer, date, eventTime, description, profile, cover string, now time.Time) (*Event, error) {
	name = strings.TrimSpace(name)
	venue = strings.TrimSpace(venue)
	organizer = strings.TrimSpace(organizer)
	date = strings.TrimSpace(date)
	eventTime = strings.TrimSpace(eventTime)

	meta := map[string]string{}
	if name == "" {
		meta["name"] = "required"
	}
	if venue == "" {
		meta["venue"] = "required"
	}
	if organizer == "" {
		meta["organizer"] = "required"
	}
	if date == "" {
		meta["date"] = "required"
	}
	if eventTime == "" {
		meta["time"] = "required"
	}
	if len(meta) > 0 {
		return nil, ErrValidationMeta("invalid event", meta)
	}

	if strings.TrimSpace(profile) == "" {
		profile = DefaultProfileImage
	}
	if strings.TrimSpace(cover) == "" {
		cover = DefaultCoverImage
	}

	return &Event{
		ID:          NewToken(),
		Name:        name,
		Venue:       venue,
		Organizer:   organizer,
		Date:        date,
		Time:        eventTime,
		Description: strings.TrimSpace(description),
		Price:       0,
		Profile:     profile,
		Cover:       cover,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}, nil
}

// HasContact reports whether a participant with this contact number already
// exists. Exact string match; the storage layer enforces the same rule with a
// unique constraint so concurrent registrations cannot both pass.
func (e *Event) HasContact(contactNumber string) bool {
	for i := range e.Participants {
		if e.Participants[i].ContactNumber == contactNumber {
			return true
		}
	}
	return false
}

// FindParticipant returns the participant with the given pass id, or nil.
func (e *Event) FindParticipant(passID string) *Participant {
	for i := range e.Participants {
		if e.Participants[i].PassID == passID {
			return &e.Participants[i]
		}
	}
	return nil
}

// Summary is the denormalized copy pushed onto an admin's events-created
// list. A read optimization, never the source of truth.
func (e *Event) Summary() EventSummary {
	return EventSummary{
		EventID:   e.ID,
		Name:      e.Name,
		Venue:     e.Venue,
		Date:      e.Date,
		Time:      e.Time,
		Price:     e.Price,
		Profile:   e.Profile,
		Cover:     e.Cover,
		Organizer: e.Organizer,
	}
}
