package domain

import "time"

// Admin is the organizer account that owns events. Authentication lives in
// an outer layer; this service only needs the identity and the denormalized
// events-created list.
type Admin struct {
	AdminID   string
	Email     string
	Name      string
	Pass      string
	CreatedAt time.Time
}

// EventSummary is the denormalized event copy on an admin's list.
type EventSummary struct {
	EventID   string
	Name      string
	Venue     string
	Date      string
	Time      string
	Price     int
	Profile   string
	Cover     string
	Organizer string
}
