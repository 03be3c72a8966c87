package domain

import (
	"strings"
	"time"
)

const (
	contactNumberMin = 10
	contactNumberMax = 15
)

// Participant is embedded in an Event, never a standalone aggregate. PassID
// doubles as the external reference printed on the pass and the internal
// correlation key for check-in.
type Participant struct {
	PassID        string
	Name          string
	ContactNumber string
	Entry         bool
	RegisteredAt  time.Time
}

func NewParticipant(name, contactNumber string, now time.Time) (*Participant, error) {
	name = strings.TrimSpace(name)
	contactNumber = strings.TrimSpace(contactNumber)

	meta := map[string]string{}
	if name == "" {
		meta["name"] = "required"
	}
	switch {
	case contactNumber == "":
		meta["contactNumber"] = "required"
	case !isDigits(contactNumber):
		meta["contactNumber"] = "must contain digits only"
	case len(contactNumber) < contactNumberMin || len(contactNumber) > contactNumberMax:
		meta["contactNumber"] = "must be 10-15 digits"
	}
	if len(meta) > 0 {
		return nil, ErrValidationMeta("invalid participant", meta)
	}

	return &Participant{
		PassID:        NewToken(),
		Name:          name,
		ContactNumber: contactNumber,
		Entry:         false,
		RegisteredAt:  now.UTC(),
	}, nil
}

// MarkEntry flips the gate flag. Entry is monotonic: once true it stays true,
// so calling this twice is a no-op, not an error.
func (p *Participant) MarkEntry() {
	p.Entry = true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
