package catalog

import (
	"context"
	"strings"

	zlog "github.com/rs/zerolog/log"

	"github.com/invite-labs/event-service/internal/contracts"
	"github.com/invite-labs/event-service/internal/domain"
)

type CreateCmd struct {
	AdminID     string
	Name        string
	Venue       string
	Organizer   string
	Date        string
	Time        string
	Description string
	Profile     string
	Cover       string
}

func (s *Service) Create(ctx context.Context, cmd CreateCmd) (*domain.Event, error) {
	if strings.TrimSpace(cmd.AdminID) == "" {
		return nil, domain.ErrValidationMeta("invalid event", map[string]string{"admin_id": "required"})
	}

	now := s.clock.Now()
	e, err := domain.NewEvent(cmd.Name, cmd.Venue, cmd.Organizer, cmd.Date, cmd.Time, cmd.Description, cmd.Profile, cmd.Cover, now)
	if err != nil {
		return nil, err
	}

	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}

	// Denormalized copy on the admin record. A read optimization only; the
	// events table stays authoritative, so a failure here is logged and the
	// create still succeeds.
	if err := s.admins.AppendEventSummary(ctx, cmd.AdminID, e.Summary()); err != nil {
		zlog.Warn().Err(err).
			Str("event_id", e.ID).
			Str("admin_id", cmd.AdminID).
			Msg("admin events list append failed")
	}

	s.publish(ctx, contracts.RouteEventCreated, contracts.EventCreatedPayload{
		EventID:   e.ID,
		AdminID:   cmd.AdminID,
		Name:      e.Name,
		Venue:     e.Venue,
		Organizer: e.Organizer,
		Date:      e.Date,
		Time:      e.Time,
	})

	return e, nil
}
