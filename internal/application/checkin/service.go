package checkin

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/invite-labs/event-service/internal/contracts"
	"github.com/invite-labs/event-service/internal/domain"
	"github.com/invite-labs/event-service/internal/pkg/cachekeys"
	appctx "github.com/invite-labs/event-service/internal/pkg/context"
)

type Service struct {
	repo     EventRepo
	notifier Notifier
	cache    Cache // nil disables invalidation
	pub      Publisher
	clock    Clock

	notifyTimeout time.Duration
}

func New(repo EventRepo, notifier Notifier, cache Cache, pub Publisher, clock Clock, notifyTimeout time.Duration) *Service {
	if notifyTimeout == 0 {
		notifyTimeout = 10 * time.Second
	}
	return &Service{
		repo:          repo,
		notifier:      notifier,
		cache:         cache,
		pub:           pub,
		clock:         clock,
		notifyTimeout: notifyTimeout,
	}
}

// CheckIn marks the listed participants present, best-effort per id: known
// ids are updated, unknown ids are skipped, and the batch as a whole
// succeeds once every update has been attempted. One confirmation is
// dispatched per participant found, off the request path.
func (s *Service) CheckIn(ctx context.Context, eventID string, passIDs []string) error {
	if strings.TrimSpace(eventID) == "" {
		return domain.ErrValidationMeta("invalid check-in", map[string]string{"event_id": "required"})
	}

	ev, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	var checked []*domain.Participant
	seen := make(map[string]struct{}, len(passIDs))
	for _, id := range passIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		p, found, err := s.repo.MarkEntry(ctx, eventID, id)
		if err != nil {
			// One broken update does not abort the batch; the remaining ids
			// still get their attempt.
			zlog.Error().Err(err).
				Str("event_id", eventID).
				Str("pass_id", id).
				Msg("entry update failed")
			continue
		}
		if !found {
			zlog.Debug().
				Str("event_id", eventID).
				Str("pass_id", id).
				Msg("unknown pass id skipped")
			continue
		}
		checked = append(checked, p)
	}

	if len(checked) > 0 {
		go s.notifyChecked(ev.Name, checked)

		ids := make([]string, 0, len(checked))
		for _, p := range checked {
			ids = append(ids, p.PassID)
		}
		s.publish(ctx, contracts.RouteParticipantCheckedIn, contracts.ParticipantCheckedInPayload{
			EventID: eventID,
			PassIDs: ids,
		})

		if s.cache != nil {
			key := cachekeys.EventDetails(eventID)
			if err := s.cache.Delete(ctx, key); err != nil {
				zlog.Warn().Err(err).Str("key", key).Msg("cache invalidate failed")
			}
		}
	}

	return nil
}

// notifyChecked runs detached from the request. Each send gets its own
// timeout; failures are logged and swallowed.
func (s *Service) notifyChecked(eventName string, checked []*domain.Participant) {
	for _, p := range checked {
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		err := s.notifier.Notify(ctx, Notification{
			Recipient:       p.ContactNumber,
			Name:            p.Name,
			RegistrationRef: p.PassID,
			ContactNumber:   p.ContactNumber,
			EventName:       eventName,
		})
		cancel()
		if err != nil {
			zlog.Warn().Err(err).
				Str("pass_id", p.PassID).
				Str("event", eventName).
				Msg("check-in notification failed")
			continue
		}
		zlog.Info().
			Str("pass_id", p.PassID).
			Str("event", eventName).
			Msg("check-in notification sent")
	}
}

func (s *Service) publish(ctx context.Context, routingKey string, payload any) {
	messageID := uuid.NewString()
	env := contracts.Envelope[any]{
		Version:    contracts.EventVersion,
		Producer:   contracts.EventProducer,
		MessageID:  messageID,
		TraceID:    appctx.RequestID(ctx),
		OccurredAt: s.clock.Now().UTC(),
		Payload:    payload,
	}
	body, err := json.Marshal(env)
	if err != nil {
		zlog.Error().Err(err).Str("routing_key", routingKey).Msg("envelope marshal failed")
		return
	}
	if err := s.pub.PublishEvent(ctx, routingKey, messageID, body); err != nil {
		zlog.Warn().Err(err).Str("routing_key", routingKey).Msg("publish failed")
	}
}
