package registration

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/invite-labs/event-service/internal/contracts"
	"github.com/invite-labs/event-service/internal/domain"
	"github.com/invite-labs/event-service/internal/pkg/cachekeys"
	appctx "github.com/invite-labs/event-service/internal/pkg/context"
)

type Service struct {
	repo  EventRepo
	cache Cache // nil disables invalidation
	pub   Publisher
	clock Clock
}

func New(repo EventRepo, cache Cache, pub Publisher, clock Clock) *Service {
	return &Service{repo: repo, cache: cache, pub: pub, clock: clock}
}

// Register validates the request, enforces one-registration-per-contact for
// the event and returns the fresh pass id for receipt display. Callers may
// pre-validate but this is the authoritative check.
func (s *Service) Register(ctx context.Context, eventID, name, contactNumber string) (*domain.Participant, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, domain.ErrValidationMeta("invalid registration", map[string]string{"event_id": "required"})
	}

	p, err := domain.NewParticipant(name, contactNumber, s.clock.Now())
	if err != nil {
		return nil, err
	}

	ev, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	// Fast path: duplicate visible in the loaded aggregate. The unique
	// constraint behind AddParticipant closes the race two concurrent
	// registrations would otherwise win together.
	if ev.HasContact(p.ContactNumber) {
		return nil, domain.ErrAlreadyRegistered()
	}

	if err := s.repo.AddParticipant(ctx, eventID, p); err != nil {
		return nil, err
	}

	if s.cache != nil {
		key := cachekeys.EventDetails(eventID)
		if err := s.cache.Delete(ctx, key); err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache invalidate failed")
		}
	}

	s.publish(ctx, contracts.RouteParticipantRegistered, contracts.ParticipantRegisteredPayload{
		EventID:       eventID,
		PassID:        p.PassID,
		Name:          p.Name,
		ContactNumber: p.ContactNumber,
	})

	return p, nil
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
