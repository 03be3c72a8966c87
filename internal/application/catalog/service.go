package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/invite-labs/event-service/internal/contracts"
	appctx "github.com/invite-labs/event-service/internal/pkg/context"
)

type Service struct {
	events EventRepo
	admins AdminRepo
	cache  Cache // nil disables caching
	pub    Publisher
	clock  Clock

	ttlDetails time.Duration
}

func New(events EventRepo, admins AdminRepo, cache Cache, pub Publisher, clock Clock, ttlDetails time.Duration) *Service {
	if ttlDetails == 0 {
		ttlDetails = 5 * time.Minute
	}
	return &Service{
		events:     events,
		admins:     admins,
		cache:      cache,
		pub:        pub,
		clock:      clock,
		ttlDetails: ttlDetails,
	}
}

// publish emits a domain event, best-effort. Publish failures never change
// the outcome of the operation that triggered them.
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
