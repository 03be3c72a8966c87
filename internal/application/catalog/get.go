package catalog

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/invite-labs/event-service/internal/domain"
	"github.com/invite-labs/event-service/internal/pkg/cachekeys"
)

func (s *Service) Get(ctx context.Context, id string) (*domain.Event, error) {
	if id == "" {
		return nil, domain.ErrValidationMeta("invalid request", map[string]string{"event_id": "required"})
	}

	key := cachekeys.EventDetails(id)
	if s.cache != nil {
		var cached domain.Event
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache get failed")
		} else if found {
			return &cached, nil
		}
	}

	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, e, s.ttlDetails); err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}

	return e, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Event, error) {
	return s.events.List(ctx)
}
