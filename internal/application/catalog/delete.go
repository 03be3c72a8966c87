package catalog

import (
	"context"
	"strings"

	zlog "github.com/rs/zerolog/log"

	"github.com/invite-labs/event-service/internal/contracts"
	"github.com/invite-labs/event-service/internal/domain"
	"github.com/invite-labs/event-service/internal/pkg/cachekeys"
)

// Delete removes the event and the admin's denormalized summary. Both halves
// are idempotent: deleting an already-deleted event succeeds, and a missing
// summary is fine (best-effort cleanup, not a two-phase transaction).
func (s *Service) Delete(ctx context.Context, eventID, adminID string) error {
	meta := map[string]string{}
	if strings.TrimSpace(eventID) == "" {
		meta["event_id"] = "required"
	}
	if strings.TrimSpace(adminID) == "" {
		meta["admin_id"] = "required"
	}
	if len(meta) > 0 {
		return domain.ErrValidationMeta("invalid request", meta)
	}

	if err := s.events.Delete(ctx, eventID); err != nil {
		return err
	}

	if err := s.admins.RemoveEventSummary(ctx, adminID, eventID); err != nil {
		zlog.Warn().Err(err).
			Str("event_id", eventID).
			Str("admin_id", adminID).
			Msg("admin events list cleanup failed")
	}

	if s.cache != nil {
		key := cachekeys.EventDetails(eventID)
		if err := s.cache.Delete(ctx, key); err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache invalidate failed")
		}
	}

	s.publish(ctx, contracts.RouteEventDeleted, contracts.EventDeletedPayload{
		EventID: eventID,
		AdminID: adminID,
	})

	return nil
}
