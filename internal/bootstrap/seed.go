package bootstrap

import (
	"context"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/invite-labs/event-service/internal/config"
	"github.com/invite-labs/event-service/internal/domain"
)

type AdminStore interface {
	Ensure(ctx context.Context, a domain.Admin) (bool, error)
}

// SeedDemoAdmin installs the demo organizer credential once at startup.
// The existence check lives in the store's conditional insert, so running
// this on every boot (or on several replicas at once) is safe.
func SeedDemoAdmin(ctx context.Context, store AdminStore, cfg *config.Config) error {
	if !cfg.SeedAdminEnabled {
		zlog.Debug().Msg("demo admin seed disabled")
		return nil
	}

	created, err := store.Ensure(ctx, domain.Admin{
		AdminID:   cfg.SeedAdminID,
		Email:     cfg.SeedAdminEmail,
		Name:      cfg.SeedAdminName,
		Pass:      cfg.SeedAdminPass,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	if created {
		zlog.Info().Str("admin_id", cfg.SeedAdminID).Msg("demo admin created")
	} else {
		zlog.Info().Str("admin_id", cfg.SeedAdminID).Msg("demo admin already exists")
	}
	return nil
}
