package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"net/url"
	"time"

	_ "github.com/lib/pq"

	zlog "github.com/rs/zerolog/log"

	"github.com/invite-labs/event-service/internal/application/catalog"
	"github.com/invite-labs/event-service/internal/application/checkin"
	"github.com/invite-labs/event-service/internal/application/registration"
	"github.com/invite-labs/event-service/internal/bootstrap"
	"github.com/invite-labs/event-service/internal/config"
	rediscache "github.com/invite-labs/event-service/internal/infrastructure/caching/redis"
	"github.com/invite-labs/event-service/internal/infrastructure/db/postgres"
	rabbitpub "github.com/invite-labs/event-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/invite-labs/event-service/internal/infrastructure/notify"
	"github.com/invite-labs/event-service/internal/logger"
	"github.com/invite-labs/event-service/internal/transport/http/handlers"
	"github.com/invite-labs/event-service/internal/transport/http/router"
)

// sysClock implements the application Clock interfaces using system time
type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// logDBTarget logs where the service will connect without leaking the
// credential. An unparseable URL is left for sql.Open to report.
func logDBTarget(dsn string) {
	u, err := url.Parse(dsn)
	if err != nil {
		zlog.Warn().Msg("DATABASE_URL is not a parseable URL")
		return
	}
	zlog.Info().
		Str("db_user", u.User.Username()).
		Str("db_host", u.Host).
		Str("db_db", u.Path).
		Msg("db config loaded")
}

// App holds all dependencies for the service
type App struct {
	Config *config.Config
	Server *http.Server
	DB     *sql.DB

	Publisher *rabbitpub.Publisher
	Cache     *rediscache.Client
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logDBTarget(cfg.DatabaseURL)

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db open failed")
	}
	defer db.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			zlog.Fatal().Err(err).Msg("db ping failed")
		}
	}

	{
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := postgres.Migrate(ctx, db); err != nil {
			zlog.Fatal().Err(err).Msg("migrations failed")
		}
	}

	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := bootstrap.SeedDemoAdmin(ctx, postgres.NewAdminRepo(db), cfg); err != nil {
			zlog.Fatal().Err(err).Msg("demo admin seed failed")
		}
	}

	app := NewApp(cfg, db)
	defer func() {
		if app.Publisher != nil {
			_ = app.Publisher.Close()
		}
		if app.Cache != nil {
			_ = app.Cache.Close()
		}
	}()

	zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal().Err(err).Msg("server crashed")
	}
}

func NewApp(cfg *config.Config, db *sql.DB) *App {
	// 1) Infrastructure
	repo := postgres.New(db)
	admins := postgres.NewAdminRepo(db)

	var cache *rediscache.Client
	if cfg.RedisURL != "" {
		c, err := rediscache.New(cfg.RedisURL)
		if err != nil {
			zlog.Fatal().Err(err).Msg("redis init failed")
		}
		cache = c
		zlog.Info().Msg("redis cache ready")
	} else {
		zlog.Warn().Msg("REDIS_URL empty: event details are served uncached")
	}

	var rabbit *rabbitpub.Publisher
	var pub catalog.Publisher = catalog.NoopPublisher{}

	if cfg.RabbitURL != "" {
		p, err := rabbitpub.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			zlog.Fatal().Err(err).Msg("rabbit publisher init failed")
		}
		rabbit = p
		pub = p
		zlog.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: domain events will not be published")
	}

	var notifier checkin.Notifier
	switch cfg.NotifierDriver {
	case "smtp":
		notifier = notify.NewSMTPNotifier(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.SMTPFrom,
			Timeout:  cfg.NotifyTimeout,
			Insecure: cfg.SMTPInsecure,
		}, logger.Logger)
	default:
		notifier = notify.NewFakeNotifier(logger.Logger)
	}

	// 2) Application
	// Typed nils would defeat the services' cache==nil checks, so each
	// cache port is only assigned when redis is actually configured.
	var catalogCache catalog.Cache
	var regCache registration.Cache
	var chkCache checkin.Cache
	if cache != nil {
		catalogCache = cache
		regCache = cache
		chkCache = cache
	}

	catalogSvc := catalog.New(repo, admins, catalogCache, pub, sysClock{}, cfg.CacheTTLDetails)
	regSvc := registration.New(repo, regCache, pub, sysClock{})
	checkinSvc := checkin.New(repo, notifier, chkCache, pub, sysClock{}, cfg.NotifyTimeout)

	// 3) Transport
	deps := router.Deps{
		Events: handlers.NewEventsHandler(catalogSvc),
		Regs:   handlers.NewRegistrationsHandler(regSvc),
		Checks: handlers.NewCheckInHandler(checkinSvc),
		Health: handlers.NewHealthHandler(),
	}

	// 4) Router
	httpHandler := router.New(cfg, deps)

	// 5) Server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpHandler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config:    cfg,
		Server:    srv,
		DB:        db,
		Publisher: rabbit,
		Cache:     cache,
	}
}
