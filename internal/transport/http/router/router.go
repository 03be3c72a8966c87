package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/invite-labs/event-service/internal/config"
	"github.com/invite-labs/event-service/internal/transport/http/handlers"
	"github.com/invite-labs/event-service/internal/transport/http/middleware"
)

type Deps struct {
	Events *handlers.EventsHandler
	Regs   *handlers.RegistrationsHandler
	Checks *handlers.CheckInHandler
	Health *handlers.HealthHandler
}

func New(cfg *config.Config, d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.SecurityHeaders)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog)
	if cfg.RLEnabled {
		r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
	}

	r.Get("/healthz", d.Health.Healthz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/event", d.Events.Create)
		r.Get("/events", d.Events.List)
		r.Post("/event/get", d.Events.Get)
		r.Post("/event/delete", d.Events.Delete)
		r.Post("/event/register", d.Regs.Register)
		r.Post("/event/checkin", d.Checks.CheckIn)
	})

	return r
}
