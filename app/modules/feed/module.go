package feed

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"

	feedservice "github.com/Black-And-White-Club/dxwager/app/modules/feed/application"
	feedhandlers "github.com/Black-And-White-Club/dxwager/app/modules/feed/infrastructure/handlers"
	feeddb "github.com/Black-And-White-Club/dxwager/app/modules/feed/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/clock"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability"
	"github.com/Black-And-White-Club/dxwager/config"
)

// Module wires the event feed to the store and HTTP routes.
type Module struct {
	service feedservice.Service
}

// NewModule creates the feed module. Routes are registered only when httpRouter is non-nil.
func NewModule(
	ctx context.Context,
	obs observability.Observability,
	cfg config.FeedConfig,
	db *bun.DB,
	c clock.Clock,
	httpRouter chi.Router,
	requireAuth func(http.Handler) http.Handler,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer("feedservice")

	logger.InfoContext(ctx, "Initializing feed module")

	repo := feeddb.NewRepository(db)
	service := feedservice.NewFeedService(repo, c, cfg, logger, obs.Metrics, tracer, db)
	handlers := feedhandlers.NewFeedHandlers(service, logger, tracer)

	if httpRouter != nil {
		httpRouter.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/api/me/events", handlers.HandleMyEvents)
		})
	}

	logger.InfoContext(ctx, "Feed module initialized")

	return &Module{service: service}, nil
}

// Service exposes the feed service.
func (m *Module) Service() feedservice.Service {
	return m.service
}
