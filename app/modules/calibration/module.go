package calibration

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"

	calibrationservice "github.com/Black-And-White-Club/dxwager/app/modules/calibration/application"
	calibrationhandlers "github.com/Black-And-White-Club/dxwager/app/modules/calibration/infrastructure/handlers"
	calibrationdb "github.com/Black-And-White-Club/dxwager/app/modules/calibration/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability"
)

// Module wires the calibration scorer to the store and HTTP routes.
type Module struct {
	service calibrationservice.Service
}

// NewModule creates the calibration module. Routes are registered only when httpRouter is non-nil.
func NewModule(
	ctx context.Context,
	obs observability.Observability,
	db *bun.DB,
	httpRouter chi.Router,
	requireAuth func(http.Handler) http.Handler,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer("calibrationservice")

	logger.InfoContext(ctx, "Initializing calibration module")

	repo := calibrationdb.NewRepository(db)
	service := calibrationservice.NewCalibrationService(repo, logger, obs.Metrics, tracer, db)
	handlers := calibrationhandlers.NewCalibrationHandlers(service, logger, tracer)

	if httpRouter != nil {
		httpRouter.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/api/me/score", handlers.HandleMyScore)
			r.Get("/api/me/scores", handlers.HandleMyScores)
			r.Get("/api/me/calibration.png", handlers.HandleMyTrend)
			r.Get("/api/users/{userID}/score", handlers.HandleUserScore)
			r.Get("/api/users/{userID}/scores", handlers.HandleUserScores)
		})
	}

	logger.InfoContext(ctx, "Calibration module initialized")

	return &Module{service: service}, nil
}

// Service exposes the calibration service.
func (m *Module) Service() calibrationservice.Service {
	return m.service
}
