package cases

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"

	accessservice "github.com/Black-And-White-Club/dxwager/app/modules/access/application"
	caseservice "github.com/Black-And-White-Club/dxwager/app/modules/cases/application"
	casehandlers "github.com/Black-And-White-Club/dxwager/app/modules/cases/infrastructure/handlers"
	casedb "github.com/Black-And-White-Club/dxwager/app/modules/cases/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/clock"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability"
)

// Module wires case ingestion and case operations to the store and HTTP routes.
type Module struct {
	service  caseservice.Service
	handlers casehandlers.Handlers
}

// NewModule creates the cases module. Routes are registered only when httpRouter is non-nil.
func NewModule(
	ctx context.Context,
	obs observability.Observability,
	db *bun.DB,
	guard accessservice.Guard,
	c clock.Clock,
	httpRouter chi.Router,
	requireAuth func(http.Handler) http.Handler,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer("caseservice")

	logger.InfoContext(ctx, "Initializing cases module")

	repo := casedb.NewRepository(db)
	service := caseservice.NewCaseService(repo, guard, c, logger, obs.Metrics, tracer, db)
	handlers := casehandlers.NewCaseHandlers(service, logger, tracer)

	if httpRouter != nil {
		httpRouter.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/api/cases", handlers.HandleCreateCase)
			r.Post("/api/cases/import", handlers.HandleImportCases)
			r.Get("/api/cases", handlers.HandleListCases)
			r.Get("/api/cases/{caseID}", handlers.HandleGetCase)
			r.Put("/api/cases/{caseID}/group", handlers.HandleChangeGroup)
			r.Put("/api/cases/{caseID}/deadline", handlers.HandleChangeDeadline)
			r.Post("/api/cases/{caseID}/diagnoses", handlers.HandleAddDiagnosis)
			r.Post("/api/cases/{caseID}/comments", handlers.HandleAddComment)
			r.Post("/api/cases/{caseID}/tags", handlers.HandleAddTag)

			r.Post("/api/diagnoses/{diagnosisID}/wagers", handlers.HandleAddWager)
			r.Post("/api/diagnoses/{diagnosisID}/judgement", handlers.HandleJudgeOutcome)

			r.Get("/api/groups/{groupID}/cases", handlers.HandleGroupCases)
			r.Get("/api/me/tags", handlers.HandleMyTags)
			r.Get("/api/me/predictions", handlers.HandleMyPredictions)
		})
	}

	logger.InfoContext(ctx, "Cases module initialized")

	return &Module{service: service, handlers: handlers}, nil
}

// Service exposes the case service to the import CLI.
func (m *Module) Service() caseservice.Service {
	return m.service
}
