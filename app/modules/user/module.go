package user

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"

	userservice "github.com/Black-And-White-Club/dxwager/app/modules/user/application"
	userhandlers "github.com/Black-And-White-Club/dxwager/app/modules/user/infrastructure/handlers"
	userdb "github.com/Black-And-White-Club/dxwager/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability"
)

// Module wires the user and group service to its repository and HTTP routes.
type Module struct {
	service  userservice.Service
	handlers userhandlers.Handlers
	obs      observability.Observability
}

// NewModule creates the user module. Routes are registered only when httpRouter is non-nil.
func NewModule(
	ctx context.Context,
	obs observability.Observability,
	db *bun.DB,
	httpRouter chi.Router,
	requireAuth func(http.Handler) http.Handler,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer("userservice")

	logger.InfoContext(ctx, "Initializing user module")

	repo := userdb.NewRepository(db)
	service := userservice.NewUserService(repo, logger, obs.Metrics, tracer, db)
	handlers := userhandlers.NewUserHandlers(service, logger, tracer)

	if httpRouter != nil {
		httpRouter.Post("/api/users", handlers.HandleCreateUser)

		httpRouter.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/api/users", handlers.HandleListUsers)
			r.Get("/api/users/{userID}", handlers.HandleGetUser)
			r.Get("/api/me", handlers.HandleMe)
			r.Get("/api/me/groups", handlers.HandleMyGroups)

			r.Post("/api/groups", handlers.HandleCreateGroup)
			r.Get("/api/groups", handlers.HandleListGroups)
			r.Get("/api/groups/{groupID}", handlers.HandleGetGroup)
			r.Post("/api/groups/{groupID}/members", handlers.HandleAddMember)
			r.Get("/api/groups/{groupID}/members", handlers.HandleListMembers)
		})
	}

	logger.InfoContext(ctx, "User module initialized")

	return &Module{
		service:  service,
		handlers: handlers,
		obs:      obs,
	}, nil
}

// Service exposes the user service to modules that authenticate against it.
func (m *Module) Service() userservice.Service {
	return m.service
}
