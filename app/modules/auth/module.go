package auth

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	authservice "github.com/Black-And-White-Club/dxwager/app/modules/auth/application"
	authhandlers "github.com/Black-And-White-Club/dxwager/app/modules/auth/infrastructure/handlers"
	authjwt "github.com/Black-And-White-Club/dxwager/app/modules/auth/infrastructure/jwt"
	userservice "github.com/Black-And-White-Club/dxwager/app/modules/user/application"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability"
	"github.com/Black-And-White-Club/dxwager/config"
)

// Module represents the auth module.
type Module struct {
	service  authservice.Service
	handlers authhandlers.Handlers
}

// NewModule creates the auth module and registers the login route.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	users userservice.Service,
	httpRouter chi.Router,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer("authservice")

	logger.InfoContext(ctx, "Initializing auth module")

	jwtProvider := authjwt.NewProvider(cfg.JWT.Secret)
	service := authservice.NewService(
		jwtProvider,
		users,
		authservice.Config{DefaultTTL: cfg.JWT.DefaultTTL},
		logger,
		tracer,
	)
	handlers := authhandlers.NewAuthHandlers(service, logger, tracer)

	if httpRouter != nil {
		limiter := authhandlers.NewIPRateLimiter(5, 10)
		httpRouter.Group(func(r chi.Router) {
			r.Use(authhandlers.RateLimitMiddleware(limiter))
			r.Post("/api/auth/login", handlers.HandleLogin)
		})
	}

	return &Module{
		service:  service,
		handlers: handlers,
	}, nil
}

// RequireAuth is the bearer-token middleware other modules mount on their routes.
func (m *Module) RequireAuth(next http.Handler) http.Handler {
	return m.handlers.RequireAuth(next)
}
