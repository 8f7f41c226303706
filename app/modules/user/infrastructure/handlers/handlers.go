package userhandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	userservice "github.com/Black-And-White-Club/dxwager/app/modules/user/application"
)

// UserHandlers implements the Handlers interface.
type UserHandlers struct {
	service userservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewUserHandlers creates a new UserHandlers instance.
func NewUserHandlers(service userservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &UserHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}
