package casehandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	caseservice "github.com/Black-And-White-Club/dxwager/app/modules/cases/application"
	caseparsers "github.com/Black-And-White-Club/dxwager/app/modules/cases/infrastructure/parsers"
)

// maxImportBytes bounds an uploaded import file.
const maxImportBytes = 16 << 20

// CaseHandlers implements the Handlers interface.
type CaseHandlers struct {
	service caseservice.Service
	parsers *caseparsers.Factory
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewCaseHandlers creates a new CaseHandlers instance.
func NewCaseHandlers(service caseservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &CaseHandlers{
		service: service,
		parsers: caseparsers.NewFactory(),
		logger:  logger,
		tracer:  tracer,
	}
}
