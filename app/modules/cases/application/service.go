package caseservice

import (
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	accessservice "github.com/Black-And-White-Club/dxwager/app/modules/access/application"
	casedb "github.com/Black-And-White-Club/dxwager/app/modules/cases/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/clock"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/dxwager/app/shared/operations"
)

// CaseService implements the Service interface.
type CaseService struct {
	repo      casedb.Repository
	guard     accessservice.Guard
	clock     clock.Clock
	deadlines DeadlineParserInterface
	logger    *slog.Logger
	telemetry operations.Telemetry
	db        *bun.DB
}

// NewCaseService creates a new CaseService.
func NewCaseService(
	repo casedb.Repository,
	guard accessservice.Guard,
	c clock.Clock,
	logger *slog.Logger,
	m metrics.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
) *CaseService {
	if logger == nil {
		logger = slog.Default()
	}
	if c == nil {
		c = clock.RealClock{}
	}
	return &CaseService{
		repo:      repo,
		guard:     guard,
		clock:     c,
		deadlines: NewDeadlineParser(c),
		logger:    logger,
		telemetry: operations.Telemetry{
			Service: "CaseService",
			Logger:  logger,
			Metrics: m,
			Tracer:  tracer,
		},
		db: db,
	}
}

var _ Service = (*CaseService)(nil)
