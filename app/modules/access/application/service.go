package accessservice

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	accessdb "github.com/Black-And-White-Club/dxwager/app/modules/access/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability/attr"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/dxwager/app/shared/operations"
	"github.com/Black-And-White-Club/dxwager/app/shared/results"
)

// AccessService implements the Guard interface.
type AccessService struct {
	repo      accessdb.Repository
	logger    *slog.Logger
	telemetry operations.Telemetry
	db        *bun.DB
}

// NewAccessService creates a new AccessService.
func NewAccessService(
	repo accessdb.Repository,
	logger *slog.Logger,
	m metrics.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
) *AccessService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccessService{
		repo:   repo,
		logger: logger,
		telemetry: operations.Telemetry{
			Service: "AccessService",
			Logger:  logger,
			Metrics: m,
			Tracer:  tracer,
		},
		db: db,
	}
}

var _ Guard = (*AccessService)(nil)

func (s *AccessService) AssertStanding(ctx context.Context, user identity.Identity, caseID uuid.UUID) error {
	_, err := operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "AssertStanding", caseID.String(),
		func(ctx context.Context) (results.OperationResult[struct{}, error], error) {
			return s.assert(ctx, user, caseID)
		}))
	return err
}

func (s *AccessService) AssertStandingForDiagnosis(ctx context.Context, user identity.Identity, diagnosisID uuid.UUID) (uuid.UUID, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "AssertStandingForDiagnosis", diagnosisID.String(),
		func(ctx context.Context) (results.OperationResult[uuid.UUID, error], error) {
			caseID, err := s.repo.CaseForDiagnosis(ctx, operations.Handle(s.db), diagnosisID)
			if err != nil {
				if errors.Is(err, accessdb.ErrDiagnosisNotFound) {
					return results.FailureResult[uuid.UUID, error](err), nil
				}
				return results.OperationResult[uuid.UUID, error]{}, err
			}

			res, err := s.assert(ctx, user, caseID)
			if err != nil {
				return results.OperationResult[uuid.UUID, error]{}, err
			}
			if res.IsFailure() {
				return results.FailureResult[uuid.UUID, error](*res.Failure), nil
			}
			return results.SuccessResult[uuid.UUID, error](caseID), nil
		}))
}

func (s *AccessService) assert(ctx context.Context, user identity.Identity, caseID uuid.UUID) (results.OperationResult[struct{}, error], error) {
	ok, err := s.repo.HasStanding(ctx, operations.Handle(s.db), user.ID, caseID)
	if err != nil {
		return results.OperationResult[struct{}, error]{}, err
	}
	if !ok {
		s.logger.WarnContext(ctx, "Standing denied",
			attr.ExtractCorrelationID(ctx),
			attr.UserID(user.ID),
			attr.CaseID(caseID),
		)
		return results.FailureResult[struct{}, error](&apperrors.AuthorizationError{
			UserID:   user.ID,
			UserName: user.Name,
			CaseID:   caseID,
		}), nil
	}
	return results.SuccessResult[struct{}, error](struct{}{}), nil
}
