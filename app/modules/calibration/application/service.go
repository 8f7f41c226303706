package calibrationservice

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	calibrationdomain "github.com/Black-And-White-Club/dxwager/app/modules/calibration/domain"
	calibrationdb "github.com/Black-And-White-Club/dxwager/app/modules/calibration/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/dxwager/app/shared/operations"
	"github.com/Black-And-White-Club/dxwager/app/shared/results"
)

// CalibrationService implements the Service interface.
type CalibrationService struct {
	repo      calibrationdb.Repository
	palette   ChartPalette
	logger    *slog.Logger
	telemetry operations.Telemetry
	db        *bun.DB
}

// NewCalibrationService creates a new CalibrationService.
func NewCalibrationService(
	repo calibrationdb.Repository,
	logger *slog.Logger,
	m metrics.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
) *CalibrationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CalibrationService{
		repo:    repo,
		palette: DefaultPalette,
		logger:  logger,
		telemetry: operations.Telemetry{
			Service: "CalibrationService",
			Logger:  logger,
			Metrics: m,
			Tracer:  tracer,
		},
		db: db,
	}
}

var _ Service = (*CalibrationService)(nil)

func (s *CalibrationService) Score(ctx context.Context, userID uuid.UUID, adjusted bool) (*float64, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "Score", userID.String(),
		func(ctx context.Context) (results.OperationResult[*float64, error], error) {
			rows, err := s.repo.JudgedWagersForUser(ctx, operations.Handle(s.db), userID)
			if err != nil {
				return results.OperationResult[*float64, error]{}, err
			}
			summary := calibrationdomain.Summarize(components(rows))
			if summary == nil {
				return results.SuccessResult[*float64, error](nil), nil
			}
			score := summary.Mean
			if adjusted {
				score = summary.Adjusted
			}
			return results.SuccessResult[*float64, error](&score), nil
		}))
}

func (s *CalibrationService) Scores(ctx context.Context, userID uuid.UUID) ([]ScoreRow, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "Scores", userID.String(),
		func(ctx context.Context) (results.OperationResult[[]ScoreRow, error], error) {
			rows, err := s.repo.JudgedWagersForUser(ctx, operations.Handle(s.db), userID)
			if err != nil {
				return results.OperationResult[[]ScoreRow, error]{}, err
			}
			return results.SuccessResult[[]ScoreRow, error](scoreRows(rows)), nil
		}))
}

func (s *CalibrationService) RenderTrend(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "RenderTrend", userID.String(),
		func(ctx context.Context) (results.OperationResult[[]byte, error], error) {
			rows, err := s.repo.JudgedWagersForUser(ctx, operations.Handle(s.db), userID)
			if err != nil {
				return results.OperationResult[[]byte, error]{}, err
			}
			png, err := GenerateTrendChart(scoreRows(rows), s.palette)
			if err != nil {
				return results.OperationResult[[]byte, error]{}, err
			}
			return results.SuccessResult[[]byte, error](png), nil
		}))
}

// components keeps the Brier component of every scored row.
func components(rows []calibrationdb.JudgedWager) []float64 {
	out := make([]float64, 0, len(rows))
	for _, r := range rows {
		if c, ok := calibrationdomain.Component(r.Confidence, r.Outcome); ok {
			out = append(out, c)
		}
	}
	return out
}

func scoreRows(rows []calibrationdb.JudgedWager) []ScoreRow {
	scored := make([]calibrationdb.JudgedWager, 0, len(rows))
	comps := make([]float64, 0, len(rows))
	for _, r := range rows {
		if c, ok := calibrationdomain.Component(r.Confidence, r.Outcome); ok {
			scored = append(scored, r)
			comps = append(comps, c)
		}
	}

	running := calibrationdomain.Running(comps)
	out := make([]ScoreRow, len(scored))
	for i, r := range scored {
		out[i] = ScoreRow{
			Judged:             r.Judged,
			CaseID:             r.CaseID,
			Reference:          r.Reference,
			Diagnosis:          r.Diagnosis,
			Confidence:         r.Confidence,
			Outcome:            r.Outcome,
			BrierScore:         comps[i],
			AverageBrierScore:  running[i].Mean,
			AdjustedBrierScore: running[i].Adjusted,
		}
	}
	return out
}
