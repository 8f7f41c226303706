package calibrationservice

import (
	"context"
	"time"

	"github.com/google/uuid"

	casedomain "github.com/Black-And-White-Club/dxwager/app/modules/cases/domain"
)

// Service computes Brier calibration scores from judged wagers.
type Service interface {
	// Score is the mean Brier component over the user's scored wagers, plus
	// 1/sqrt(n) when adjusted. It is nil when the user has no scored wagers.
	Score(ctx context.Context, userID uuid.UUID, adjusted bool) (*float64, error)

	// Scores lists each scored wager in judgement order with running averages.
	Scores(ctx context.Context, userID uuid.UUID) ([]ScoreRow, error)

	// RenderTrend draws the running averages as a PNG.
	RenderTrend(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

// ScoreRow is one scored wager with the averages of every row up to and including it.
type ScoreRow struct {
	Judged             time.Time          `json:"judged"`
	CaseID             uuid.UUID          `json:"case_id"`
	Reference          string             `json:"reference"`
	Diagnosis          string             `json:"diagnosis"`
	Confidence         int                `json:"confidence"`
	Outcome            casedomain.Outcome `json:"outcome"`
	BrierScore         float64            `json:"brier_score"`
	AverageBrierScore  float64            `json:"average_brier_score"`
	AdjustedBrierScore float64            `json:"adjusted_brier_score"`
}
