package calibrationdb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	casedomain "github.com/Black-And-White-Club/dxwager/app/modules/cases/domain"
)

// JudgedWager is one of a user's wagers on a diagnosis with a scored verdict.
type JudgedWager struct {
	WagerID     uuid.UUID          `bun:"wager_id"`
	Confidence  int                `bun:"confidence"`
	WageredAt   time.Time          `bun:"wagered_at"`
	DiagnosisID uuid.UUID          `bun:"diagnosis_id"`
	Diagnosis   string             `bun:"diagnosis"`
	CaseID      uuid.UUID          `bun:"case_id"`
	Reference   string             `bun:"reference"`
	Outcome     casedomain.Outcome `bun:"outcome"`
	Judged      time.Time          `bun:"judged"`
}

// Repository reads the rows calibration scores are computed from.
type Repository interface {
	// JudgedWagersForUser returns the user's wagers whose diagnosis is judged
	// RIGHT or WRONG, ordered by judgement time, then diagnosis insertion
	// order, then wager time and id.
	JudgedWagersForUser(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]JudgedWager, error)
}
