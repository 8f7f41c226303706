package casedb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for case persistence. Every method accepts an
// optional bun.IDB so multi-row writes can share the caller's transaction.
type Repository interface {
	// Writes
	InsertCase(ctx context.Context, db bun.IDB, c *Case) error
	InsertDiagnosis(ctx context.Context, db bun.IDB, d *Diagnosis) error
	InsertWager(ctx context.Context, db bun.IDB, w *Wager) error
	// InsertJudgement fails with a ConflictError when the diagnosis is already judged.
	InsertJudgement(ctx context.Context, db bun.IDB, j *Judgement) error
	InsertComment(ctx context.Context, db bun.IDB, c *Comment) error
	// InsertTag is a no-op when the case already carries the tag.
	InsertTag(ctx context.Context, db bun.IDB, t *Tag) error
	UpdateCaseGroup(ctx context.Context, db bun.IDB, caseID uuid.UUID, groupID *uuid.UUID) error
	UpdateCaseDeadline(ctx context.Context, db bun.IDB, caseID uuid.UUID, deadline time.Time) error

	// Case detail
	GetCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) (*Case, error)
	DiagnosesForCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]Diagnosis, error)
	WagersForCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]Wager, error)
	JudgementsForCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]Judgement, error)
	CommentsForCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]Comment, error)
	TagsForCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]string, error)

	// Listings
	ListCasesForUser(ctx context.Context, db bun.IDB, userID uuid.UUID, filter CaseListFilter) ([]Case, error)
	CasesForGroup(ctx context.Context, db bun.IDB, groupID uuid.UUID) ([]Case, error)
	TagsForUser(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]string, error)
	Predictions(ctx context.Context, db bun.IDB, userID uuid.UUID, filter OutcomeFilter) ([]Prediction, error)
}
