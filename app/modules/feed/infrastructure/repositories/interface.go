package feeddb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	casedomain "github.com/Black-And-White-Club/dxwager/app/modules/cases/domain"
)

// JudgementRow is a verdict on a diagnosis of an interesting case.
type JudgementRow struct {
	CaseID    uuid.UUID          `bun:"case_id"`
	Reference string             `bun:"reference"`
	UserID    uuid.UUID          `bun:"user_id"`
	UserName  string             `bun:"user_name"`
	Diagnosis string             `bun:"diagnosis"`
	Outcome   casedomain.Outcome `bun:"outcome"`
	Timestamp time.Time          `bun:"ts"`
}

// WagerRow is a wager placed on a diagnosis of an interesting case.
type WagerRow struct {
	CaseID     uuid.UUID `bun:"case_id"`
	Reference  string    `bun:"reference"`
	UserID     uuid.UUID `bun:"user_id"`
	UserName   string    `bun:"user_name"`
	Diagnosis  string    `bun:"diagnosis"`
	Confidence int       `bun:"confidence"`
	Timestamp  time.Time `bun:"ts"`
}

// CommentRow is a comment on an interesting case. UserID and UserName
// identify the case creator, not the comment author.
type CommentRow struct {
	CaseID    uuid.UUID `bun:"case_id"`
	Reference string    `bun:"reference"`
	UserID    uuid.UUID `bun:"user_id"`
	UserName  string    `bun:"user_name"`
	Text      string    `bun:"text"`
	Timestamp time.Time `bun:"ts"`
}

// DeadlineRow is an interesting case whose deadline has passed.
type DeadlineRow struct {
	CaseID    uuid.UUID `bun:"case_id"`
	Reference string    `bun:"reference"`
	Timestamp time.Time `bun:"ts"`
}

// GroupCaseRow is a case shared with one of the user's groups.
type GroupCaseRow struct {
	CaseID    uuid.UUID `bun:"case_id"`
	Reference string    `bun:"reference"`
	UserID    uuid.UUID `bun:"user_id"`
	UserName  string    `bun:"user_name"`
	GroupID   uuid.UUID `bun:"group_id"`
	GroupName string    `bun:"group_name"`
	Timestamp time.Time `bun:"ts"`
}

// Repository reads the activity the event feed is built from. Every source
// query is ordered newest first and limited to limit rows.
type Repository interface {
	// InterestSet returns the ids of cases the user created, wagered on,
	// judged or commented on.
	InterestSet(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]uuid.UUID, error)

	JudgementEvents(ctx context.Context, db bun.IDB, caseIDs []uuid.UUID, limit int) ([]JudgementRow, error)
	WagerEvents(ctx context.Context, db bun.IDB, caseIDs []uuid.UUID, limit int) ([]WagerRow, error)
	CommentEvents(ctx context.Context, db bun.IDB, caseIDs []uuid.UUID, limit int) ([]CommentRow, error)

	// DeadlineEvents returns cases in caseIDs whose deadline is before now.
	DeadlineEvents(ctx context.Context, db bun.IDB, caseIDs []uuid.UUID, now time.Time, limit int) ([]DeadlineRow, error)

	// GroupCaseEvents returns cases assigned to the user's groups, skipping
	// any id in exclude.
	GroupCaseEvents(ctx context.Context, db bun.IDB, userID uuid.UUID, exclude []uuid.UUID, limit int) ([]GroupCaseRow, error)
}
