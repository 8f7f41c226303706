package feedservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	feeddb "github.com/Black-And-White-Club/dxwager/app/modules/feed/infrastructure/repositories"
)

// ------------------------
// Fake Feed Repo
// ------------------------

type FakeFeedRepo struct {
	trace []string

	InterestSetFunc     func(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]uuid.UUID, error)
	JudgementEventsFunc func(ctx context.Context, db bun.IDB, caseIDs []uuid.UUID, limit int) ([]feeddb.JudgementRow, error)
	WagerEventsFunc     func(ctx context.Context, db bun.IDB, caseIDs []uuid.UUID, limit int) ([]feeddb.WagerRow, error)
	CommentEventsFunc   func(ctx context.Context, db bun.IDB, caseIDs []uuid.UUID, limit int) ([]feeddb.CommentRow, error)
	DeadlineEventsFunc  func(ctx context.Context, db bun.IDB, caseIDs []uuid.UUID, now time.Time, limit int) ([]feeddb.DeadlineRow, error)
	GroupCaseEventsFunc func(ctx context.Context, db bun.IDB, userID uuid.UUID, exclude []uuid.UUID, limit int) ([]feeddb.GroupCaseRow, error)
}

var _ feeddb.Repository = (*FakeFeedRepo)(nil)

func NewFakeFeedRepo() *FakeFeedRepo {
	return &FakeFeedRepo{trace: []string{}}
}

func (f *FakeFeedRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeFeedRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeFeedRepo) InterestSet(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]uuid.UUID, error) {
	f.record("InterestSet")
	if f.InterestSetFunc != nil {
		return f.InterestSetFunc(ctx, db, userID)
	}
	return []uuid.UUID{}, nil
}

func (f *FakeFeedRepo) JudgementEvents(ctx context.Context, db bun.IDB, caseIDs []uuid.UUID, limit int) ([]feeddb.JudgementRow, error) {
	f.record("JudgementEvents")
	if f.JudgementEventsFunc != nil {
		return f.JudgementEventsFunc(ctx, db, caseIDs, limit)
	}
	return nil, nil
}

func (f *FakeFeedRepo) WagerEvents(ctx context.Context, db bun.IDB, caseIDs []uuid.UUID, limit int) ([]feeddb.WagerRow, error) {
	f.record("WagerEvents")
	if f.WagerEventsFunc != nil {
		return f.WagerEventsFunc(ctx, db, caseIDs, limit)
	}
	return nil, nil
}

func (f *FakeFeedRepo) CommentEvents(ctx context.Context, db bun.IDB, caseIDs []uuid.UUID, limit int) ([]feeddb.CommentRow, error) {
	f.record("CommentEvents")
	if f.CommentEventsFunc != nil {
		return f.CommentEventsFunc(ctx, db, caseIDs, limit)
	}
	return nil, nil
}

func (f *FakeFeedRepo) DeadlineEvents(ctx context.Context, db bun.IDB, caseIDs []uuid.UUID, now time.Time, limit int) ([]feeddb.DeadlineRow, error) {
	f.record("DeadlineEvents")
	if f.DeadlineEventsFunc != nil {
		return f.DeadlineEventsFunc(ctx, db, caseIDs, now, limit)
	}
	return nil, nil
}

func (f *FakeFeedRepo) GroupCaseEvents(ctx context.Context, db bun.IDB, userID uuid.UUID, exclude []uuid.UUID, limit int) ([]feeddb.GroupCaseRow, error) {
	f.record("GroupCaseEvents")
	if f.GroupCaseEventsFunc != nil {
		return f.GroupCaseEventsFunc(ctx, db, userID, exclude, limit)
	}
	return nil, nil
}
