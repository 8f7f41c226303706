package caseservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	accessservice "github.com/Black-And-White-Club/dxwager/app/modules/access/application"
	casedb "github.com/Black-And-White-Club/dxwager/app/modules/cases/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
)

// ------------------------
// Fake Case Repo
// ------------------------

type FakeCaseRepo struct {
	trace []string

	InsertCaseFunc         func(ctx context.Context, db bun.IDB, c *casedb.Case) error
	InsertDiagnosisFunc    func(ctx context.Context, db bun.IDB, d *casedb.Diagnosis) error
	InsertWagerFunc        func(ctx context.Context, db bun.IDB, w *casedb.Wager) error
	InsertJudgementFunc    func(ctx context.Context, db bun.IDB, j *casedb.Judgement) error
	InsertCommentFunc      func(ctx context.Context, db bun.IDB, c *casedb.Comment) error
	InsertTagFunc          func(ctx context.Context, db bun.IDB, t *casedb.Tag) error
	UpdateCaseGroupFunc    func(ctx context.Context, db bun.IDB, caseID uuid.UUID, groupID *uuid.UUID) error
	UpdateCaseDeadlineFunc func(ctx context.Context, db bun.IDB, caseID uuid.UUID, deadline time.Time) error
	GetCaseFunc            func(ctx context.Context, db bun.IDB, caseID uuid.UUID) (*casedb.Case, error)
	DiagnosesForCaseFunc   func(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]casedb.Diagnosis, error)
	WagersForCaseFunc      func(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]casedb.Wager, error)
	JudgementsForCaseFunc  func(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]casedb.Judgement, error)
	CommentsForCaseFunc    func(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]casedb.Comment, error)
	TagsForCaseFunc        func(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]string, error)
	ListCasesForUserFunc   func(ctx context.Context, db bun.IDB, userID uuid.UUID, filter casedb.CaseListFilter) ([]casedb.Case, error)
	CasesForGroupFunc      func(ctx context.Context, db bun.IDB, groupID uuid.UUID) ([]casedb.Case, error)
	TagsForUserFunc        func(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]string, error)
	PredictionsFunc        func(ctx context.Context, db bun.IDB, userID uuid.UUID, filter casedb.OutcomeFilter) ([]casedb.Prediction, error)
}

var _ casedb.Repository = (*FakeCaseRepo)(nil)

func NewFakeCaseRepo() *FakeCaseRepo {
	return &FakeCaseRepo{trace: []string{}}
}

func (f *FakeCaseRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeCaseRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// --- Repository Interface Implementation ---

func (f *FakeCaseRepo) InsertCase(ctx context.Context, db bun.IDB, c *casedb.Case) error {
	f.record("InsertCase")
	if f.InsertCaseFunc != nil {
		return f.InsertCaseFunc(ctx, db, c)
	}
	return nil
}

func (f *FakeCaseRepo) InsertDiagnosis(ctx context.Context, db bun.IDB, d *casedb.Diagnosis) error {
	f.record("InsertDiagnosis")
	if f.InsertDiagnosisFunc != nil {
		return f.InsertDiagnosisFunc(ctx, db, d)
	}
	return nil
}

func (f *FakeCaseRepo) InsertWager(ctx context.Context, db bun.IDB, w *casedb.Wager) error {
	f.record("InsertWager")
	if f.InsertWagerFunc != nil {
		return f.InsertWagerFunc(ctx, db, w)
	}
	return nil
}

func (f *FakeCaseRepo) InsertJudgement(ctx context.Context, db bun.IDB, j *casedb.Judgement) error {
	f.record("InsertJudgement")
	if f.InsertJudgementFunc != nil {
		return f.InsertJudgementFunc(ctx, db, j)
	}
	return nil
}

func (f *FakeCaseRepo) InsertComment(ctx context.Context, db bun.IDB, c *casedb.Comment) error {
	f.record("InsertComment")
	if f.InsertCommentFunc != nil {
		return f.InsertCommentFunc(ctx, db, c)
	}
	return nil
}

func (f *FakeCaseRepo) InsertTag(ctx context.Context, db bun.IDB, t *casedb.Tag) error {
	f.record("InsertTag")
	if f.InsertTagFunc != nil {
		return f.InsertTagFunc(ctx, db, t)
	}
	return nil
}

func (f *FakeCaseRepo) UpdateCaseGroup(ctx context.Context, db bun.IDB, caseID uuid.UUID, groupID *uuid.UUID) error {
	f.record("UpdateCaseGroup")
	if f.UpdateCaseGroupFunc != nil {
		return f.UpdateCaseGroupFunc(ctx, db, caseID, groupID)
	}
	return nil
}

func (f *FakeCaseRepo) UpdateCaseDeadline(ctx context.Context, db bun.IDB, caseID uuid.UUID, deadline time.Time) error {
	f.record("UpdateCaseDeadline")
	if f.UpdateCaseDeadlineFunc != nil {
		return f.UpdateCaseDeadlineFunc(ctx, db, caseID, deadline)
	}
	return nil
}

func (f *FakeCaseRepo) GetCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) (*casedb.Case, error) {
	f.record("GetCase")
	if f.GetCaseFunc != nil {
		return f.GetCaseFunc(ctx, db, caseID)
	}
	return nil, casedb.ErrCaseNotFound
}

func (f *FakeCaseRepo) DiagnosesForCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]casedb.Diagnosis, error) {
	f.record("DiagnosesForCase")
	if f.DiagnosesForCaseFunc != nil {
		return f.DiagnosesForCaseFunc(ctx, db, caseID)
	}
	return nil, nil
}

func (f *FakeCaseRepo) WagersForCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]casedb.Wager, error) {
	f.record("WagersForCase")
	if f.WagersForCaseFunc != nil {
		return f.WagersForCaseFunc(ctx, db, caseID)
	}
	return nil, nil
}

func (f *FakeCaseRepo) JudgementsForCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]casedb.Judgement, error) {
	f.record("JudgementsForCase")
	if f.JudgementsForCaseFunc != nil {
		return f.JudgementsForCaseFunc(ctx, db, caseID)
	}
	return nil, nil
}

func (f *FakeCaseRepo) CommentsForCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]casedb.Comment, error) {
	f.record("CommentsForCase")
	if f.CommentsForCaseFunc != nil {
		return f.CommentsForCaseFunc(ctx, db, caseID)
	}
	return nil, nil
}

func (f *FakeCaseRepo) TagsForCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]string, error) {
	f.record("TagsForCase")
	if f.TagsForCaseFunc != nil {
		return f.TagsForCaseFunc(ctx, db, caseID)
	}
	return nil, nil
}

func (f *FakeCaseRepo) ListCasesForUser(ctx context.Context, db bun.IDB, userID uuid.UUID, filter casedb.CaseListFilter) ([]casedb.Case, error) {
	f.record("ListCasesForUser")
	if f.ListCasesForUserFunc != nil {
		return f.ListCasesForUserFunc(ctx, db, userID, filter)
	}
	return nil, nil
}

func (f *FakeCaseRepo) CasesForGroup(ctx context.Context, db bun.IDB, groupID uuid.UUID) ([]casedb.Case, error) {
	f.record("CasesForGroup")
	if f.CasesForGroupFunc != nil {
		return f.CasesForGroupFunc(ctx, db, groupID)
	}
	return nil, nil
}

func (f *FakeCaseRepo) TagsForUser(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]string, error) {
	f.record("TagsForUser")
	if f.TagsForUserFunc != nil {
		return f.TagsForUserFunc(ctx, db, userID)
	}
	return nil, nil
}

func (f *FakeCaseRepo) Predictions(ctx context.Context, db bun.IDB, userID uuid.UUID, filter casedb.OutcomeFilter) ([]casedb.Prediction, error) {
	f.record("Predictions")
	if f.PredictionsFunc != nil {
		return f.PredictionsFunc(ctx, db, userID, filter)
	}
	return nil, nil
}

// ------------------------
// Fake Guard
// ------------------------

// FakeGuard grants standing to everyone unless Deny is set or a hook overrides it.
type FakeGuard struct {
	Deny bool

	AssertStandingFunc             func(ctx context.Context, user identity.Identity, caseID uuid.UUID) error
	AssertStandingForDiagnosisFunc func(ctx context.Context, user identity.Identity, diagnosisID uuid.UUID) (uuid.UUID, error)
}

var _ accessservice.Guard = (*FakeGuard)(nil)

func (g *FakeGuard) AssertStanding(ctx context.Context, user identity.Identity, caseID uuid.UUID) error {
	if g.AssertStandingFunc != nil {
		return g.AssertStandingFunc(ctx, user, caseID)
	}
	if g.Deny {
		return &apperrors.AuthorizationError{UserID: user.ID, UserName: user.Name, CaseID: caseID}
	}
	return nil
}

func (g *FakeGuard) AssertStandingForDiagnosis(ctx context.Context, user identity.Identity, diagnosisID uuid.UUID) (uuid.UUID, error) {
	if g.AssertStandingForDiagnosisFunc != nil {
		return g.AssertStandingForDiagnosisFunc(ctx, user, diagnosisID)
	}
	caseID := uuid.NewSHA1(uuid.NameSpaceOID, diagnosisID[:])
	if g.Deny {
		return uuid.Nil, &apperrors.AuthorizationError{UserID: user.ID, UserName: user.Name, CaseID: caseID}
	}
	return caseID, nil
}
