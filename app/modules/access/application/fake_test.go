package accessservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	accessdb "github.com/Black-And-White-Club/dxwager/app/modules/access/infrastructure/repositories"
)

// ------------------------
// Fake Access Repo
// ------------------------

type FakeAccessRepo struct {
	trace []string

	HasStandingFunc      func(ctx context.Context, db bun.IDB, userID, caseID uuid.UUID) (bool, error)
	CaseForDiagnosisFunc func(ctx context.Context, db bun.IDB, diagnosisID uuid.UUID) (uuid.UUID, error)
}

var _ accessdb.Repository = (*FakeAccessRepo)(nil)

func NewFakeAccessRepo() *FakeAccessRepo {
	return &FakeAccessRepo{trace: []string{}}
}

func (f *FakeAccessRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeAccessRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeAccessRepo) HasStanding(ctx context.Context, db bun.IDB, userID, caseID uuid.UUID) (bool, error) {
	f.record("HasStanding")
	if f.HasStandingFunc != nil {
		return f.HasStandingFunc(ctx, db, userID, caseID)
	}
	return false, nil
}

func (f *FakeAccessRepo) CaseForDiagnosis(ctx context.Context, db bun.IDB, diagnosisID uuid.UUID) (uuid.UUID, error) {
	f.record("CaseForDiagnosis")
	if f.CaseForDiagnosisFunc != nil {
		return f.CaseForDiagnosisFunc(ctx, db, diagnosisID)
	}
	return uuid.Nil, accessdb.ErrDiagnosisNotFound
}
