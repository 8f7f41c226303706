package calibrationservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	calibrationdb "github.com/Black-And-White-Club/dxwager/app/modules/calibration/infrastructure/repositories"
)

// ------------------------
// Fake Calibration Repo
// ------------------------

type FakeCalibrationRepo struct {
	trace []string

	JudgedWagersForUserFunc func(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]calibrationdb.JudgedWager, error)
}

var _ calibrationdb.Repository = (*FakeCalibrationRepo)(nil)

func NewFakeCalibrationRepo() *FakeCalibrationRepo {
	return &FakeCalibrationRepo{trace: []string{}}
}

func (f *FakeCalibrationRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeCalibrationRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeCalibrationRepo) JudgedWagersForUser(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]calibrationdb.JudgedWager, error) {
	f.record("JudgedWagersForUser")
	if f.JudgedWagersForUserFunc != nil {
		return f.JudgedWagersForUserFunc(ctx, db, userID)
	}
	return nil, nil
}
