package casesintegrationtests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	accessservice "github.com/Black-And-White-Club/dxwager/app/modules/access/application"
	accessdb "github.com/Black-And-White-Club/dxwager/app/modules/access/infrastructure/repositories"
	caseservice "github.com/Black-And-White-Club/dxwager/app/modules/cases/application"
	casedb "github.com/Black-And-White-Club/dxwager/app/modules/cases/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
	"github.com/Black-And-White-Club/dxwager/app/shared/clock"
	"github.com/Black-And-White-Club/dxwager/integration_tests/testutils"
)

var baseTime = time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

func newGuard() *accessservice.AccessService {
	obs := testEnv.Obs
	return accessservice.NewAccessService(accessdb.NewRepository(testEnv.DB), obs.Logger, obs.Metrics, obs.Tracer("test"), testEnv.DB)
}

func newCaseService(repo casedb.Repository) *caseservice.CaseService {
	obs := testEnv.Obs
	if repo == nil {
		repo = casedb.NewRepository(testEnv.DB)
	}
	return caseservice.NewCaseService(
		repo,
		newGuard(),
		&clock.FakeClock{NowFn: func() time.Time { return baseTime }},
		obs.Logger,
		obs.Metrics,
		obs.Tracer("test"),
		testEnv.DB,
	)
}

func reset(t *testing.T) {
	t.Helper()
	require.NoError(t, testEnv.Reset())
}

// assertCounts checks the row count of each case table.
func assertCounts(t *testing.T, want map[string]int) {
	t.Helper()
	for table, n := range want {
		got, err := testutils.CountRows(context.Background(), testEnv.DB, table)
		require.NoError(t, err)
		require.Equalf(t, n, got, "rows in %s", table)
	}
}

func emptyCounts() map[string]int {
	return map[string]int{"cases": 0, "diagnoses": 0, "wagers": 0, "judgements": 0, "comments": 0}
}

// failingWagerRepo fails the Nth wager insert.
type failingWagerRepo struct {
	casedb.Repository
	failOn int
	seen   int
}

func (r *failingWagerRepo) InsertWager(ctx context.Context, db bun.IDB, w *casedb.Wager) error {
	r.seen++
	if r.seen == r.failOn {
		return &apperrors.StoreError{Op: "casedb.InsertWager", Err: errors.New("forced failure")}
	}
	return r.Repository.InsertWager(ctx, db, w)
}

// doubleJudgementRepo writes every judgement twice, so the second insert hits
// the primary key.
type doubleJudgementRepo struct {
	casedb.Repository
}

func (r *doubleJudgementRepo) InsertJudgement(ctx context.Context, db bun.IDB, j *casedb.Judgement) error {
	if err := r.Repository.InsertJudgement(ctx, db, j); err != nil {
		return err
	}
	dup := *j
	return r.Repository.InsertJudgement(ctx, db, &dup)
}
