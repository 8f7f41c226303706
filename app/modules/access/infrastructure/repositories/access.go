package accessdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
	"github.com/Black-And-White-Club/dxwager/db/bundb"
)

// ErrDiagnosisNotFound indicates no diagnosis row matched the lookup.
var ErrDiagnosisNotFound = fmt.Errorf("diagnosis %w", apperrors.ErrNotFound)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new access repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) HasStanding(ctx context.Context, db bun.IDB, userID, caseID uuid.UUID) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		TableExpr("cases AS c").
		ColumnExpr("1").
		Join("LEFT JOIN memberships AS m ON m.group_id = c.group_id AND m.user_id = ?", userID).
		Where("c.id = ?", caseID).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("c.creator_id = ?", userID).WhereOr("m.user_id IS NOT NULL")
		}).
		Exists(ctx)
	if err != nil {
		return false, bundb.ClassifyError("accessdb.HasStanding", err)
	}
	return exists, nil
}

func (r *Impl) CaseForDiagnosis(ctx context.Context, db bun.IDB, diagnosisID uuid.UUID) (uuid.UUID, error) {
	db = r.resolveDB(db)
	var caseID uuid.UUID
	err := db.NewSelect().
		TableExpr("diagnoses AS d").
		ColumnExpr("d.case_id").
		Where("d.id = ?", diagnosisID).
		Scan(ctx, &caseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrDiagnosisNotFound
		}
		return uuid.Nil, bundb.ClassifyError("accessdb.CaseForDiagnosis", err)
	}
	return caseID, nil
}
