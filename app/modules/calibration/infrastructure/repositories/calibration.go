package calibrationdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	casedomain "github.com/Black-And-White-Club/dxwager/app/modules/cases/domain"
	"github.com/Black-And-White-Club/dxwager/db/bundb"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new calibration repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) JudgedWagersForUser(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]JudgedWager, error) {
	db = r.resolveDB(db)
	var rows []JudgedWager
	err := db.NewSelect().
		TableExpr("wagers AS w").
		ColumnExpr("w.id AS wager_id").
		ColumnExpr("w.confidence").
		ColumnExpr("w.created_at AS wagered_at").
		ColumnExpr("d.id AS diagnosis_id").
		ColumnExpr("d.name AS diagnosis").
		ColumnExpr("c.id AS case_id").
		ColumnExpr("c.reference").
		ColumnExpr("j.outcome").
		ColumnExpr("j.judged_at AS judged").
		Join("JOIN judgements AS j ON j.diagnosis_id = w.diagnosis_id").
		Join("JOIN diagnoses AS d ON d.id = w.diagnosis_id").
		Join("JOIN cases AS c ON c.id = d.case_id").
		Where("w.creator_id = ?", userID).
		Where("j.outcome IN (?)", bun.In([]casedomain.Outcome{casedomain.OutcomeRight, casedomain.OutcomeWrong})).
		OrderExpr("j.judged_at ASC, d.seq ASC, w.created_at ASC, w.id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, bundb.ClassifyError("calibrationdb.JudgedWagersForUser", err)
	}
	return rows, nil
}
