package feeddb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/dxwager/db/bundb"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new feed repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

const interestSetQuery = `
SELECT c.id FROM cases AS c WHERE c.creator_id = ?0
UNION
SELECT d.case_id FROM wagers AS w JOIN diagnoses AS d ON d.id = w.diagnosis_id WHERE w.creator_id = ?0
UNION
SELECT d.case_id FROM judgements AS j JOIN diagnoses AS d ON d.id = j.diagnosis_id WHERE j.judged_by = ?0
UNION
SELECT cm.case_id FROM comments AS cm WHERE cm.creator_id = ?0`

func (r *Impl) InterestSet(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]uuid.UUID, error) {
	db = r.resolveDB(db)
	ids := []uuid.UUID{}
	if err := db.NewRaw(interestSetQuery, userID).Scan(ctx, &ids); err != nil {
		return nil, bundb.ClassifyError("feeddb.InterestSet", err)
	}
	return ids, nil
}

func (r *Impl) JudgementEvents(ctx context.Context, db bun.IDB, caseIDs []uuid.UUID, limit int) ([]JudgementRow, error) {
	db = r.resolveDB(db)
	var rows []JudgementRow
	err := db.NewSelect().
		TableExpr("judgements AS j").
		ColumnExpr("c.id AS case_id").
		ColumnExpr("c.reference").
		ColumnExpr("u.id AS user_id").
		ColumnExpr("u.name AS user_name").
		ColumnExpr("d.name AS diagnosis").
		ColumnExpr("j.outcome").
		ColumnExpr("j.judged_at AS ts").
		Join("JOIN diagnoses AS d ON d.id = j.diagnosis_id").
		Join("JOIN cases AS c ON c.id = d.case_id").
		Join("JOIN users AS u ON u.id = j.judged_by").
		Where("c.id IN (?)", bun.In(caseIDs)).
		OrderExpr("j.judged_at DESC").
		Limit(limit).
		Scan(ctx, &rows)
	if err != nil {
		return nil, bundb.ClassifyError("feeddb.JudgementEvents", err)
	}
	return rows, nil
}

func (r *Impl) WagerEvents(ctx context.Context, db bun.IDB, caseIDs []uuid.UUID, limit int) ([]WagerRow, error) {
	db = r.resolveDB(db)
	var rows []WagerRow
	err := db.NewSelect().
		TableExpr("wagers AS w").
		ColumnExpr("c.id AS case_id").
		ColumnExpr("c.reference").
		ColumnExpr("u.id AS user_id").
		ColumnExpr("u.name AS user_name").
		ColumnExpr("d.name AS diagnosis").
		ColumnExpr("w.confidence").
		ColumnExpr("w.created_at AS ts").
		Join("JOIN diagnoses AS d ON d.id = w.diagnosis_id").
		Join("JOIN cases AS c ON c.id = d.case_id").
		Join("JOIN users AS u ON u.id = w.creator_id").
		Where("c.id IN (?)", bun.In(caseIDs)).
		OrderExpr("w.created_at DESC").
		Limit(limit).
		Scan(ctx, &rows)
	if err != nil {
		return nil, bundb.ClassifyError("feeddb.WagerEvents", err)
	}
	return rows, nil
}

func (r *Impl) CommentEvents(ctx context.Context, db bun.IDB, caseIDs []uuid.UUID, limit int) ([]CommentRow, error) {
	db = r.resolveDB(db)
	var rows []CommentRow
	err := db.NewSelect().
		TableExpr("comments AS cm").
		ColumnExpr("c.id AS case_id").
		ColumnExpr("c.reference").
		ColumnExpr("u.id AS user_id").
		ColumnExpr("u.name AS user_name").
		ColumnExpr("cm.text").
		ColumnExpr("cm.created_at AS ts").
		Join("JOIN cases AS c ON c.id = cm.case_id").
		Join("JOIN users AS u ON u.id = c.creator_id").
		Where("c.id IN (?)", bun.In(caseIDs)).
		OrderExpr("cm.created_at DESC").
		Limit(limit).
		Scan(ctx, &rows)
	if err != nil {
		return nil, bundb.ClassifyError("feeddb.CommentEvents", err)
	}
	return rows, nil
}

func (r *Impl) DeadlineEvents(ctx context.Context, db bun.IDB, caseIDs []uuid.UUID, now time.Time, limit int) ([]DeadlineRow, error) {
	db = r.resolveDB(db)
	var rows []DeadlineRow
	err := db.NewSelect().
		TableExpr("cases AS c").
		ColumnExpr("c.id AS case_id").
		ColumnExpr("c.reference").
		ColumnExpr("c.deadline AS ts").
		Where("c.id IN (?)", bun.In(caseIDs)).
		Where("c.deadline < ?", now).
		OrderExpr("c.deadline DESC").
		Limit(limit).
		Scan(ctx, &rows)
	if err != nil {
		return nil, bundb.ClassifyError("feeddb.DeadlineEvents", err)
	}
	return rows, nil
}

func (r *Impl) GroupCaseEvents(ctx context.Context, db bun.IDB, userID uuid.UUID, exclude []uuid.UUID, limit int) ([]GroupCaseRow, error) {
	db = r.resolveDB(db)
	var rows []GroupCaseRow
	q := db.NewSelect().
		TableExpr("cases AS c").
		ColumnExpr("c.id AS case_id").
		ColumnExpr("c.reference").
		ColumnExpr("u.id AS user_id").
		ColumnExpr("u.name AS user_name").
		ColumnExpr("g.id AS group_id").
		ColumnExpr("g.name AS group_name").
		ColumnExpr("c.created_at AS ts").
		Join("JOIN groups AS g ON g.id = c.group_id").
		Join("JOIN memberships AS m ON m.group_id = g.id").
		Join("JOIN users AS u ON u.id = c.creator_id").
		Where("m.user_id = ?", userID)
	if len(exclude) > 0 {
		q = q.Where("c.id NOT IN (?)", bun.In(exclude))
	}
	err := q.OrderExpr("c.created_at DESC").
		Limit(limit).
		Scan(ctx, &rows)
	if err != nil {
		return nil, bundb.ClassifyError("feeddb.GroupCaseEvents", err)
	}
	return rows, nil
}
