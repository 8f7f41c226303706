package casedb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/dxwager/db/bundb"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new case repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) InsertCase(ctx context.Context, db bun.IDB, c *Case) error {
	db = r.resolveDB(db)
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if _, err := db.NewInsert().Model(c).Returning("created_at").Exec(ctx); err != nil {
		return bundb.ClassifyError("casedb.InsertCase", err)
	}
	return nil
}

func (r *Impl) UpdateCaseGroup(ctx context.Context, db bun.IDB, caseID uuid.UUID, groupID *uuid.UUID) error {
	db = r.resolveDB(db)
	res, err := db.NewUpdate().
		Model((*Case)(nil)).
		Set("group_id = ?", groupID).
		Where("c.id = ?", caseID).
		Exec(ctx)
	if err != nil {
		return bundb.ClassifyError("casedb.UpdateCaseGroup", err)
	}
	return requireRow(res)
}

func (r *Impl) UpdateCaseDeadline(ctx context.Context, db bun.IDB, caseID uuid.UUID, deadline time.Time) error {
	db = r.resolveDB(db)
	res, err := db.NewUpdate().
		Model((*Case)(nil)).
		Set("deadline = ?", deadline).
		Where("c.id = ?", caseID).
		Exec(ctx)
	if err != nil {
		return bundb.ClassifyError("casedb.UpdateCaseDeadline", err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return bundb.ClassifyError("casedb.RowsAffected", err)
	}
	if n == 0 {
		return ErrCaseNotFound
	}
	return nil
}

func (r *Impl) GetCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) (*Case, error) {
	db = r.resolveDB(db)
	c := new(Case)
	if err := db.NewSelect().Model(c).Where("c.id = ?", caseID).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCaseNotFound
		}
		return nil, bundb.ClassifyError("casedb.GetCase", err)
	}
	return c, nil
}

func (r *Impl) ListCasesForUser(ctx context.Context, db bun.IDB, userID uuid.UUID, filter CaseListFilter) ([]Case, error) {
	db = r.resolveDB(db)
	var cases []Case
	err := db.NewSelect().
		Model(&cases).
		Apply(filter.apply(userID)).
		OrderExpr("c.deadline ASC, c.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, bundb.ClassifyError("casedb.ListCasesForUser", err)
	}
	return cases, nil
}

func (r *Impl) CasesForGroup(ctx context.Context, db bun.IDB, groupID uuid.UUID) ([]Case, error) {
	db = r.resolveDB(db)
	var cases []Case
	err := db.NewSelect().
		Model(&cases).
		Where("c.group_id = ?", groupID).
		OrderExpr("c.deadline ASC, c.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, bundb.ClassifyError("casedb.CasesForGroup", err)
	}
	return cases, nil
}
