package casedb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/dxwager/db/bundb"
)

func (r *Impl) InsertDiagnosis(ctx context.Context, db bun.IDB, d *Diagnosis) error {
	db = r.resolveDB(db)
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if _, err := db.NewInsert().Model(d).Returning("seq").Exec(ctx); err != nil {
		return bundb.ClassifyError("casedb.InsertDiagnosis", err)
	}
	return nil
}

func (r *Impl) InsertWager(ctx context.Context, db bun.IDB, w *Wager) error {
	db = r.resolveDB(db)
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if _, err := db.NewInsert().Model(w).Returning("created_at").Exec(ctx); err != nil {
		return bundb.ClassifyError("casedb.InsertWager", err)
	}
	return nil
}

func (r *Impl) InsertJudgement(ctx context.Context, db bun.IDB, j *Judgement) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(j).Returning("judged_at").Exec(ctx); err != nil {
		return bundb.ClassifyError("casedb.InsertJudgement", err)
	}
	return nil
}

func (r *Impl) DiagnosesForCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]Diagnosis, error) {
	db = r.resolveDB(db)
	var diagnoses []Diagnosis
	err := db.NewSelect().
		Model(&diagnoses).
		Where("d.case_id = ?", caseID).
		OrderExpr("d.seq ASC").
		Scan(ctx)
	if err != nil {
		return nil, bundb.ClassifyError("casedb.DiagnosesForCase", err)
	}
	return diagnoses, nil
}

func (r *Impl) WagersForCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]Wager, error) {
	db = r.resolveDB(db)
	var wagers []Wager
	err := db.NewSelect().
		Model(&wagers).
		Join("JOIN diagnoses AS d ON d.id = w.diagnosis_id").
		Where("d.case_id = ?", caseID).
		OrderExpr("w.created_at ASC, w.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, bundb.ClassifyError("casedb.WagersForCase", err)
	}
	return wagers, nil
}

func (r *Impl) JudgementsForCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]Judgement, error) {
	db = r.resolveDB(db)
	var judgements []Judgement
	err := db.NewSelect().
		Model(&judgements).
		Join("JOIN diagnoses AS d ON d.id = j.diagnosis_id").
		Where("d.case_id = ?", caseID).
		Scan(ctx)
	if err != nil {
		return nil, bundb.ClassifyError("casedb.JudgementsForCase", err)
	}
	return judgements, nil
}

func (r *Impl) Predictions(ctx context.Context, db bun.IDB, userID uuid.UUID, filter OutcomeFilter) ([]Prediction, error) {
	db = r.resolveDB(db)
	var rows []Prediction
	err := db.NewSelect().
		TableExpr("wagers AS w").
		ColumnExpr("w.id AS wager_id, w.confidence, w.created_at AS wagered_at").
		ColumnExpr("d.id AS diagnosis_id, d.name AS diagnosis_name").
		ColumnExpr("c.id AS case_id, c.reference").
		ColumnExpr("j.outcome, j.judged_at").
		Join("JOIN diagnoses AS d ON d.id = w.diagnosis_id").
		Join("JOIN cases AS c ON c.id = d.case_id").
		Join("LEFT JOIN judgements AS j ON j.diagnosis_id = d.id").
		Where("w.creator_id = ?", userID).
		Apply(filter.Apply).
		OrderExpr("w.created_at DESC, w.id DESC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, bundb.ClassifyError("casedb.Predictions", err)
	}
	return rows, nil
}
