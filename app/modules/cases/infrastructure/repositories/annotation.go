package casedb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/dxwager/db/bundb"
)

func (r *Impl) InsertComment(ctx context.Context, db bun.IDB, c *Comment) error {
	db = r.resolveDB(db)
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if _, err := db.NewInsert().Model(c).Returning("created_at").Exec(ctx); err != nil {
		return bundb.ClassifyError("casedb.InsertComment", err)
	}
	return nil
}

func (r *Impl) InsertTag(ctx context.Context, db bun.IDB, t *Tag) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(t).On("CONFLICT (case_id, text) DO NOTHING").Exec(ctx); err != nil {
		return bundb.ClassifyError("casedb.InsertTag", err)
	}
	return nil
}

func (r *Impl) CommentsForCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]Comment, error) {
	db = r.resolveDB(db)
	var comments []Comment
	err := db.NewSelect().
		Model(&comments).
		Where("cm.case_id = ?", caseID).
		OrderExpr("cm.created_at ASC, cm.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, bundb.ClassifyError("casedb.CommentsForCase", err)
	}
	return comments, nil
}

func (r *Impl) TagsForCase(ctx context.Context, db bun.IDB, caseID uuid.UUID) ([]string, error) {
	db = r.resolveDB(db)
	var tags []string
	err := db.NewSelect().
		Model((*Tag)(nil)).
		Column("text").
		Where("t.case_id = ?", caseID).
		OrderExpr("t.text ASC").
		Scan(ctx, &tags)
	if err != nil {
		return nil, bundb.ClassifyError("casedb.TagsForCase", err)
	}
	return tags, nil
}

func (r *Impl) TagsForUser(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]string, error) {
	db = r.resolveDB(db)
	var tags []string
	err := db.NewSelect().
		Model((*Tag)(nil)).
		Distinct().
		ColumnExpr("t.text").
		Join("JOIN cases AS c ON c.id = t.case_id").
		Where("c.creator_id = ? OR c.group_id IN (SELECT m.group_id FROM memberships AS m WHERE m.user_id = ?)", userID, userID).
		OrderExpr("t.text ASC").
		Scan(ctx, &tags)
	if err != nil {
		return nil, bundb.ClassifyError("casedb.TagsForUser", err)
	}
	return tags, nil
}
