package userdb

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/dxwager/db/bundb"
)

func (r *Impl) CreateGroup(ctx context.Context, db bun.IDB, group *Group) error {
	db = r.resolveDB(db)
	if group.ID == uuid.Nil {
		group.ID = uuid.New()
	}
	group.Name = strings.TrimSpace(group.Name)
	if _, err := db.NewInsert().Model(group).Returning("created_at").Exec(ctx); err != nil {
		return bundb.ClassifyError("userdb.CreateGroup", err)
	}
	return nil
}

func (r *Impl) GetGroupByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Group, error) {
	db = r.resolveDB(db)
	group := new(Group)
	if err := db.NewSelect().Model(group).Where("g.id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, bundb.ClassifyError("userdb.GetGroupByID", err)
	}
	return group, nil
}

func (r *Impl) ListGroups(ctx context.Context, db bun.IDB) ([]Group, error) {
	db = r.resolveDB(db)
	var groups []Group
	if err := db.NewSelect().Model(&groups).OrderExpr("g.name ASC").Scan(ctx); err != nil {
		return nil, bundb.ClassifyError("userdb.ListGroups", err)
	}
	return groups, nil
}

func (r *Impl) AddMembership(ctx context.Context, db bun.IDB, membership *Membership) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(membership).Returning("joined_at").Exec(ctx); err != nil {
		return bundb.ClassifyError("userdb.AddMembership", err)
	}
	return nil
}

func (r *Impl) GroupsForUser(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]Group, error) {
	db = r.resolveDB(db)
	var groups []Group
	err := db.NewSelect().
		Model(&groups).
		Join("JOIN memberships AS m ON m.group_id = g.id").
		Where("m.user_id = ?", userID).
		OrderExpr("g.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, bundb.ClassifyError("userdb.GroupsForUser", err)
	}
	return groups, nil
}
