package userdb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/dxwager/db/bundb"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new user repository.
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

func (r *Impl) CreateUser(ctx context.Context, db bun.IDB, user *User) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(user).Returning("created_at").Exec(ctx); err != nil {
		return bundb.ClassifyError("userdb.CreateUser", err)
	}
	return nil
}

func (r *Impl) GetUserByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*User, error) {
	db = r.resolveDB(db)
	user := new(User)
	err := db.NewSelect().Model(user).Where("u.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, bundb.ClassifyError("userdb.GetUserByID", err)
	}
	return user, nil
}

func (r *Impl) GetUserByName(ctx context.Context, db bun.IDB, name string) (*User, error) {
	db = r.resolveDB(db)
	user := new(User)
	err := db.NewSelect().Model(user).Where("u.name = ?", NormalizeName(name)).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, bundb.ClassifyError("userdb.GetUserByName", err)
	}
	return user, nil
}

func (r *Impl) ListUsers(ctx context.Context, db bun.IDB) ([]User, error) {
	db = r.resolveDB(db)
	var users []User
	if err := db.NewSelect().Model(&users).OrderExpr("u.name ASC").Scan(ctx); err != nil {
		return nil, bundb.ClassifyError("userdb.ListUsers", err)
	}
	return users, nil
}

func (r *Impl) MembersOfGroup(ctx context.Context, db bun.IDB, groupID uuid.UUID) ([]User, error) {
	db = r.resolveDB(db)
	var users []User
	err := db.NewSelect().
		Model(&users).
		Join("JOIN memberships AS m ON m.user_id = u.id").
		Where("m.group_id = ?", groupID).
		OrderExpr("u.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, bundb.ClassifyError("userdb.MembersOfGroup", err)
	}
	return users, nil
}
