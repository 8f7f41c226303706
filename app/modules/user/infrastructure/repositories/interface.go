package userdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for user, group and membership persistence.
// Every method accepts an optional bun.IDB so it can join a caller's transaction;
// nil falls back to the repository's own connection.
//
// Write errors are classified: constraint violations come back as
// *apperrors.ConflictError, everything else as *apperrors.StoreError.
type Repository interface {
	// CreateUser inserts a user. A duplicate name is a conflict.
	CreateUser(ctx context.Context, db bun.IDB, user *User) error

	// GetUserByID returns ErrUserNotFound when no row matches.
	GetUserByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*User, error)

	// GetUserByName looks up a user by normalised name.
	GetUserByName(ctx context.Context, db bun.IDB, name string) (*User, error)

	// ListUsers returns every user ordered by name.
	ListUsers(ctx context.Context, db bun.IDB) ([]User, error)

	CreateGroup(ctx context.Context, db bun.IDB, group *Group) error
	GetGroupByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Group, error)
	ListGroups(ctx context.Context, db bun.IDB) ([]Group, error)

	// AddMembership inserts a (user, group) pair. A duplicate pair is a conflict.
	AddMembership(ctx context.Context, db bun.IDB, membership *Membership) error

	GroupsForUser(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]Group, error)
	MembersOfGroup(ctx context.Context, db bun.IDB, groupID uuid.UUID) ([]User, error)
}
