package userservice

import (
	"context"

	"github.com/google/uuid"
)

// Service manages users, groups and group membership.
type Service interface {
	// Users
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)

	// Authenticate verifies a name/password pair. Any mismatch is ErrInvalidCredentials.
	Authenticate(ctx context.Context, name, password string) (*User, error)

	// Groups
	CreateGroup(ctx context.Context, req CreateGroupRequest) (*Group, error)
	GetGroup(ctx context.Context, id uuid.UUID) (*Group, error)
	ListGroups(ctx context.Context) ([]Group, error)
	AddUserToGroup(ctx context.Context, userID, groupID uuid.UUID) error
	GroupsForUser(ctx context.Context, userID uuid.UUID) ([]Group, error)
	MembersOfGroup(ctx context.Context, groupID uuid.UUID) ([]User, error)
}
