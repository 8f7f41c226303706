package userservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	userdb "github.com/Black-And-White-Club/dxwager/app/modules/user/infrastructure/repositories"
)

// ------------------------
// Fake User Repo
// ------------------------

type FakeUserRepo struct {
	trace []string

	CreateUserFunc     func(ctx context.Context, db bun.IDB, user *userdb.User) error
	GetUserByIDFunc    func(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.User, error)
	GetUserByNameFunc  func(ctx context.Context, db bun.IDB, name string) (*userdb.User, error)
	ListUsersFunc      func(ctx context.Context, db bun.IDB) ([]userdb.User, error)
	CreateGroupFunc    func(ctx context.Context, db bun.IDB, group *userdb.Group) error
	GetGroupByIDFunc   func(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.Group, error)
	ListGroupsFunc     func(ctx context.Context, db bun.IDB) ([]userdb.Group, error)
	AddMembershipFunc  func(ctx context.Context, db bun.IDB, membership *userdb.Membership) error
	GroupsForUserFunc  func(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]userdb.Group, error)
	MembersOfGroupFunc func(ctx context.Context, db bun.IDB, groupID uuid.UUID) ([]userdb.User, error)
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{trace: []string{}}
}

func (f *FakeUserRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeUserRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// --- Repository Interface Implementation ---

func (f *FakeUserRepo) CreateUser(ctx context.Context, db bun.IDB, user *userdb.User) error {
	f.record("CreateUser")
	if f.CreateUserFunc != nil {
		return f.CreateUserFunc(ctx, db, user)
	}
	return nil
}

func (f *FakeUserRepo) GetUserByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.User, error) {
	f.record("GetUserByID")
	if f.GetUserByIDFunc != nil {
		return f.GetUserByIDFunc(ctx, db, id)
	}
	return nil, userdb.ErrUserNotFound
}

func (f *FakeUserRepo) GetUserByName(ctx context.Context, db bun.IDB, name string) (*userdb.User, error) {
	f.record("GetUserByName")
	if f.GetUserByNameFunc != nil {
		return f.GetUserByNameFunc(ctx, db, name)
	}
	return nil, userdb.ErrUserNotFound
}

func (f *FakeUserRepo) ListUsers(ctx context.Context, db bun.IDB) ([]userdb.User, error) {
	f.record("ListUsers")
	if f.ListUsersFunc != nil {
		return f.ListUsersFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeUserRepo) CreateGroup(ctx context.Context, db bun.IDB, group *userdb.Group) error {
	f.record("CreateGroup")
	if f.CreateGroupFunc != nil {
		return f.CreateGroupFunc(ctx, db, group)
	}
	return nil
}

func (f *FakeUserRepo) GetGroupByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.Group, error) {
	f.record("GetGroupByID")
	if f.GetGroupByIDFunc != nil {
		return f.GetGroupByIDFunc(ctx, db, id)
	}
	return nil, userdb.ErrGroupNotFound
}

func (f *FakeUserRepo) ListGroups(ctx context.Context, db bun.IDB) ([]userdb.Group, error) {
	f.record("ListGroups")
	if f.ListGroupsFunc != nil {
		return f.ListGroupsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeUserRepo) AddMembership(ctx context.Context, db bun.IDB, membership *userdb.Membership) error {
	f.record("AddMembership")
	if f.AddMembershipFunc != nil {
		return f.AddMembershipFunc(ctx, db, membership)
	}
	return nil
}

func (f *FakeUserRepo) GroupsForUser(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]userdb.Group, error) {
	f.record("GroupsForUser")
	if f.GroupsForUserFunc != nil {
		return f.GroupsForUserFunc(ctx, db, userID)
	}
	return nil, nil
}

func (f *FakeUserRepo) MembersOfGroup(ctx context.Context, db bun.IDB, groupID uuid.UUID) ([]userdb.User, error) {
	f.record("MembersOfGroup")
	if f.MembersOfGroupFunc != nil {
		return f.MembersOfGroupFunc(ctx, db, groupID)
	}
	return nil, nil
}

var _ userdb.Repository = (*FakeUserRepo)(nil)
