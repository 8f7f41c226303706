package userhandlers

import (
	"context"

	"github.com/google/uuid"

	userservice "github.com/Black-And-White-Club/dxwager/app/modules/user/application"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	CreateUserFunc     func(ctx context.Context, req userservice.CreateUserRequest) (*userservice.User, error)
	GetUserFunc        func(ctx context.Context, id uuid.UUID) (*userservice.User, error)
	ListUsersFunc      func(ctx context.Context) ([]userservice.User, error)
	AuthenticateFunc   func(ctx context.Context, name, password string) (*userservice.User, error)
	CreateGroupFunc    func(ctx context.Context, req userservice.CreateGroupRequest) (*userservice.Group, error)
	GetGroupFunc       func(ctx context.Context, id uuid.UUID) (*userservice.Group, error)
	ListGroupsFunc     func(ctx context.Context) ([]userservice.Group, error)
	AddUserToGroupFunc func(ctx context.Context, userID, groupID uuid.UUID) error
	GroupsForUserFunc  func(ctx context.Context, userID uuid.UUID) ([]userservice.Group, error)
	MembersOfGroupFunc func(ctx context.Context, groupID uuid.UUID) ([]userservice.User, error)
}

var _ userservice.Service = (*FakeService)(nil)

func (f *FakeService) CreateUser(ctx context.Context, req userservice.CreateUserRequest) (*userservice.User, error) {
	if f.CreateUserFunc != nil {
		return f.CreateUserFunc(ctx, req)
	}
	return &userservice.User{ID: uuid.New(), Name: req.Name}, nil
}

func (f *FakeService) GetUser(ctx context.Context, id uuid.UUID) (*userservice.User, error) {
	if f.GetUserFunc != nil {
		return f.GetUserFunc(ctx, id)
	}
	return nil, apperrors.ErrNotFound
}

func (f *FakeService) ListUsers(ctx context.Context) ([]userservice.User, error) {
	if f.ListUsersFunc != nil {
		return f.ListUsersFunc(ctx)
	}
	return []userservice.User{}, nil
}

func (f *FakeService) Authenticate(ctx context.Context, name, password string) (*userservice.User, error) {
	if f.AuthenticateFunc != nil {
		return f.AuthenticateFunc(ctx, name, password)
	}
	return nil, userservice.ErrInvalidCredentials
}

func (f *FakeService) CreateGroup(ctx context.Context, req userservice.CreateGroupRequest) (*userservice.Group, error) {
	if f.CreateGroupFunc != nil {
		return f.CreateGroupFunc(ctx, req)
	}
	return &userservice.Group{ID: uuid.New(), Name: req.Name}, nil
}

func (f *FakeService) GetGroup(ctx context.Context, id uuid.UUID) (*userservice.Group, error) {
	if f.GetGroupFunc != nil {
		return f.GetGroupFunc(ctx, id)
	}
	return nil, apperrors.ErrNotFound
}

func (f *FakeService) ListGroups(ctx context.Context) ([]userservice.Group, error) {
	if f.ListGroupsFunc != nil {
		return f.ListGroupsFunc(ctx)
	}
	return []userservice.Group{}, nil
}

func (f *FakeService) AddUserToGroup(ctx context.Context, userID, groupID uuid.UUID) error {
	if f.AddUserToGroupFunc != nil {
		return f.AddUserToGroupFunc(ctx, userID, groupID)
	}
	return nil
}

func (f *FakeService) GroupsForUser(ctx context.Context, userID uuid.UUID) ([]userservice.Group, error) {
	if f.GroupsForUserFunc != nil {
		return f.GroupsForUserFunc(ctx, userID)
	}
	return []userservice.Group{}, nil
}

func (f *FakeService) MembersOfGroup(ctx context.Context, groupID uuid.UUID) ([]userservice.User, error) {
	if f.MembersOfGroupFunc != nil {
		return f.MembersOfGroupFunc(ctx, groupID)
	}
	return []userservice.User{}, nil
}
