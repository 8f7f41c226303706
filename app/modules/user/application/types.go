package userservice

import (
	"time"

	"github.com/google/uuid"

	userdb "github.com/Black-And-White-Club/dxwager/app/modules/user/infrastructure/repositories"
)

// User is the public view of an account.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Group is the public view of a group.
type Group struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserRequest carries a new account's credentials.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"notblank,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// CreateGroupRequest names a new group.
type CreateGroupRequest struct {
	Name string `json:"name" validate:"notblank,max=128"`
}

func toUser(u *userdb.User) *User {
	return &User{ID: u.ID, Name: u.Name, CreatedAt: u.CreatedAt}
}

func toUsers(rows []userdb.User) []User {
	out := make([]User, 0, len(rows))
	for i := range rows {
		out = append(out, *toUser(&rows[i]))
	}
	return out
}

func toGroup(g *userdb.Group) *Group {
	return &Group{ID: g.ID, Name: g.Name, CreatedAt: g.CreatedAt}
}

func toGroups(rows []userdb.Group) []Group {
	out := make([]Group, 0, len(rows))
	for i := range rows {
		out = append(out, *toGroup(&rows[i]))
	}
	return out
}
