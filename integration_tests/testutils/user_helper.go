package testutils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	userdb "github.com/Black-And-White-Club/dxwager/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
)

// InsertUser inserts a user directly, bypassing password hashing.
func InsertUser(t *testing.T, db *bun.DB, name string) identity.Identity {
	t.Helper()
	user := &userdb.User{ID: uuid.New(), Name: name, PasswordHash: "x"}
	if err := userdb.NewRepository(db).CreateUser(context.Background(), db, user); err != nil {
		t.Fatalf("failed to insert user %q: %v", name, err)
	}
	return identity.Identity{ID: user.ID, Name: user.Name}
}

// InsertGroup inserts a group and adds the given members to it.
func InsertGroup(t *testing.T, db *bun.DB, name string, members ...uuid.UUID) uuid.UUID {
	t.Helper()
	repo := userdb.NewRepository(db)
	group := &userdb.Group{ID: uuid.New(), Name: name}
	if err := repo.CreateGroup(context.Background(), db, group); err != nil {
		t.Fatalf("failed to insert group %q: %v", name, err)
	}
	for _, member := range members {
		if err := repo.AddMembership(context.Background(), db, &userdb.Membership{UserID: member, GroupID: group.ID}); err != nil {
			t.Fatalf("failed to add %s to group %q: %v", member, name, err)
		}
	}
	return group.ID
}
