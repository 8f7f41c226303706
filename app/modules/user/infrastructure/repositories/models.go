package userdb

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is a registered account. Name is stored lower-cased and trimmed.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name          string    `bun:"name,notnull,unique" json:"name"`
	PasswordHash  string    `bun:"password_hash,notnull" json:"-"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

var _ bun.BeforeAppendModelHook = (*User)(nil)

// BeforeAppendModel normalises the name on insert.
func (u *User) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); ok {
		u.Name = NormalizeName(u.Name)
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
	}
	return nil
}

// Group is a set of users who share visibility of the cases assigned to it.
type Group struct {
	bun.BaseModel `bun:"table:groups,alias:g"`
	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name          string    `bun:"name,notnull" json:"name"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// Membership links a user to a group. The pair is the primary key.
type Membership struct {
	bun.BaseModel `bun:"table:memberships,alias:m"`
	UserID        uuid.UUID `bun:"user_id,pk,type:uuid" json:"user_id"`
	GroupID       uuid.UUID `bun:"group_id,pk,type:uuid" json:"group_id"`
	JoinedAt      time.Time `bun:"joined_at,nullzero,notnull,default:current_timestamp" json:"joined_at"`
}

// NormalizeName lower-cases and trims a user name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
