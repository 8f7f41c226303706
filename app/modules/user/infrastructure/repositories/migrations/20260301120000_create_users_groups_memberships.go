package usermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating users, groups and memberships tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS users (
					id UUID PRIMARY KEY,
					name VARCHAR(64) NOT NULL UNIQUE,
					password_hash TEXT NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create users table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS groups (
					id UUID PRIMARY KEY,
					name VARCHAR(128) NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create groups table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS memberships (
					user_id UUID NOT NULL REFERENCES users(id),
					group_id UUID NOT NULL REFERENCES groups(id),
					joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					PRIMARY KEY (user_id, group_id)
				);
				CREATE INDEX IF NOT EXISTS idx_memberships_group_id ON memberships(group_id);
			`); err != nil {
				return fmt.Errorf("failed to create memberships table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping users, groups and memberships tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS memberships;`); err != nil {
				return fmt.Errorf("failed to drop memberships table: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS groups;`); err != nil {
				return fmt.Errorf("failed to drop groups table: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS users;`); err != nil {
				return fmt.Errorf("failed to drop users table: %w", err)
			}
			return nil
		})
	})
}
