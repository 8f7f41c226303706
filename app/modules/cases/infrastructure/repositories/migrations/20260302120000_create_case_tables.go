package casemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating case tables...")

		statements := []struct {
			name string
			sql  string
		}{
			{"cases", `
				CREATE TABLE IF NOT EXISTS cases (
					id UUID PRIMARY KEY,
					reference TEXT NOT NULL,
					creator_id UUID NOT NULL REFERENCES users(id),
					group_id UUID REFERENCES groups(id),
					deadline TIMESTAMPTZ NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_cases_creator_id ON cases(creator_id);
				CREATE INDEX IF NOT EXISTS idx_cases_group_id ON cases(group_id);
			`},
			{"diagnoses", `
				CREATE TABLE IF NOT EXISTS diagnoses (
					id UUID PRIMARY KEY,
					seq BIGSERIAL NOT NULL UNIQUE,
					name TEXT NOT NULL,
					case_id UUID NOT NULL REFERENCES cases(id)
				);
				CREATE INDEX IF NOT EXISTS idx_diagnoses_case_id ON diagnoses(case_id);
			`},
			{"wagers", `
				CREATE TABLE IF NOT EXISTS wagers (
					id UUID PRIMARY KEY,
					creator_id UUID NOT NULL REFERENCES users(id),
					diagnosis_id UUID NOT NULL REFERENCES diagnoses(id),
					confidence INTEGER NOT NULL CONSTRAINT wagers_confidence_range CHECK (confidence BETWEEN 0 AND 100),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_wagers_creator_id ON wagers(creator_id);
				CREATE INDEX IF NOT EXISTS idx_wagers_diagnosis_id ON wagers(diagnosis_id);
			`},
			{"judgements", `
				CREATE TABLE IF NOT EXISTS judgements (
					diagnosis_id UUID PRIMARY KEY REFERENCES diagnoses(id),
					judged_by UUID NOT NULL REFERENCES users(id),
					outcome TEXT NOT NULL CONSTRAINT judgements_outcome_known CHECK (outcome IN ('RIGHT', 'WRONG', 'INDETERMINATE')),
					judged_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`},
			{"comments", `
				CREATE TABLE IF NOT EXISTS comments (
					id UUID PRIMARY KEY,
					creator_id UUID NOT NULL REFERENCES users(id),
					case_id UUID NOT NULL REFERENCES cases(id),
					text TEXT NOT NULL CONSTRAINT comments_text_not_empty CHECK (length(text) > 0),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_comments_case_id ON comments(case_id);
			`},
			{"tags", `
				CREATE TABLE IF NOT EXISTS tags (
					case_id UUID NOT NULL REFERENCES cases(id),
					text TEXT NOT NULL,
					PRIMARY KEY (case_id, text)
				);
			`},
		}

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			for _, stmt := range statements {
				if _, err := tx.ExecContext(ctx, stmt.sql); err != nil {
					return fmt.Errorf("failed to create %s table: %w", stmt.name, err)
				}
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping case tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			for _, table := range []string{"tags", "comments", "judgements", "wagers", "diagnoses", "cases"} {
				if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
					return fmt.Errorf("failed to drop %s table: %w", table, err)
				}
			}
			return nil
		})
	})
}
