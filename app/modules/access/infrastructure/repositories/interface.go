package accessdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository answers standing questions against the case and membership tables.
type Repository interface {
	// HasStanding reports whether userID created caseID or belongs to its group.
	// A case that does not exist yields false.
	HasStanding(ctx context.Context, db bun.IDB, userID, caseID uuid.UUID) (bool, error)

	// CaseForDiagnosis resolves the case a diagnosis belongs to.
	CaseForDiagnosis(ctx context.Context, db bun.IDB, diagnosisID uuid.UUID) (uuid.UUID, error)
}
