package accessservice

import (
	"context"

	"github.com/google/uuid"

	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
)

// Guard decides whether a user has standing on a case: they created it or
// belong to the group it is assigned to.
type Guard interface {
	// AssertStanding returns nil when user has standing on caseID and an
	// *apperrors.AuthorizationError otherwise, including when the case does not exist.
	AssertStanding(ctx context.Context, user identity.Identity, caseID uuid.UUID) error

	// AssertStandingForDiagnosis resolves the diagnosis's case and asserts standing on it.
	AssertStandingForDiagnosis(ctx context.Context, user identity.Identity, diagnosisID uuid.UUID) (uuid.UUID, error)
}
