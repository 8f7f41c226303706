package caseservice

import (
	"context"

	"github.com/google/uuid"

	casedomain "github.com/Black-And-White-Club/dxwager/app/modules/cases/domain"
	casedb "github.com/Black-And-White-Club/dxwager/app/modules/cases/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
)

// Service defines the contract for case operations.
//
// Operations on an existing case assert the actor's standing first and return
// an *apperrors.AuthorizationError when they have none.
type Service interface {
	// CreateCase inserts a case with its diagnoses and the creator's wagers in
	// one transaction and returns the new case id.
	CreateCase(ctx context.Context, req CreateCaseRequest) (uuid.UUID, error)

	// ImportCases inserts a batch of historical cases in one transaction and
	// returns how many were imported. Any bad record rolls back the whole batch.
	ImportCases(ctx context.Context, userID uuid.UUID, cases []ImportedCase) (int, error)

	AddDiagnosis(ctx context.Context, actor identity.Identity, caseID uuid.UUID, name string, confidence int) (*Diagnosis, error)
	AddWager(ctx context.Context, actor identity.Identity, diagnosisID uuid.UUID, confidence int) (*Wager, error)
	JudgeOutcome(ctx context.Context, actor identity.Identity, diagnosisID uuid.UUID, outcome casedomain.Outcome) (*Judgement, error)
	AddComment(ctx context.Context, actor identity.Identity, caseID uuid.UUID, text string) (*Comment, error)
	AddTag(ctx context.Context, actor identity.Identity, caseID uuid.UUID, text string) error
	ChangeGroup(ctx context.Context, actor identity.Identity, caseID uuid.UUID, groupID *uuid.UUID) (*uuid.UUID, error)

	// ChangeDeadline accepts RFC 3339, a bare date or a phrase such as "in 3 days".
	ChangeDeadline(ctx context.Context, actor identity.Identity, caseID uuid.UUID, deadline string) (*Case, error)

	GetCase(ctx context.Context, actor identity.Identity, caseID uuid.UUID) (*CaseDetail, error)
	ListCases(ctx context.Context, actorID uuid.UUID, filter casedb.CaseListFilter) ([]Case, error)
	CasesForGroup(ctx context.Context, groupID uuid.UUID) ([]Case, error)
	TagsForUser(ctx context.Context, userID uuid.UUID) ([]string, error)
	Predictions(ctx context.Context, userID uuid.UUID, filter casedb.OutcomeFilter) ([]Prediction, error)
}
