package casehandlers

import (
	"context"

	"github.com/google/uuid"

	caseservice "github.com/Black-And-White-Club/dxwager/app/modules/cases/application"
	casedomain "github.com/Black-And-White-Club/dxwager/app/modules/cases/domain"
	casedb "github.com/Black-And-White-Club/dxwager/app/modules/cases/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
)

// FakeService is a programmable caseservice.Service.
type FakeService struct {
	CreateCaseFunc     func(ctx context.Context, req caseservice.CreateCaseRequest) (uuid.UUID, error)
	ImportCasesFunc    func(ctx context.Context, userID uuid.UUID, cases []caseservice.ImportedCase) (int, error)
	AddDiagnosisFunc   func(ctx context.Context, actor identity.Identity, caseID uuid.UUID, name string, confidence int) (*caseservice.Diagnosis, error)
	AddWagerFunc       func(ctx context.Context, actor identity.Identity, diagnosisID uuid.UUID, confidence int) (*caseservice.Wager, error)
	JudgeOutcomeFunc   func(ctx context.Context, actor identity.Identity, diagnosisID uuid.UUID, outcome casedomain.Outcome) (*caseservice.Judgement, error)
	AddCommentFunc     func(ctx context.Context, actor identity.Identity, caseID uuid.UUID, text string) (*caseservice.Comment, error)
	AddTagFunc         func(ctx context.Context, actor identity.Identity, caseID uuid.UUID, text string) error
	ChangeGroupFunc    func(ctx context.Context, actor identity.Identity, caseID uuid.UUID, groupID *uuid.UUID) (*uuid.UUID, error)
	ChangeDeadlineFunc func(ctx context.Context, actor identity.Identity, caseID uuid.UUID, deadline string) (*caseservice.Case, error)
	GetCaseFunc        func(ctx context.Context, actor identity.Identity, caseID uuid.UUID) (*caseservice.CaseDetail, error)
	ListCasesFunc      func(ctx context.Context, actorID uuid.UUID, filter casedb.CaseListFilter) ([]caseservice.Case, error)
	CasesForGroupFunc  func(ctx context.Context, groupID uuid.UUID) ([]caseservice.Case, error)
	TagsForUserFunc    func(ctx context.Context, userID uuid.UUID) ([]string, error)
	PredictionsFunc    func(ctx context.Context, userID uuid.UUID, filter casedb.OutcomeFilter) ([]caseservice.Prediction, error)
}

var _ caseservice.Service = (*FakeService)(nil)

func (f *FakeService) CreateCase(ctx context.Context, req caseservice.CreateCaseRequest) (uuid.UUID, error) {
	if f.CreateCaseFunc != nil {
		return f.CreateCaseFunc(ctx, req)
	}
	return uuid.New(), nil
}

func (f *FakeService) ImportCases(ctx context.Context, userID uuid.UUID, cases []caseservice.ImportedCase) (int, error) {
	if f.ImportCasesFunc != nil {
		return f.ImportCasesFunc(ctx, userID, cases)
	}
	return len(cases), nil
}

func (f *FakeService) AddDiagnosis(ctx context.Context, actor identity.Identity, caseID uuid.UUID, name string, confidence int) (*caseservice.Diagnosis, error) {
	if f.AddDiagnosisFunc != nil {
		return f.AddDiagnosisFunc(ctx, actor, caseID, name, confidence)
	}
	return &caseservice.Diagnosis{ID: uuid.New(), Name: name, CaseID: caseID}, nil
}

func (f *FakeService) AddWager(ctx context.Context, actor identity.Identity, diagnosisID uuid.UUID, confidence int) (*caseservice.Wager, error) {
	if f.AddWagerFunc != nil {
		return f.AddWagerFunc(ctx, actor, diagnosisID, confidence)
	}
	return &caseservice.Wager{ID: uuid.New(), CreatorID: actor.ID, DiagnosisID: diagnosisID, Confidence: confidence}, nil
}

func (f *FakeService) JudgeOutcome(ctx context.Context, actor identity.Identity, diagnosisID uuid.UUID, outcome casedomain.Outcome) (*caseservice.Judgement, error) {
	if f.JudgeOutcomeFunc != nil {
		return f.JudgeOutcomeFunc(ctx, actor, diagnosisID, outcome)
	}
	return &caseservice.Judgement{DiagnosisID: diagnosisID, JudgedBy: actor.ID, Outcome: outcome}, nil
}

func (f *FakeService) AddComment(ctx context.Context, actor identity.Identity, caseID uuid.UUID, text string) (*caseservice.Comment, error) {
	if f.AddCommentFunc != nil {
		return f.AddCommentFunc(ctx, actor, caseID, text)
	}
	return &caseservice.Comment{ID: uuid.New(), CreatorID: actor.ID, CaseID: caseID, Text: text}, nil
}

func (f *FakeService) AddTag(ctx context.Context, actor identity.Identity, caseID uuid.UUID, text string) error {
	if f.AddTagFunc != nil {
		return f.AddTagFunc(ctx, actor, caseID, text)
	}
	return nil
}

func (f *FakeService) ChangeGroup(ctx context.Context, actor identity.Identity, caseID uuid.UUID, groupID *uuid.UUID) (*uuid.UUID, error) {
	if f.ChangeGroupFunc != nil {
		return f.ChangeGroupFunc(ctx, actor, caseID, groupID)
	}
	return groupID, nil
}

func (f *FakeService) ChangeDeadline(ctx context.Context, actor identity.Identity, caseID uuid.UUID, deadline string) (*caseservice.Case, error) {
	if f.ChangeDeadlineFunc != nil {
		return f.ChangeDeadlineFunc(ctx, actor, caseID, deadline)
	}
	return &caseservice.Case{ID: caseID}, nil
}

func (f *FakeService) GetCase(ctx context.Context, actor identity.Identity, caseID uuid.UUID) (*caseservice.CaseDetail, error) {
	if f.GetCaseFunc != nil {
		return f.GetCaseFunc(ctx, actor, caseID)
	}
	return nil, apperrors.ErrNotFound
}

func (f *FakeService) ListCases(ctx context.Context, actorID uuid.UUID, filter casedb.CaseListFilter) ([]caseservice.Case, error) {
	if f.ListCasesFunc != nil {
		return f.ListCasesFunc(ctx, actorID, filter)
	}
	return []caseservice.Case{}, nil
}

func (f *FakeService) CasesForGroup(ctx context.Context, groupID uuid.UUID) ([]caseservice.Case, error) {
	if f.CasesForGroupFunc != nil {
		return f.CasesForGroupFunc(ctx, groupID)
	}
	return []caseservice.Case{}, nil
}

func (f *FakeService) TagsForUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if f.TagsForUserFunc != nil {
		return f.TagsForUserFunc(ctx, userID)
	}
	return []string{}, nil
}

func (f *FakeService) Predictions(ctx context.Context, userID uuid.UUID, filter casedb.OutcomeFilter) ([]caseservice.Prediction, error) {
	if f.PredictionsFunc != nil {
		return f.PredictionsFunc(ctx, userID, filter)
	}
	return []caseservice.Prediction{}, nil
}
