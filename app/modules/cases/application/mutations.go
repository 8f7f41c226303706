package caseservice

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	casedomain "github.com/Black-And-White-Club/dxwager/app/modules/cases/domain"
	casedb "github.com/Black-And-White-Club/dxwager/app/modules/cases/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
	"github.com/Black-And-White-Club/dxwager/app/shared/operations"
	"github.com/Black-And-White-Club/dxwager/app/shared/results"
	"github.com/Black-And-White-Club/dxwager/app/shared/validation"
)

type wagerInput struct {
	Confidence int `json:"confidence" validate:"min=0,max=100"`
}

// denied turns a guard or lookup rejection into a failure result and passes
// anything else through as an error.
func denied[T any](err error) (results.OperationResult[T, error], error) {
	if apperrors.IsAuthorization(err) || errors.Is(err, apperrors.ErrNotFound) {
		return results.FailureResult[T, error](err), nil
	}
	return results.OperationResult[T, error]{}, err
}

// AddDiagnosis adds a diagnosis to an existing case together with the actor's wager on it.
func (s *CaseService) AddDiagnosis(ctx context.Context, actor identity.Identity, caseID uuid.UUID, name string, confidence int) (*Diagnosis, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "AddDiagnosis", caseID.String(),
		func(ctx context.Context) (results.OperationResult[*Diagnosis, error], error) {
			if err := validation.Struct(PredictionInput{DiagnosisName: name, Confidence: confidence}); err != nil {
				return results.FailureResult[*Diagnosis, error](err), nil
			}
			if err := s.guard.AssertStanding(ctx, actor, caseID); err != nil {
				return denied[*Diagnosis](err)
			}

			d := &casedb.Diagnosis{ID: uuid.New(), Name: strings.TrimSpace(name), CaseID: caseID}
			w := &casedb.Wager{
				ID:          uuid.New(),
				CreatorID:   actor.ID,
				DiagnosisID: d.ID,
				Confidence:  confidence,
				CreatedAt:   s.clock.Now(),
			}
			return operations.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (results.OperationResult[*Diagnosis, error], error) {
				if err := s.repo.InsertDiagnosis(ctx, db, d); err != nil {
					return results.OperationResult[*Diagnosis, error]{}, err
				}
				if err := s.repo.InsertWager(ctx, db, w); err != nil {
					return results.OperationResult[*Diagnosis, error]{}, err
				}
				return results.SuccessResult[*Diagnosis, error](&Diagnosis{
					ID:     d.ID,
					Name:   d.Name,
					CaseID: d.CaseID,
					Wagers: []Wager{toWager(w)},
				}), nil
			})
		}))
}

// AddWager records the actor's confidence in an existing diagnosis.
func (s *CaseService) AddWager(ctx context.Context, actor identity.Identity, diagnosisID uuid.UUID, confidence int) (*Wager, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "AddWager", diagnosisID.String(),
		func(ctx context.Context) (results.OperationResult[*Wager, error], error) {
			if err := validation.Struct(wagerInput{Confidence: confidence}); err != nil {
				return results.FailureResult[*Wager, error](err), nil
			}
			if _, err := s.guard.AssertStandingForDiagnosis(ctx, actor, diagnosisID); err != nil {
				return denied[*Wager](err)
			}

			w := &casedb.Wager{
				ID:          uuid.New(),
				CreatorID:   actor.ID,
				DiagnosisID: diagnosisID,
				Confidence:  confidence,
				CreatedAt:   s.clock.Now(),
			}
			if err := s.repo.InsertWager(ctx, operations.Handle(s.db), w); err != nil {
				return results.OperationResult[*Wager, error]{}, err
			}
			out := toWager(w)
			return results.SuccessResult[*Wager, error](&out), nil
		}))
}

// JudgeOutcome records the verdict on a diagnosis. A diagnosis is judged at most once.
func (s *CaseService) JudgeOutcome(ctx context.Context, actor identity.Identity, diagnosisID uuid.UUID, outcome casedomain.Outcome) (*Judgement, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "JudgeOutcome", diagnosisID.String(),
		func(ctx context.Context) (results.OperationResult[*Judgement, error], error) {
			if !outcome.IsValid() {
				return results.FailureResult[*Judgement, error](&apperrors.ValidationError{
					Field:   "outcome",
					Message: "must be one of [RIGHT WRONG INDETERMINATE]",
				}), nil
			}
			if _, err := s.guard.AssertStandingForDiagnosis(ctx, actor, diagnosisID); err != nil {
				return denied[*Judgement](err)
			}

			j := &casedb.Judgement{
				DiagnosisID: diagnosisID,
				JudgedBy:    actor.ID,
				Outcome:     outcome,
				JudgedAt:    s.clock.Now(),
			}
			if err := s.repo.InsertJudgement(ctx, operations.Handle(s.db), j); err != nil {
				return results.OperationResult[*Judgement, error]{}, err
			}
			return results.SuccessResult[*Judgement, error](toJudgement(j)), nil
		}))
}

// AddComment attaches trimmed text to a case.
func (s *CaseService) AddComment(ctx context.Context, actor identity.Identity, caseID uuid.UUID, text string) (*Comment, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "AddComment", caseID.String(),
		func(ctx context.Context) (results.OperationResult[*Comment, error], error) {
			text = strings.TrimSpace(text)
			if text == "" {
				return results.FailureResult[*Comment, error](&apperrors.ValidationError{Field: "text", Message: "is required"}), nil
			}
			if err := s.guard.AssertStanding(ctx, actor, caseID); err != nil {
				return denied[*Comment](err)
			}

			c := &casedb.Comment{
				ID:        uuid.New(),
				CreatorID: actor.ID,
				CaseID:    caseID,
				Text:      text,
				CreatedAt: s.clock.Now(),
			}
			if err := s.repo.InsertComment(ctx, operations.Handle(s.db), c); err != nil {
				return results.OperationResult[*Comment, error]{}, err
			}
			out := toComment(c)
			return results.SuccessResult[*Comment, error](&out), nil
		}))
}

// AddTag labels a case. Adding a tag the case already has is a no-op.
func (s *CaseService) AddTag(ctx context.Context, actor identity.Identity, caseID uuid.UUID, text string) error {
	_, err := operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "AddTag", caseID.String(),
		func(ctx context.Context) (results.OperationResult[struct{}, error], error) {
			text = strings.TrimSpace(text)
			if text == "" {
				return results.FailureResult[struct{}, error](&apperrors.ValidationError{Field: "text", Message: "is required"}), nil
			}
			if err := s.guard.AssertStanding(ctx, actor, caseID); err != nil {
				return denied[struct{}](err)
			}
			if err := s.repo.InsertTag(ctx, operations.Handle(s.db), &casedb.Tag{CaseID: caseID, Text: text}); err != nil {
				return results.OperationResult[struct{}, error]{}, err
			}
			return results.SuccessResult[struct{}, error](struct{}{}), nil
		}))
	return err
}

// ChangeGroup reassigns a case to groupID, or to no group when groupID is nil.
func (s *CaseService) ChangeGroup(ctx context.Context, actor identity.Identity, caseID uuid.UUID, groupID *uuid.UUID) (*uuid.UUID, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "ChangeGroup", caseID.String(),
		func(ctx context.Context) (results.OperationResult[*uuid.UUID, error], error) {
			if err := s.guard.AssertStanding(ctx, actor, caseID); err != nil {
				return denied[*uuid.UUID](err)
			}
			if err := s.repo.UpdateCaseGroup(ctx, operations.Handle(s.db), caseID, groupID); err != nil {
				if errors.Is(err, casedb.ErrCaseNotFound) {
					return results.FailureResult[*uuid.UUID, error](err), nil
				}
				return results.OperationResult[*uuid.UUID, error]{}, err
			}
			return results.SuccessResult[*uuid.UUID, error](groupID), nil
		}))
}

// ChangeDeadline parses deadline and stores it on the case.
func (s *CaseService) ChangeDeadline(ctx context.Context, actor identity.Identity, caseID uuid.UUID, deadline string) (*Case, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "ChangeDeadline", caseID.String(),
		func(ctx context.Context) (results.OperationResult[*Case, error], error) {
			at, err := s.deadlines.Parse(deadline)
			if err != nil {
				return results.FailureResult[*Case, error](err), nil
			}
			if err := s.guard.AssertStanding(ctx, actor, caseID); err != nil {
				return denied[*Case](err)
			}

			db := operations.Handle(s.db)
			if err := s.repo.UpdateCaseDeadline(ctx, db, caseID, at); err != nil {
				if errors.Is(err, casedb.ErrCaseNotFound) {
					return results.FailureResult[*Case, error](err), nil
				}
				return results.OperationResult[*Case, error]{}, err
			}
			row, err := s.repo.GetCase(ctx, db, caseID)
			if err != nil {
				return results.OperationResult[*Case, error]{}, err
			}
			out := toCase(row)
			return results.SuccessResult[*Case, error](&out), nil
		}))
}
