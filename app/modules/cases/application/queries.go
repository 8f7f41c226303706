package caseservice

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	casedomain "github.com/Black-And-White-Club/dxwager/app/modules/cases/domain"
	casedb "github.com/Black-And-White-Club/dxwager/app/modules/cases/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
	"github.com/Black-And-White-Club/dxwager/app/shared/operations"
	"github.com/Black-And-White-Club/dxwager/app/shared/results"
)

// GetCase returns a case with its diagnoses in insertion order, each with its
// wagers oldest first and its judgement, plus comments and tags.
func (s *CaseService) GetCase(ctx context.Context, actor identity.Identity, caseID uuid.UUID) (*CaseDetail, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "GetCase", caseID.String(),
		func(ctx context.Context) (results.OperationResult[*CaseDetail, error], error) {
			if err := s.guard.AssertStanding(ctx, actor, caseID); err != nil {
				return denied[*CaseDetail](err)
			}

			db := operations.Handle(s.db)
			row, err := s.repo.GetCase(ctx, db, caseID)
			if err != nil {
				if errors.Is(err, casedb.ErrCaseNotFound) {
					return results.FailureResult[*CaseDetail, error](err), nil
				}
				return results.OperationResult[*CaseDetail, error]{}, err
			}
			diagnoses, err := s.repo.DiagnosesForCase(ctx, db, caseID)
			if err != nil {
				return results.OperationResult[*CaseDetail, error]{}, err
			}
			wagers, err := s.repo.WagersForCase(ctx, db, caseID)
			if err != nil {
				return results.OperationResult[*CaseDetail, error]{}, err
			}
			judgements, err := s.repo.JudgementsForCase(ctx, db, caseID)
			if err != nil {
				return results.OperationResult[*CaseDetail, error]{}, err
			}
			comments, err := s.repo.CommentsForCase(ctx, db, caseID)
			if err != nil {
				return results.OperationResult[*CaseDetail, error]{}, err
			}
			tags, err := s.repo.TagsForCase(ctx, db, caseID)
			if err != nil {
				return results.OperationResult[*CaseDetail, error]{}, err
			}

			return results.SuccessResult[*CaseDetail, error](assembleDetail(row, diagnoses, wagers, judgements, comments, tags)), nil
		}))
}

func assembleDetail(
	row *casedb.Case,
	diagnoses []casedb.Diagnosis,
	wagers []casedb.Wager,
	judgements []casedb.Judgement,
	comments []casedb.Comment,
	tags []string,
) *CaseDetail {
	byDiagnosis := make(map[uuid.UUID][]Wager, len(diagnoses))
	for i := range wagers {
		w := toWager(&wagers[i])
		byDiagnosis[w.DiagnosisID] = append(byDiagnosis[w.DiagnosisID], w)
	}
	verdicts := make(map[uuid.UUID]*Judgement, len(judgements))
	for i := range judgements {
		verdicts[judgements[i].DiagnosisID] = toJudgement(&judgements[i])
	}

	detail := &CaseDetail{
		Case:      toCase(row),
		Diagnoses: make([]Diagnosis, 0, len(diagnoses)),
		Comments:  make([]Comment, 0, len(comments)),
		Tags:      tags,
	}
	if detail.Tags == nil {
		detail.Tags = []string{}
	}
	for _, d := range diagnoses {
		ws := byDiagnosis[d.ID]
		if ws == nil {
			ws = []Wager{}
		}
		detail.Diagnoses = append(detail.Diagnoses, Diagnosis{
			ID:        d.ID,
			Name:      d.Name,
			CaseID:    d.CaseID,
			Wagers:    ws,
			Judgement: verdicts[d.ID],
		})
	}
	for i := range comments {
		detail.Comments = append(detail.Comments, toComment(&comments[i]))
	}
	return detail
}

// ListCases returns the cases actorID created or shares a group with, ordered by deadline.
func (s *CaseService) ListCases(ctx context.Context, actorID uuid.UUID, filter casedb.CaseListFilter) ([]Case, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "ListCases", actorID.String(),
		func(ctx context.Context) (results.OperationResult[[]Case, error], error) {
			if filter.Tag != nil {
				tag := strings.TrimSpace(*filter.Tag)
				filter.Tag = &tag
			}
			rows, err := s.repo.ListCasesForUser(ctx, operations.Handle(s.db), actorID, filter)
			if err != nil {
				return results.OperationResult[[]Case, error]{}, err
			}
			return results.SuccessResult[[]Case, error](toCases(rows)), nil
		}))
}

// CasesForGroup returns the cases assigned to groupID ordered by deadline.
func (s *CaseService) CasesForGroup(ctx context.Context, groupID uuid.UUID) ([]Case, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "CasesForGroup", groupID.String(),
		func(ctx context.Context) (results.OperationResult[[]Case, error], error) {
			rows, err := s.repo.CasesForGroup(ctx, operations.Handle(s.db), groupID)
			if err != nil {
				return results.OperationResult[[]Case, error]{}, err
			}
			return results.SuccessResult[[]Case, error](toCases(rows)), nil
		}))
}

// TagsForUser lists the distinct tags on cases visible to userID, alphabetically.
func (s *CaseService) TagsForUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "TagsForUser", userID.String(),
		func(ctx context.Context) (results.OperationResult[[]string, error], error) {
			tags, err := s.repo.TagsForUser(ctx, operations.Handle(s.db), userID)
			if err != nil {
				return results.OperationResult[[]string, error]{}, err
			}
			if tags == nil {
				tags = []string{}
			}
			return results.SuccessResult[[]string, error](tags), nil
		}))
}

// Predictions lists userID's wagers with their verdicts, newest first.
func (s *CaseService) Predictions(ctx context.Context, userID uuid.UUID, filter casedb.OutcomeFilter) ([]Prediction, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "Predictions", userID.String(),
		func(ctx context.Context) (results.OperationResult[[]Prediction, error], error) {
			rows, err := s.repo.Predictions(ctx, operations.Handle(s.db), userID, filter)
			if err != nil {
				return results.OperationResult[[]Prediction, error]{}, err
			}
			return results.SuccessResult[[]Prediction, error](toPredictions(rows)), nil
		}))
}

// ParseOutcomeFilter maps "", "any", "unjudged" or an outcome name to a filter.
func ParseOutcomeFilter(s string) (casedb.OutcomeFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return casedb.AnyOutcome(), nil
	case "unjudged":
		return casedb.Unjudged(), nil
	}
	o, err := casedomain.ParseOutcome(s)
	if err != nil {
		return casedb.OutcomeFilter{}, &apperrors.ValidationError{Field: "outcome", Message: err.Error()}
	}
	return casedb.WithOutcome(o), nil
}
