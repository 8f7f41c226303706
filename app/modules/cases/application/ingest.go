package caseservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	casedomain "github.com/Black-And-White-Club/dxwager/app/modules/cases/domain"
	casedb "github.com/Black-And-White-Club/dxwager/app/modules/cases/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability/attr"
	"github.com/Black-And-White-Club/dxwager/app/shared/operations"
	"github.com/Black-And-White-Club/dxwager/app/shared/results"
	"github.com/Black-And-White-Club/dxwager/app/shared/validation"
)

// seed is one diagnosis to insert alongside a new case.
type seed struct {
	name       string
	confidence int
	outcome    *casedomain.Outcome
}

// CreateCase inserts the case, each diagnosis and the creator's wager on it.
// Nothing is written when the request is invalid.
func (s *CaseService) CreateCase(ctx context.Context, req CreateCaseRequest) (uuid.UUID, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "CreateCase", req.CreatorID.String(),
		func(ctx context.Context) (results.OperationResult[uuid.UUID, error], error) {
			if len(req.Predictions) == 0 {
				return results.FailureResult[uuid.UUID, error](&apperrors.ValidationError{Field: "predictions", Message: errEmptyPredictions}), nil
			}
			if req.CreatorID == uuid.Nil {
				return results.FailureResult[uuid.UUID, error](&apperrors.ValidationError{Field: "creator_id", Message: "is required"}), nil
			}
			if err := validation.Struct(req); err != nil {
				return results.FailureResult[uuid.UUID, error](err), nil
			}

			createdAt := s.clock.Now()
			if req.CreatedAt != nil {
				createdAt = req.CreatedAt.UTC()
			}
			c := &casedb.Case{
				ID:        uuid.New(),
				Reference: strings.TrimSpace(req.Reference),
				CreatorID: req.CreatorID,
				GroupID:   req.GroupID,
				Deadline:  req.Deadline.UTC(),
				CreatedAt: createdAt,
			}
			seeds := make([]seed, 0, len(req.Predictions))
			for _, p := range req.Predictions {
				seeds = append(seeds, seed{name: p.DiagnosisName, confidence: p.Confidence})
			}

			return operations.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (results.OperationResult[uuid.UUID, error], error) {
				if err := s.insertCase(ctx, db, c, seeds); err != nil {
					return results.OperationResult[uuid.UUID, error]{}, err
				}
				s.logger.InfoContext(ctx, "Case created",
					attr.CaseID(c.ID),
					attr.UserID(c.CreatorID),
					attr.Int("diagnoses", len(seeds)),
				)
				return results.SuccessResult[uuid.UUID, error](c.ID), nil
			})
		}))
}

// ImportCases inserts a batch of historical cases for userID. Records are
// validated inside the transaction, so a bad record late in the batch discards
// everything written before it.
func (s *CaseService) ImportCases(ctx context.Context, userID uuid.UUID, cases []ImportedCase) (int, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry, ctx, "ImportCases", userID.String(),
		func(ctx context.Context) (results.OperationResult[int, error], error) {
			if userID == uuid.Nil {
				return results.FailureResult[int, error](&apperrors.ValidationError{Field: "user_id", Message: "is required"}), nil
			}
			if len(cases) == 0 {
				return results.SuccessResult[int, error](0), nil
			}

			return operations.RunInTxAtomic(ctx, s.db, func(ctx context.Context, db bun.IDB) (results.OperationResult[int, error], error) {
				for i, ic := range cases {
					if err := validateImported(ic); err != nil {
						return results.FailureResult[int, error](withRecord(i, err)), nil
					}

					createdAt := ic.CreatedAt.UTC()
					deadline := ic.Deadline.UTC()
					if ic.Deadline.IsZero() {
						deadline = createdAt
					}
					c := &casedb.Case{
						ID:        uuid.New(),
						Reference: strings.TrimSpace(ic.Reference),
						CreatorID: userID,
						GroupID:   ic.GroupID,
						Deadline:  deadline,
						CreatedAt: createdAt,
					}
					seeds := make([]seed, 0, len(ic.Predictions))
					for _, p := range ic.Predictions {
						seeds = append(seeds, seed{name: p.DiagnosisName, confidence: p.Confidence, outcome: p.Outcome})
					}
					if err := s.insertCase(ctx, db, c, seeds); err != nil {
						return results.OperationResult[int, error]{}, err
					}

					for _, cm := range ic.Comments {
						err := s.repo.InsertComment(ctx, db, &casedb.Comment{
							ID:        uuid.New(),
							CreatorID: userID,
							CaseID:    c.ID,
							Text:      strings.TrimSpace(cm.Text),
							CreatedAt: cm.Timestamp.UTC(),
						})
						if err != nil {
							return results.OperationResult[int, error]{}, err
						}
					}
				}

				s.logger.InfoContext(ctx, "Cases imported", attr.UserID(userID), attr.Int("count", len(cases)))
				return results.SuccessResult[int, error](len(cases)), nil
			})
		}))
}

// insertCase writes c and, per seed, a diagnosis, the creator's wager and an
// optional judgement. Wagers and judgements are stamped with the case's creation time.
func (s *CaseService) insertCase(ctx context.Context, db bun.IDB, c *casedb.Case, seeds []seed) error {
	if err := s.repo.InsertCase(ctx, db, c); err != nil {
		return err
	}
	for _, sd := range seeds {
		d := &casedb.Diagnosis{ID: uuid.New(), Name: strings.TrimSpace(sd.name), CaseID: c.ID}
		if err := s.repo.InsertDiagnosis(ctx, db, d); err != nil {
			return err
		}
		w := &casedb.Wager{
			ID:          uuid.New(),
			CreatorID:   c.CreatorID,
			DiagnosisID: d.ID,
			Confidence:  sd.confidence,
			CreatedAt:   c.CreatedAt,
		}
		if err := s.repo.InsertWager(ctx, db, w); err != nil {
			return err
		}
		if sd.outcome == nil {
			continue
		}
		j := &casedb.Judgement{
			DiagnosisID: d.ID,
			JudgedBy:    c.CreatorID,
			Outcome:     *sd.outcome,
			JudgedAt:    c.CreatedAt,
		}
		if err := s.repo.InsertJudgement(ctx, db, j); err != nil {
			return err
		}
	}
	return nil
}

func validateImported(ic ImportedCase) error {
	if len(ic.Predictions) == 0 {
		return &apperrors.ValidationError{Field: "predictions", Message: errEmptyPredictions}
	}
	return validation.Struct(ic)
}

// withRecord prefixes a validation error's field with the batch position.
func withRecord(i int, err error) error {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		field := fmt.Sprintf("cases[%d]", i)
		if ve.Field != "" {
			field += "." + ve.Field
		}
		return &apperrors.ValidationError{Field: field, Message: ve.Message}
	}
	return err
}
