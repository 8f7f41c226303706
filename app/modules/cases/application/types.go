package caseservice

import (
	"time"

	"github.com/google/uuid"

	casedomain "github.com/Black-And-White-Club/dxwager/app/modules/cases/domain"
	casedb "github.com/Black-And-White-Club/dxwager/app/modules/cases/infrastructure/repositories"
)

// errEmptyPredictions is the message for a case submitted without predictions.
const errEmptyPredictions = "case must have at least one prediction"

// PredictionInput is one candidate diagnosis and the submitter's confidence in it.
type PredictionInput struct {
	DiagnosisName string `json:"diagnosis" validate:"notblank,max=256"`
	Confidence    int    `json:"confidence" validate:"min=0,max=100"`
}

// CreateCaseRequest describes a new case. CreatedAt, when set, stamps the case
// and its initial wagers instead of the current time.
type CreateCaseRequest struct {
	CreatorID   uuid.UUID         `json:"-"`
	Reference   string            `json:"reference" validate:"notblank,max=256"`
	GroupID     *uuid.UUID        `json:"group_id,omitempty"`
	Deadline    time.Time         `json:"deadline" validate:"required"`
	Predictions []PredictionInput `json:"predictions" validate:"dive"`
	CreatedAt   *time.Time        `json:"created_at,omitempty"`
}

// ImportedPrediction is a historical prediction, optionally already judged.
type ImportedPrediction struct {
	DiagnosisName string              `json:"diagnosis" validate:"notblank,max=256"`
	Confidence    int                 `json:"confidence" validate:"min=0,max=100"`
	Outcome       *casedomain.Outcome `json:"outcome,omitempty" validate:"omitnil,oneof=RIGHT WRONG INDETERMINATE"`
}

// ImportedComment is a historical comment.
type ImportedComment struct {
	Text      string    `json:"text" validate:"notblank"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

// ImportedCase is one record of a bulk import. A zero Deadline defaults to CreatedAt.
type ImportedCase struct {
	Reference   string               `json:"reference" validate:"notblank,max=256"`
	CreatedAt   time.Time            `json:"created_at" validate:"required"`
	GroupID     *uuid.UUID           `json:"group_id,omitempty"`
	Deadline    time.Time            `json:"deadline"`
	Predictions []ImportedPrediction `json:"predictions" validate:"dive"`
	Comments    []ImportedComment    `json:"comments" validate:"dive"`
}

// Case is the summary view of a case.
type Case struct {
	ID        uuid.UUID  `json:"id"`
	Reference string     `json:"reference"`
	CreatorID uuid.UUID  `json:"creator_id"`
	GroupID   *uuid.UUID `json:"group_id,omitempty"`
	Deadline  time.Time  `json:"deadline"`
	CreatedAt time.Time  `json:"created_at"`
}

// Wager is one user's confidence in a diagnosis.
type Wager struct {
	ID          uuid.UUID `json:"id"`
	CreatorID   uuid.UUID `json:"creator_id"`
	DiagnosisID uuid.UUID `json:"diagnosis_id"`
	Confidence  int       `json:"confidence"`
	CreatedAt   time.Time `json:"created_at"`
}

// Judgement is the verdict on a diagnosis.
type Judgement struct {
	DiagnosisID uuid.UUID          `json:"diagnosis_id"`
	JudgedBy    uuid.UUID          `json:"judged_by"`
	Outcome     casedomain.Outcome `json:"outcome"`
	JudgedAt    time.Time          `json:"judged_at"`
}

// Diagnosis is a candidate answer with its wagers and verdict.
type Diagnosis struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	CaseID    uuid.UUID  `json:"case_id"`
	Wagers    []Wager    `json:"wagers"`
	Judgement *Judgement `json:"judgement,omitempty"`
}

// Comment is free text on a case.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	CreatorID uuid.UUID `json:"creator_id"`
	CaseID    uuid.UUID `json:"case_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CaseDetail is a case with everything attached to it.
type CaseDetail struct {
	Case
	Diagnoses []Diagnosis `json:"diagnoses"`
	Comments  []Comment   `json:"comments"`
	Tags      []string    `json:"tags"`
}

// Prediction is one of a user's wagers with its case context and verdict.
type Prediction struct {
	WagerID       uuid.UUID           `json:"wager_id"`
	Confidence    int                 `json:"confidence"`
	WageredAt     time.Time           `json:"wagered_at"`
	DiagnosisID   uuid.UUID           `json:"diagnosis_id"`
	DiagnosisName string              `json:"diagnosis"`
	CaseID        uuid.UUID           `json:"case_id"`
	Reference     string              `json:"reference"`
	Outcome       *casedomain.Outcome `json:"outcome"`
	JudgedAt      *time.Time          `json:"judged_at,omitempty"`
}

func toCase(c *casedb.Case) Case {
	return Case{
		ID:        c.ID,
		Reference: c.Reference,
		CreatorID: c.CreatorID,
		GroupID:   c.GroupID,
		Deadline:  c.Deadline,
		CreatedAt: c.CreatedAt,
	}
}

func toCases(rows []casedb.Case) []Case {
	out := make([]Case, 0, len(rows))
	for i := range rows {
		out = append(out, toCase(&rows[i]))
	}
	return out
}

func toWager(w *casedb.Wager) Wager {
	return Wager{
		ID:          w.ID,
		CreatorID:   w.CreatorID,
		DiagnosisID: w.DiagnosisID,
		Confidence:  w.Confidence,
		CreatedAt:   w.CreatedAt,
	}
}

func toJudgement(j *casedb.Judgement) *Judgement {
	return &Judgement{
		DiagnosisID: j.DiagnosisID,
		JudgedBy:    j.JudgedBy,
		Outcome:     j.Outcome,
		JudgedAt:    j.JudgedAt,
	}
}

func toComment(c *casedb.Comment) Comment {
	return Comment{
		ID:        c.ID,
		CreatorID: c.CreatorID,
		CaseID:    c.CaseID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}

func toPredictions(rows []casedb.Prediction) []Prediction {
	out := make([]Prediction, 0, len(rows))
	for _, r := range rows {
		out = append(out, Prediction{
			WagerID:       r.WagerID,
			Confidence:    r.Confidence,
			WageredAt:     r.WageredAt,
			DiagnosisID:   r.DiagnosisID,
			DiagnosisName: r.DiagnosisName,
			CaseID:        r.CaseID,
			Reference:     r.Reference,
			Outcome:       r.Outcome,
			JudgedAt:      r.JudgedAt,
		})
	}
	return out
}
