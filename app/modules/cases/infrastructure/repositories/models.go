package casedb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	casedomain "github.com/Black-And-White-Club/dxwager/app/modules/cases/domain"
)

// Case is a diagnostic case. Only GroupID and Deadline change after insert.
type Case struct {
	bun.BaseModel `bun:"table:cases,alias:c"`
	ID            uuid.UUID  `bun:"id,pk,type:uuid"`
	Reference     string     `bun:"reference,notnull"`
	CreatorID     uuid.UUID  `bun:"creator_id,notnull,type:uuid"`
	GroupID       *uuid.UUID `bun:"group_id,type:uuid"`
	Deadline      time.Time  `bun:"deadline,notnull"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Diagnosis is a candidate answer on a case. Seq records insertion order.
type Diagnosis struct {
	bun.BaseModel `bun:"table:diagnoses,alias:d"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	Seq           int64     `bun:"seq,autoincrement"`
	Name          string    `bun:"name,notnull"`
	CaseID        uuid.UUID `bun:"case_id,notnull,type:uuid"`
}

// Wager is one user's confidence, 0..100, that a diagnosis is right.
type Wager struct {
	bun.BaseModel `bun:"table:wagers,alias:w"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	CreatorID     uuid.UUID `bun:"creator_id,notnull,type:uuid"`
	DiagnosisID   uuid.UUID `bun:"diagnosis_id,notnull,type:uuid"`
	Confidence    int       `bun:"confidence,notnull"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Judgement is the single verdict on a diagnosis.
type Judgement struct {
	bun.BaseModel `bun:"table:judgements,alias:j"`
	DiagnosisID   uuid.UUID          `bun:"diagnosis_id,pk,type:uuid"`
	JudgedBy      uuid.UUID          `bun:"judged_by,notnull,type:uuid"`
	Outcome       casedomain.Outcome `bun:"outcome,notnull"`
	JudgedAt      time.Time          `bun:"judged_at,nullzero,notnull,default:current_timestamp"`
}

// Comment is free text attached to a case.
type Comment struct {
	bun.BaseModel `bun:"table:comments,alias:cm"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	CreatorID     uuid.UUID `bun:"creator_id,notnull,type:uuid"`
	CaseID        uuid.UUID `bun:"case_id,notnull,type:uuid"`
	Text          string    `bun:"text,notnull"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Tag labels a case. The (case, text) pair is the primary key.
type Tag struct {
	bun.BaseModel `bun:"table:tags,alias:t"`
	CaseID        uuid.UUID `bun:"case_id,pk,type:uuid"`
	Text          string    `bun:"text,pk"`
}

// Prediction is a user's wager joined with its diagnosis, case and verdict.
type Prediction struct {
	WagerID       uuid.UUID           `bun:"wager_id"`
	Confidence    int                 `bun:"confidence"`
	WageredAt     time.Time           `bun:"wagered_at"`
	DiagnosisID   uuid.UUID           `bun:"diagnosis_id"`
	DiagnosisName string              `bun:"diagnosis_name"`
	CaseID        uuid.UUID           `bun:"case_id"`
	Reference     string              `bun:"reference"`
	Outcome       *casedomain.Outcome `bun:"outcome"`
	JudgedAt      *time.Time          `bun:"judged_at"`
}
