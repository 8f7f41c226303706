package casedb

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	casedomain "github.com/Black-And-White-Club/dxwager/app/modules/cases/domain"
)

type outcomeFilterKind int

const (
	anyOutcome outcomeFilterKind = iota
	unjudged
	specificOutcome
)

// OutcomeFilter narrows a prediction listing by verdict. The zero value matches everything.
type OutcomeFilter struct {
	kind    outcomeFilterKind
	outcome casedomain.Outcome
}

// AnyOutcome matches judged and unjudged predictions.
func AnyOutcome() OutcomeFilter { return OutcomeFilter{kind: anyOutcome} }

// Unjudged matches predictions whose diagnosis has no judgement yet.
func Unjudged() OutcomeFilter { return OutcomeFilter{kind: unjudged} }

// WithOutcome matches predictions judged with o.
func WithOutcome(o casedomain.Outcome) OutcomeFilter {
	return OutcomeFilter{kind: specificOutcome, outcome: o}
}

// Apply adds the filter's predicate to a query joining judgements as j.
func (f OutcomeFilter) Apply(q *bun.SelectQuery) *bun.SelectQuery {
	switch f.kind {
	case unjudged:
		return q.Where("j.diagnosis_id IS NULL")
	case specificOutcome:
		return q.Where("j.outcome = ?", f.outcome)
	default:
		return q
	}
}

func (f OutcomeFilter) String() string {
	switch f.kind {
	case unjudged:
		return "unjudged"
	case specificOutcome:
		return f.outcome.String()
	default:
		return "any"
	}
}

// CaseListFilter narrows the cases listed for a user. Nil fields do not filter.
type CaseListFilter struct {
	// CreatorOnly true keeps cases the user created; false keeps group cases
	// created by someone else.
	CreatorOnly *bool
	Tag         *string
}

// apply adds the standing and filter predicates for userID to a query over cases as c.
func (f CaseListFilter) apply(userID uuid.UUID) func(q *bun.SelectQuery) *bun.SelectQuery {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		member := "c.group_id IN (SELECT m.group_id FROM memberships AS m WHERE m.user_id = ?)"
		switch {
		case f.CreatorOnly == nil:
			q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Where("c.creator_id = ?", userID).WhereOr(member, userID)
			})
		case *f.CreatorOnly:
			q = q.Where("c.creator_id = ?", userID)
		default:
			q = q.Where("c.creator_id <> ?", userID).Where(member, userID)
		}
		if f.Tag != nil {
			q = q.Where("EXISTS (SELECT 1 FROM tags AS t WHERE t.case_id = c.id AND t.text = ?)", *f.Tag)
		}
		return q
	}
}
