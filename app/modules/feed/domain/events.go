package feeddomain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	casedomain "github.com/Black-And-White-Club/dxwager/app/modules/cases/domain"
)

// Kind discriminates feed events.
type Kind string

const (
	KindJudgement Kind = "JUDGEMENT"
	KindWager     Kind = "WAGER"
	KindComment   Kind = "COMMENT"
	KindDeadline  Kind = "DEADLINE"
	KindGroupCase Kind = "GROUP_CASE"
)

// Event is one entry in a user's activity feed. The set of implementations
// is closed to this package.
type Event interface {
	Kind() Kind
	At() time.Time
	Case() uuid.UUID
	event()
}

// Actor names the user an event is attributed to.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type JudgementEvent struct {
	CaseID    uuid.UUID          `json:"case_id"`
	Reference string             `json:"reference"`
	User      Actor              `json:"user"`
	Diagnosis string             `json:"diagnosis"`
	Outcome   casedomain.Outcome `json:"outcome"`
	Timestamp time.Time          `json:"timestamp"`
}

type WagerEvent struct {
	CaseID     uuid.UUID `json:"case_id"`
	Reference  string    `json:"reference"`
	User       Actor     `json:"user"`
	Diagnosis  string    `json:"diagnosis"`
	Confidence int       `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// CommentEvent is attributed to the creator of the commented case.
type CommentEvent struct {
	CaseID    uuid.UUID `json:"case_id"`
	Reference string    `json:"reference"`
	User      Actor     `json:"user"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// DeadlineEvent marks a passed deadline. Timestamp is the deadline itself.
type DeadlineEvent struct {
	CaseID    uuid.UUID `json:"case_id"`
	Reference string    `json:"reference"`
	Timestamp time.Time `json:"timestamp"`
}

type GroupCaseEvent struct {
	CaseID    uuid.UUID `json:"case_id"`
	Reference string    `json:"reference"`
	User      Actor     `json:"user"`
	GroupID   uuid.UUID `json:"group_id"`
	GroupName string    `json:"group_name"`
	Timestamp time.Time `json:"timestamp"`
}

func (JudgementEvent) Kind() Kind { return KindJudgement }
func (WagerEvent) Kind() Kind     { return KindWager }
func (CommentEvent) Kind() Kind   { return KindComment }
func (DeadlineEvent) Kind() Kind  { return KindDeadline }
func (GroupCaseEvent) Kind() Kind { return KindGroupCase }

func (e JudgementEvent) At() time.Time { return e.Timestamp }
func (e WagerEvent) At() time.Time     { return e.Timestamp }
func (e CommentEvent) At() time.Time   { return e.Timestamp }
func (e DeadlineEvent) At() time.Time  { return e.Timestamp }
func (e GroupCaseEvent) At() time.Time { return e.Timestamp }

func (e JudgementEvent) Case() uuid.UUID { return e.CaseID }
func (e WagerEvent) Case() uuid.UUID     { return e.CaseID }
func (e CommentEvent) Case() uuid.UUID   { return e.CaseID }
func (e DeadlineEvent) Case() uuid.UUID  { return e.CaseID }
func (e GroupCaseEvent) Case() uuid.UUID { return e.CaseID }

func (JudgementEvent) event() {}
func (WagerEvent) event()     {}
func (CommentEvent) event()   {}
func (DeadlineEvent) event()  {}
func (GroupCaseEvent) event() {}

// MarshalJSON methods add a "type" field carrying the event kind.

func (e JudgementEvent) MarshalJSON() ([]byte, error) {
	type plain JudgementEvent
	return json.Marshal(struct {
		Type Kind `json:"type"`
		plain
	}{e.Kind(), plain(e)})
}

func (e WagerEvent) MarshalJSON() ([]byte, error) {
	type plain WagerEvent
	return json.Marshal(struct {
		Type Kind `json:"type"`
		plain
	}{e.Kind(), plain(e)})
}

func (e CommentEvent) MarshalJSON() ([]byte, error) {
	type plain CommentEvent
	return json.Marshal(struct {
		Type Kind `json:"type"`
		plain
	}{e.Kind(), plain(e)})
}

func (e DeadlineEvent) MarshalJSON() ([]byte, error) {
	type plain DeadlineEvent
	return json.Marshal(struct {
		Type Kind `json:"type"`
		plain
	}{e.Kind(), plain(e)})
}

func (e GroupCaseEvent) MarshalJSON() ([]byte, error) {
	type plain GroupCaseEvent
	return json.Marshal(struct {
		Type Kind `json:"type"`
		plain
	}{e.Kind(), plain(e)})
}

// Newest reports whether a sorts before b: later timestamps first, then
// kind, then case id.
func Newest(a, b Event) bool {
	if !a.At().Equal(b.At()) {
		return a.At().After(b.At())
	}
	if a.Kind() != b.Kind() {
		return a.Kind() < b.Kind()
	}
	return a.Case().String() < b.Case().String()
}
