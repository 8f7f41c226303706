package caseservice

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
	"github.com/Black-And-White-Club/dxwager/app/shared/clock"
)

// DeadlineParserInterface turns user input into an absolute deadline.
type DeadlineParserInterface interface {
	Parse(input string) (time.Time, error)
}

// DeadlineParser accepts RFC 3339, a bare date, or an English phrase resolved
// against its clock.
type DeadlineParser struct {
	clock clock.Clock
	when  *when.Parser
}

// NewDeadlineParser creates a DeadlineParser. A nil clock reads the wall clock.
func NewDeadlineParser(c clock.Clock) *DeadlineParser {
	if c == nil {
		c = clock.RealClock{}
	}
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &DeadlineParser{clock: c, when: w}
}

var compactTime = regexp.MustCompile(`(\d{1,2})(\d{2})(am|pm)`)

func (p *DeadlineParser) Parse(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, &apperrors.ValidationError{Field: "deadline", Message: "is required"}
	}

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, input); err == nil {
		return t.UTC(), nil
	}

	// "930am" -> "9:30 am"
	phrase := compactTime.ReplaceAllString(strings.ToLower(input), "$1:$2 $3")
	r, err := p.when.Parse(phrase, p.clock.Now())
	if err != nil || r == nil {
		return time.Time{}, &apperrors.ValidationError{Field: "deadline", Message: fmt.Sprintf("could not recognise %q", input)}
	}
	return r.Time.UTC(), nil
}
