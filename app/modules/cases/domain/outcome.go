package casedomain

import (
	"fmt"
	"strings"
)

// Outcome is the ground-truth verdict on a diagnosis.
type Outcome string

const (
	OutcomeRight         Outcome = "RIGHT"
	OutcomeWrong         Outcome = "WRONG"
	OutcomeIndeterminate Outcome = "INDETERMINATE"
)

// IsValid reports whether o is one of the three known outcomes.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeRight, OutcomeWrong, OutcomeIndeterminate:
		return true
	}
	return false
}

// Scored reports whether wagers on a diagnosis with this outcome count towards calibration.
func (o Outcome) Scored() bool {
	return o == OutcomeRight || o == OutcomeWrong
}

func (o Outcome) String() string { return string(o) }

// ParseOutcome accepts any letter case and surrounding whitespace.
func ParseOutcome(s string) (Outcome, error) {
	o := Outcome(strings.ToUpper(strings.TrimSpace(s)))
	if !o.IsValid() {
		return "", fmt.Errorf("unknown outcome %q", s)
	}
	return o, nil
}

// UnmarshalText decodes an outcome in any letter case.
func (o *Outcome) UnmarshalText(text []byte) error {
	v, err := ParseOutcome(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
