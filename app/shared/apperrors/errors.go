package apperrors

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned by thin lookups when the requested row does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports caller-supplied data that violates a precondition.
// It is always raised before any write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError without a field name.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// ConflictError reports a uniqueness, referential or check constraint violation.
type ConflictError struct {
	Constraint string
	Detail     string
	Err        error
}

func (e *ConflictError) Error() string {
	switch {
	case e.Constraint != "" && e.Detail != "":
		return fmt.Sprintf("conflict on %s: %s", e.Constraint, e.Detail)
	case e.Constraint != "":
		return fmt.Sprintf("conflict on %s", e.Constraint)
	case e.Err != nil:
		return fmt.Sprintf("conflict: %v", e.Err)
	}
	return "conflict"
}

func (e *ConflictError) Unwrap() error { return e.Err }

// AuthorizationError reports that a user has no standing on a case.
type AuthorizationError struct {
	UserID   uuid.UUID
	UserName string
	CaseID   uuid.UUID
}

func (e *AuthorizationError) Error() string {
	who := e.UserID.String()
	if e.UserName != "" {
		who = fmt.Sprintf("%s (%s)", e.UserName, e.UserID)
	}
	return fmt.Sprintf("user %s is not authorized for case %s", who, e.CaseID)
}

// StoreError wraps connectivity, timeout and other persistence failures.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("store failure: %v", e.Err)
	}
	return fmt.Sprintf("store failure in %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsAuthorization(err error) bool {
	var target *AuthorizationError
	return errors.As(err, &target)
}

func IsStore(err error) bool {
	var target *StoreError
	return errors.As(err, &target)
}
