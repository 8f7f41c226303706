package casedb

import (
	"fmt"

	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
)

var (
	// ErrCaseNotFound indicates no case row matched the lookup or update.
	ErrCaseNotFound = fmt.Errorf("case %w", apperrors.ErrNotFound)
)
