package userdb

import (
	"fmt"

	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
)

// Sentinel errors for the repository layer. Both match apperrors.ErrNotFound.
var (
	// ErrUserNotFound indicates no user row matched the lookup.
	ErrUserNotFound = fmt.Errorf("user %w", apperrors.ErrNotFound)

	// ErrGroupNotFound indicates no group row matched the lookup.
	ErrGroupNotFound = fmt.Errorf("group %w", apperrors.ErrNotFound)
)
