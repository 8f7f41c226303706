package authjwt

import (
	"time"

	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
)

// Provider defines the interface for JWT token operations.
type Provider interface {
	// GenerateToken creates a signed JWT for the given identity.
	GenerateToken(id identity.Identity, ttl time.Duration) (string, error)

	// ValidateToken validates a JWT and returns the identity it was issued to.
	ValidateToken(tokenString string) (identity.Identity, error)
}
