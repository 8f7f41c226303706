package authservice

import (
	"context"

	userservice "github.com/Black-And-White-Club/dxwager/app/modules/user/application"
	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
)

// Service defines the authentication service interface.
type Service interface {
	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// ValidateToken validates a bearer token and returns the caller's identity.
	ValidateToken(ctx context.Context, tokenString string) (identity.Identity, error)
}

// LoginRequest carries a username/password pair.
type LoginRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	User  userservice.User `json:"user"`
	Token string           `json:"token"`
}
