package authservice

import (
	"context"
	"time"

	"github.com/google/uuid"

	authjwt "github.com/Black-And-White-Club/dxwager/app/modules/auth/infrastructure/jwt"
	userservice "github.com/Black-And-White-Club/dxwager/app/modules/user/application"
	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
)

// ------------------------
// Fake JWT Provider
// ------------------------

type FakeJWTProvider struct {
	GenerateTokenFunc func(id identity.Identity, ttl time.Duration) (string, error)
	ValidateTokenFunc func(tokenString string) (identity.Identity, error)
}

var _ authjwt.Provider = (*FakeJWTProvider)(nil)

func (f *FakeJWTProvider) GenerateToken(id identity.Identity, ttl time.Duration) (string, error) {
	if f.GenerateTokenFunc != nil {
		return f.GenerateTokenFunc(id, ttl)
	}
	return "token", nil
}

func (f *FakeJWTProvider) ValidateToken(tokenString string) (identity.Identity, error) {
	if f.ValidateTokenFunc != nil {
		return f.ValidateTokenFunc(tokenString)
	}
	return identity.Identity{}, authjwt.ErrInvalidToken
}

// ------------------------
// Fake User Service
// ------------------------

// FakeUserService implements only Authenticate; the embedded interface panics elsewhere.
type FakeUserService struct {
	userservice.Service
	AuthenticateFunc func(ctx context.Context, name, password string) (*userservice.User, error)
}

func (f *FakeUserService) Authenticate(ctx context.Context, name, password string) (*userservice.User, error) {
	if f.AuthenticateFunc != nil {
		return f.AuthenticateFunc(ctx, name, password)
	}
	return &userservice.User{ID: uuid.New(), Name: name}, nil
}
