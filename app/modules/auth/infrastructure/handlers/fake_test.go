package authhandlers

import (
	"context"

	authservice "github.com/Black-And-White-Club/dxwager/app/modules/auth/application"
	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	LoginFunc         func(ctx context.Context, req authservice.LoginRequest) (*authservice.LoginResponse, error)
	ValidateTokenFunc func(ctx context.Context, tokenString string) (identity.Identity, error)
}

var _ authservice.Service = (*FakeService)(nil)

func (f *FakeService) Login(ctx context.Context, req authservice.LoginRequest) (*authservice.LoginResponse, error) {
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, req)
	}
	return &authservice.LoginResponse{Token: "token"}, nil
}

func (f *FakeService) ValidateToken(ctx context.Context, tokenString string) (identity.Identity, error) {
	if f.ValidateTokenFunc != nil {
		return f.ValidateTokenFunc(ctx, tokenString)
	}
	return identity.Identity{}, authservice.ErrInvalidToken
}
