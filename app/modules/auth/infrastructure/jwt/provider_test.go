package authjwt

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
)

func TestProvider_GenerateAndValidateToken(t *testing.T) {
	secret := "test-secret-at-least-32-chars-long!!"
	p := NewProvider(secret)

	alice := identity.Identity{ID: uuid.New(), Name: "alice"}

	tests := []struct {
		name        string
		token       func(t *testing.T) string
		validator   Provider
		expectedErr error
		verify      func(t *testing.T, validated identity.Identity)
	}{
		{
			name: "success",
			token: func(t *testing.T) string {
				return mustGenerate(t, p, alice, time.Hour)
			},
			verify: func(t *testing.T, validated identity.Identity) {
				if validated != alice {
					t.Errorf("expected identity %+v, got %+v", alice, validated)
				}
			},
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				return mustGenerate(t, p, alice, -time.Hour)
			},
			expectedErr: ErrExpiredToken,
		},
		{
			name: "invalid signature",
			token: func(t *testing.T) string {
				return mustGenerate(t, p, alice, time.Hour)
			},
			validator:   NewProvider("wrong-secret"),
			expectedErr: ErrInvalidSignature,
		},
		{
			name: "malformed token",
			token: func(t *testing.T) string {
				return "not.a.jwt"
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name: "non-uuid subject",
			token: func(t *testing.T) string {
				claims := jwt.RegisteredClaims{
					Subject:   "user-123",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				}
				s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
				if err != nil {
					t.Fatalf("failed to sign token: %v", err)
				}
				return s
			},
			expectedErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := tt.token(t)

			validateTarget := p
			if tt.validator != nil {
				validateTarget = tt.validator
			}

			validated, err := validateTarget.ValidateToken(token)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.verify != nil {
				tt.verify(t, validated)
			}
		})
	}
}

func TestProvider_MissingSecret(t *testing.T) {
	_, err := NewProvider("").GenerateToken(identity.Identity{ID: uuid.New()}, time.Hour)
	if !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func mustGenerate(t *testing.T, p Provider, id identity.Identity, ttl time.Duration) string {
	t.Helper()
	token, err := p.GenerateToken(id, ttl)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}
