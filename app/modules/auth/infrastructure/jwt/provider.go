package authjwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
)

// userClaims is the token payload. Subject carries the user id.
type userClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}

// provider implements the Provider interface with HS256.
type provider struct {
	secret []byte
	now    func() time.Time
}

// NewProvider creates a new JWT provider.
func NewProvider(secret string) Provider {
	return &provider{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// GenerateToken creates a signed JWT for id that expires after ttl.
func (p *provider) GenerateToken(id identity.Identity, ttl time.Duration) (string, error) {
	if len(p.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := p.now()
	claims := &userClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   id.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name: id.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ValidateToken validates a JWT and returns the identity it carries.
func (p *provider) ValidateToken(tokenString string) (identity.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &userClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(p.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return identity.Identity{}, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, ErrInvalidSignature) {
			return identity.Identity{}, ErrInvalidSignature
		}
		return identity.Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*userClaims)
	if !ok || !token.Valid {
		return identity.Identity{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return identity.Identity{}, ErrInvalidToken
	}

	return identity.Identity{ID: userID, Name: claims.Name}, nil
}
