package authservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	authjwt "github.com/Black-And-White-Club/dxwager/app/modules/auth/infrastructure/jwt"
	userservice "github.com/Black-And-White-Club/dxwager/app/modules/user/application"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability/attr"
	"github.com/Black-And-White-Club/dxwager/app/shared/validation"
)

// DefaultTokenTTL applies when Config.DefaultTTL is unset.
const DefaultTokenTTL = 2 * time.Hour

// Config holds the configuration for the auth service.
type Config struct {
	DefaultTTL time.Duration
}

// service implements the Service interface.
type service struct {
	users       userservice.Service
	jwtProvider authjwt.Provider
	config      Config
	logger      *slog.Logger
	tracer      trace.Tracer
}

// NewService creates a new auth service.
func NewService(
	jwtProvider authjwt.Provider,
	users userservice.Service,
	config Config,
	logger *slog.Logger,
	tracer trace.Tracer,
) Service {
	if config.DefaultTTL <= 0 {
		config.DefaultTTL = DefaultTokenTTL
	}
	return &service{
		users:       users,
		jwtProvider: jwtProvider,
		config:      config,
		logger:      logger,
		tracer:      tracer,
	}
}

// Login verifies credentials and issues a token. Bad credentials are a ValidationError.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.users.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, userservice.ErrInvalidCredentials) {
			s.logger.WarnContext(ctx, "Login rejected",
				attr.ExtractCorrelationID(ctx),
				attr.String("username", req.Username),
			)
			return nil, &apperrors.ValidationError{Message: userservice.ErrInvalidCredentials.Error()}
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	token, err := s.jwtProvider.GenerateToken(identity.Identity{ID: user.ID, Name: user.Name}, s.config.DefaultTTL)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to generate token",
			attr.UserID(user.ID),
			attr.Error(err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %w", ErrGenerateToken, err)
	}

	s.logger.InfoContext(ctx, "User logged in",
		attr.ExtractCorrelationID(ctx),
		attr.UserID(user.ID),
	)

	return &LoginResponse{User: *user, Token: token}, nil
}

// ValidateToken maps provider failures onto the service's token errors.
func (s *service) ValidateToken(ctx context.Context, tokenString string) (identity.Identity, error) {
	_, span := s.tracer.Start(ctx, "AuthService.ValidateToken")
	defer span.End()

	if tokenString == "" {
		return identity.Identity{}, ErrMissingToken
	}

	id, err := s.jwtProvider.ValidateToken(tokenString)
	if err != nil {
		if errors.Is(err, authjwt.ErrExpiredToken) {
			return identity.Identity{}, ErrExpiredToken
		}
		return identity.Identity{}, ErrInvalidToken
	}
	return id, nil
}
