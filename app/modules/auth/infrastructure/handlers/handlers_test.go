package authhandlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	authservice "github.com/Black-And-White-Club/dxwager/app/modules/auth/application"
	userservice "github.com/Black-And-White-Club/dxwager/app/modules/user/application"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
)

func newTestHandlers(svc *FakeService) Handlers {
	return NewAuthHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), noop.NewTracerProvider().Tracer("test"))
}

func TestAuthHandlers_HandleLogin(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		setup      func(*FakeService)
		wantStatus int
		wantToken  string
	}{
		{
			name: "success",
			body: `{"username":"alice","password":"pw"}`,
			setup: func(s *FakeService) {
				s.LoginFunc = func(ctx context.Context, req authservice.LoginRequest) (*authservice.LoginResponse, error) {
					return &authservice.LoginResponse{User: userservice.User{ID: userID, Name: req.Username}, Token: "jwt"}, nil
				}
			},
			wantStatus: http.StatusOK,
			wantToken:  "jwt",
		},
		{
			name:       "malformed body",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid credentials",
			body: `{"username":"alice","password":"bad"}`,
			setup: func(s *FakeService) {
				s.LoginFunc = func(ctx context.Context, req authservice.LoginRequest) (*authservice.LoginResponse, error) {
					return nil, apperrors.NewValidationError("invalid username or password")
				}
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "token generation failure",
			body: `{"username":"alice","password":"pw"}`,
			setup: func(s *FakeService) {
				s.LoginFunc = func(ctx context.Context, req authservice.LoginRequest) (*authservice.LoginResponse, error) {
					return nil, authservice.ErrGenerateToken
				}
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &FakeService{}
			if tt.setup != nil {
				tt.setup(svc)
			}
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			newTestHandlers(svc).HandleLogin(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantToken != "" {
				var resp authservice.LoginResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.wantToken, resp.Token)
				assert.Equal(t, userID, resp.User.ID)
			}
		})
	}
}

func TestAuthHandlers_RequireAuth(t *testing.T) {
	alice := identity.Identity{ID: uuid.New(), Name: "alice"}
	svc := &FakeService{
		ValidateTokenFunc: func(ctx context.Context, token string) (identity.Identity, error) {
			if token == "good" {
				return alice, nil
			}
			return identity.Identity{}, authservice.ErrInvalidToken
		},
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid bearer", header: "Bearer good", wantStatus: http.StatusOK},
		{name: "lower-case scheme", header: "bearer good", wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "rejected token", header: "Bearer forged", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen identity.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = identity.FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			newTestHandlers(svc).RequireAuth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, alice, seen)
			}
		})
	}
}
