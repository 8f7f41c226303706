package authhandlers

import (
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/trace"

	authservice "github.com/Black-And-White-Club/dxwager/app/modules/auth/application"
	"github.com/Black-And-White-Club/dxwager/app/shared/httpapi"
	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability/attr"
)

// AuthHandlers implements the Handlers interface.
type AuthHandlers struct {
	service authservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewAuthHandlers creates a new AuthHandlers instance.
func NewAuthHandlers(service authservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &AuthHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleLogin exchanges a username and password for a bearer token.
func (h *AuthHandlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req authservice.LoginRequest
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	httpapi.WriteJSON(w, http.StatusOK, resp)
}

// RequireAuth rejects requests without a valid "Authorization: Bearer" token
// and stores the caller's identity in the request context.
func (h *AuthHandlers) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			httpapi.WriteJSON(w, http.StatusUnauthorized, httpapi.ErrorResponse{Error: authservice.ErrMissingToken.Error()})
			return
		}

		id, err := h.service.ValidateToken(r.Context(), token)
		if err != nil {
			h.logger.DebugContext(r.Context(), "Rejected bearer token",
				attr.ExtractCorrelationID(r.Context()),
				attr.Error(err),
			)
			httpapi.WriteJSON(w, http.StatusUnauthorized, httpapi.ErrorResponse{Error: err.Error()})
			return
		}

		next.ServeHTTP(w, r.WithContext(identity.WithIdentity(r.Context(), id)))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
