package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability/attr"
)

// maxBodyBytes bounds JSON request bodies; imports go through their own limit.
const maxBodyBytes = 1 << 20

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err onto an HTTP status by its kind.
func WriteError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var (
		validationErr    *apperrors.ValidationError
		conflictErr      *apperrors.ConflictError
		authorizationErr *apperrors.AuthorizationError
	)

	switch {
	case errors.As(err, &validationErr):
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: validationErr.Message, Field: validationErr.Field})
	case errors.As(err, &authorizationErr):
		WriteJSON(w, http.StatusForbidden, ErrorResponse{Error: authorizationErr.Error()})
	case errors.As(err, &conflictErr):
		WriteJSON(w, http.StatusConflict, ErrorResponse{Error: conflictErr.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		if logger != nil {
			logger.ErrorContext(r.Context(), "Request failed",
				attr.ExtractCorrelationID(r.Context()),
				attr.String("path", r.URL.Path),
				attr.Error(err),
			)
		}
		WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	}
}

// DecodeJSON reads a JSON body into v. Malformed input is a ValidationError.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.NewValidationError("request body is empty")
		}
		return apperrors.NewValidationError(fmt.Sprintf("malformed request body: %v", err))
	}
	return nil
}

// URLParamUUID parses a chi URL parameter as a UUID.
func URLParamUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &apperrors.ValidationError{Field: name, Message: "must be a UUID"}
	}
	return id, nil
}

// QueryInt reads an optional integer query parameter.
func QueryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &apperrors.ValidationError{Field: name, Message: "must be an integer"}
	}
	return n, nil
}

// QueryBool reads an optional boolean query parameter; absent means nil.
func QueryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, &apperrors.ValidationError{Field: name, Message: "must be a boolean"}
	}
	return &b, nil
}

// Caller returns the authenticated identity or writes a 401.
func Caller(w http.ResponseWriter, r *http.Request) (identity.Identity, bool) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return identity.Identity{}, false
	}
	return id, true
}
