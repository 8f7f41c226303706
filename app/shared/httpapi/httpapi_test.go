package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
)

func TestWriteError_StatusByKind(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: apperrors.NewValidationError("case must have at least one prediction"), wantStatus: http.StatusBadRequest},
		{name: "authorization", err: fmt.Errorf("GetCase: %w", &apperrors.AuthorizationError{UserID: uuid.New(), CaseID: uuid.New()}), wantStatus: http.StatusForbidden},
		{name: "conflict", err: &apperrors.ConflictError{Constraint: "judgements_pkey"}, wantStatus: http.StatusConflict},
		{name: "not found", err: fmt.Errorf("GetUser: %w", apperrors.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "store", err: &apperrors.StoreError{Err: errors.New("timeout")}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			WriteError(rr, req, logger, tt.err)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{name: "valid", payload: `{"name":"alice"}`},
		{name: "empty", payload: ``, wantErr: true},
		{name: "unknown field", payload: `{"nom":"alice"}`, wantErr: true},
		{name: "malformed", payload: `{"name":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.payload))
			var b body
			err := DecodeJSON(rr, req, &b)
			if tt.wantErr {
				assert.True(t, apperrors.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", b.Name)
		})
	}
}

func TestURLParamUUID(t *testing.T) {
	id := uuid.New()
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("caseID", id.String())
	rctx.URLParams.Add("bad", "nope")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	got, err := URLParamUUID(req, "caseID")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = URLParamUUID(req, "bad")
	assert.True(t, apperrors.IsValidation(err))
}

func TestQueryHelpers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=3&creator=true&bad=x", nil)

	n, err := QueryInt(req, "limit", 10)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = QueryInt(req, "missing", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	b, err := QueryBool(req, "creator")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.True(t, *b)

	_, err = QueryBool(req, "bad")
	assert.Error(t, err)
}
