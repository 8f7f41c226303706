package calibrationhandlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	calibrationservice "github.com/Black-And-White-Club/dxwager/app/modules/calibration/application"
	"github.com/Black-And-White-Club/dxwager/app/shared/identity"
)

type FakeService struct {
	ScoreFunc       func(ctx context.Context, userID uuid.UUID, adjusted bool) (*float64, error)
	ScoresFunc      func(ctx context.Context, userID uuid.UUID) ([]calibrationservice.ScoreRow, error)
	RenderTrendFunc func(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

var _ calibrationservice.Service = (*FakeService)(nil)

func (f *FakeService) Score(ctx context.Context, userID uuid.UUID, adjusted bool) (*float64, error) {
	if f.ScoreFunc != nil {
		return f.ScoreFunc(ctx, userID, adjusted)
	}
	return nil, nil
}

func (f *FakeService) Scores(ctx context.Context, userID uuid.UUID) ([]calibrationservice.ScoreRow, error) {
	if f.ScoresFunc != nil {
		return f.ScoresFunc(ctx, userID)
	}
	return []calibrationservice.ScoreRow{}, nil
}

func (f *FakeService) RenderTrend(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	if f.RenderTrendFunc != nil {
		return f.RenderTrendFunc(ctx, userID)
	}
	return []byte("\x89PNG"), nil
}

func newTestRouter(svc *FakeService, caller *identity.Identity) http.Handler {
	h := NewCalibrationHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), noop.NewTracerProvider().Tracer("test"))
	r := chi.NewRouter()
	if caller != nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(identity.WithIdentity(req.Context(), *caller)))
			})
		})
	}
	r.Get("/api/me/score", h.HandleMyScore)
	r.Get("/api/me/scores", h.HandleMyScores)
	r.Get("/api/me/calibration.png", h.HandleMyTrend)
	r.Get("/api/users/{userID}/score", h.HandleUserScore)
	return r
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestCalibrationHandlers_HandleMyScore(t *testing.T) {
	caller := identity.Identity{ID: uuid.New(), Name: "dana"}
	half := 0.5

	tests := []struct {
		name         string
		query        string
		score        *float64
		wantStatus   int
		wantAdjusted bool
		wantNull     bool
	}{
		{name: "plain", query: "", score: &half, wantStatus: http.StatusOK},
		{name: "adjusted", query: "?adjusted=true", score: &half, wantStatus: http.StatusOK, wantAdjusted: true},
		{name: "nothing judged", query: "", score: nil, wantStatus: http.StatusOK, wantNull: true},
		{name: "bad flag", query: "?adjusted=perhaps", wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAdjusted bool
			svc := &FakeService{
				ScoreFunc: func(ctx context.Context, userID uuid.UUID, adjusted bool) (*float64, error) {
					assert.Equal(t, caller.ID, userID)
					gotAdjusted = adjusted
					return tt.score, nil
				},
			}
			rec := get(newTestRouter(svc, &caller), "/api/me/score"+tt.query)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			assert.Equal(t, tt.wantAdjusted, gotAdjusted)

			var body map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			if tt.wantNull {
				assert.Nil(t, body["score"])
			} else {
				assert.InDelta(t, 0.5, body["score"], 1e-12)
			}
		})
	}
}

func TestCalibrationHandlers_HandleUserScore(t *testing.T) {
	target := uuid.New()
	svc := &FakeService{
		ScoreFunc: func(ctx context.Context, userID uuid.UUID, adjusted bool) (*float64, error) {
			assert.Equal(t, target, userID)
			return nil, nil
		},
	}
	caller := identity.Identity{ID: uuid.New()}
	assert.Equal(t, http.StatusOK, get(newTestRouter(svc, &caller), "/api/users/"+target.String()+"/score").Code)
	assert.Equal(t, http.StatusBadRequest, get(newTestRouter(svc, &caller), "/api/users/abc/score").Code)
}

func TestCalibrationHandlers_HandleMyTrend(t *testing.T) {
	caller := identity.Identity{ID: uuid.New()}
	rec := get(newTestRouter(&FakeService{}, &caller), "/api/me/calibration.png")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	rec = get(newTestRouter(&FakeService{}, nil), "/api/me/calibration.png")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
