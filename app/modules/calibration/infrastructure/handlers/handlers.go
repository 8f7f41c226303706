package calibrationhandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	calibrationservice "github.com/Black-And-White-Club/dxwager/app/modules/calibration/application"
	"github.com/Black-And-White-Club/dxwager/app/shared/httpapi"
)

// Handlers exposes calibration scores over HTTP.
type Handlers interface {
	HandleMyScore(w http.ResponseWriter, r *http.Request)
	HandleMyScores(w http.ResponseWriter, r *http.Request)
	HandleMyTrend(w http.ResponseWriter, r *http.Request)
	HandleUserScore(w http.ResponseWriter, r *http.Request)
	HandleUserScores(w http.ResponseWriter, r *http.Request)
}

// ScoreResponse carries a Brier score, null when nothing has been judged.
type ScoreResponse struct {
	Score    *float64 `json:"score"`
	Adjusted bool     `json:"adjusted"`
}

// CalibrationHandlers implements the Handlers interface.
type CalibrationHandlers struct {
	service calibrationservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewCalibrationHandlers creates a new CalibrationHandlers instance.
func NewCalibrationHandlers(service calibrationservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &CalibrationHandlers{service: service, logger: logger, tracer: tracer}
}

func (h *CalibrationHandlers) HandleMyScore(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	h.writeScore(w, r, caller.ID)
}

func (h *CalibrationHandlers) HandleUserScore(w http.ResponseWriter, r *http.Request) {
	userID, err := httpapi.URLParamUUID(r, "userID")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	h.writeScore(w, r, userID)
}

func (h *CalibrationHandlers) writeScore(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	adjusted, err := httpapi.QueryBool(r, "adjusted")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	wantAdjusted := adjusted != nil && *adjusted

	score, err := h.service.Score(r.Context(), userID, wantAdjusted)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, ScoreResponse{Score: score, Adjusted: wantAdjusted})
}

func (h *CalibrationHandlers) HandleMyScores(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	h.writeScores(w, r, caller.ID)
}

func (h *CalibrationHandlers) HandleUserScores(w http.ResponseWriter, r *http.Request) {
	userID, err := httpapi.URLParamUUID(r, "userID")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	h.writeScores(w, r, userID)
}

func (h *CalibrationHandlers) writeScores(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	rows, err := h.service.Scores(r.Context(), userID)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, rows)
}

// HandleMyTrend serves the caller's calibration chart as a PNG.
func (h *CalibrationHandlers) HandleMyTrend(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	png, err := h.service.RenderTrend(r.Context(), caller.ID)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
