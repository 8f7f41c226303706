package feedhandlers

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	feedservice "github.com/Black-And-White-Club/dxwager/app/modules/feed/application"
	feeddomain "github.com/Black-And-White-Club/dxwager/app/modules/feed/domain"
	"github.com/Black-And-White-Club/dxwager/app/shared/httpapi"
)

// Handlers exposes the activity feed over HTTP.
type Handlers interface {
	HandleMyEvents(w http.ResponseWriter, r *http.Request)
}

// FeedHandlers implements the Handlers interface.
type FeedHandlers struct {
	service feedservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewFeedHandlers creates a new FeedHandlers instance.
func NewFeedHandlers(service feedservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &FeedHandlers{service: service, logger: logger, tracer: tracer}
}

// HandleMyEvents serves GET /api/me/events?limit=N.
func (h *FeedHandlers) HandleMyEvents(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpapi.Caller(w, r)
	if !ok {
		return
	}
	limit, err := httpapi.QueryInt(r, "limit", 0)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	events, err := h.service.Events(r.Context(), caller.ID, limit)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	if events == nil {
		events = []feeddomain.Event{}
	}
	httpapi.WriteJSON(w, http.StatusOK, events)
}
