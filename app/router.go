package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhandlers "github.com/Black-And-White-Club/dxwager/app/modules/auth/infrastructure/handlers"
	"github.com/Black-And-White-Club/dxwager/app/shared/httpapi"
)

// newRouter builds the root router with the shared middleware stack and the
// unauthenticated operational endpoints.
func (app *App) newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(authhandlers.CORSMiddleware(app.Config.HTTP.AllowedOrigins))

	r.Get("/healthz", app.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(app.Registry, promhttp.HandlerOpts{Registry: app.Registry}))

	return r
}

func (app *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := app.DB.GetDB().PingContext(r.Context()); err != nil {
		httpapi.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
