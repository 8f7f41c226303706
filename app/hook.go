package app

import (
	"context"
	"fmt"
	"net/http"
)

// shutdown drains in-flight requests within the configured timeout.
func (app *App) shutdown(srv *http.Server) error {
	app.Logger.Info("Shutting down HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), app.Config.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
