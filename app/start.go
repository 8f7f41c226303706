package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
)

// Run serves HTTP until ctx is cancelled, then shuts the server down.
func (app *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         app.Config.HTTP.Addr,
		Handler:      app.handler,
		ReadTimeout:  app.Config.HTTP.ReadTimeout,
		WriteTimeout: app.Config.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		app.Logger.InfoContext(ctx, "Starting HTTP server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	return app.shutdown(srv)
}
