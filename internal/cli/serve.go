package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	httpAdapter "github.com/quinnjr/fish-dating-simulator/pkg/adapters/http"
)

// ShutdownTimeout bounds the graceful shutdown of the inspection server.
const ShutdownTimeout = 5 * time.Second

// Serve runs the read-only inspection server until ctx is cancelled.
func Serve(ctx context.Context, app *App, addr string, out io.Writer) error {
	srv := &http.Server{
		Addr: addr,
		Handler: httpAdapter.NewHandler(app.Sim.Catalog,
			httpAdapter.WithLogger(app.Logger),
			httpAdapter.WithMetrics(app.Metrics),
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		fmt.Fprintf(out, "Serving %d characters on http://%s\n", len(app.Sim.Catalog.All()), addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.Logger.Warn("graceful shutdown did not complete", "timeout", ShutdownTimeout, "err", err)
		return srv.Close()
	}
	fmt.Fprintln(out, "Server stopped")
	return nil
}
