package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/aretw0/turing"
	turinghttp "github.com/aretw0/turing/pkg/adapters/http"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ShutdownTimeout bounds how long in-flight requests may take after a signal.
const ShutdownTimeout = 5 * time.Second

// NewServeHandler opens a session with metrics hooks and returns the HTTP
// handler for it. The caller closes the session.
func NewServeHandler(opts EngineOptions) (http.Handler, *Session, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := observability.NewMetrics(registry)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	session, err := OpenSession(opts, metrics.Hooks())
	if err != nil {
		return nil, nil, err
	}

	server := &turinghttp.Server{
		Evaluator: session.Engine,
		Gatherer:  registry,
		Logger:    session.Logger,
		Version:   turing.Version,
	}
	return server.Routes(), session, nil
}

// Serve runs the HTTP API until ctx is done, then shuts down gracefully.
// Status lines go to out.
func Serve(ctx context.Context, opts ServeOptions, out io.Writer) error {
	handler, session, err := NewServeHandler(opts.EngineOptions)
	if err != nil {
		return err
	}
	defer session.Close()

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", opts.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Fprintf(out, "Starting turing server on %s\n", ln.Addr())
	fmt.Fprintf(out, "Serving machine from: %s\n", session.Engine.Source())

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		fmt.Fprintln(out, "\nShutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			closeErr := srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", ShutdownTimeout, errors.Join(err, closeErr))
		}
		fmt.Fprintln(out, "Turing server stopped gracefully")
		return nil
	}
}
