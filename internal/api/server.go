// Package api serves the topping and pizza management HTTP API
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/thenoetrevino/pizzeria/internal/app"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout bounds how long in-flight requests get to finish on shutdown
const ShutdownTimeout = 5 * time.Second

// Server represents the pizzeria API server
type Server struct {
	app          *app.App
	logger       *slog.Logger
	listener     net.Listener
	httpServer   *http.Server
	metrics      *Metrics
	registry     *prometheus.Registry
	shutdownOnce sync.Once
	shutdownErr  error
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the server logger; the app logger is used otherwise
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRegistry sets the Prometheus registry metrics are registered with
func WithRegistry(registry *prometheus.Registry) Option {
	return func(s *Server) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// NewServer creates a new API server listening on addr.
// The listener is opened immediately so Addr reports the bound port.
func NewServer(addr string, a *app.App, opts ...Option) (*Server, error) {
	s := &Server{
		app:      a,
		logger:   a.Logger(),
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}

	metrics, err := NewMetrics(s.registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	s.metrics = metrics

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}

	return s, nil
}

// Addr returns the address the server is listening on
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Start serves requests until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// A closed server must also release the shutdown goroutine below
		defer cancel()

		s.logger.Info("api server listening", "addr", s.Addr())
		if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return s.Shutdown()
	})

	return g.Wait()
}

// Shutdown stops accepting requests and waits for in-flight ones to finish.
// Safe to call more than once.
func (s *Server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		s.logger.Info("api server shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.shutdownErr = fmt.Errorf("failed to shut down: %w", err)
		}
		// Only needed when Start never ran; Serve closes the listener otherwise
		_ = s.listener.Close()
	})
	return s.shutdownErr
}

// Metrics returns the server's request metrics
func (s *Server) Metrics() *Metrics {
	return s.metrics
}
