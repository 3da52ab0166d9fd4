package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"dog_video_factory/infrastructure/logger"

	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 5 * time.Second

type Server struct {
	httpServer      *http.Server
	logger          logger.Logger
	shutdownTimeout time.Duration
}

type Option func(*Server)

// WithShutdownTimeout bounds how long Run waits for in-flight requests after
// ctx is cancelled. Requests still running afterwards are cut off.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

func NewServer(addr string, handler http.Handler, logger logger.Logger, opts ...Option) *Server {
	s := &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			// no WriteTimeout: a generation call may hold the response for minutes
		},
		logger:          logger,
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run serves until ctx is cancelled or the listener fails, then shuts the
// server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Starting HTTP server on " + s.httpServer.Addr)

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}

		s.logger.Info("HTTP server: ListenAndServe returned.")
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		s.logger.Info("Shutting down HTTP server...")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancelShutdown()

		err := s.httpServer.Shutdown(shutdownCtx)
		if errors.Is(err, context.DeadlineExceeded) {
			s.logger.Warning(fmt.Sprintf("HTTP server: requests still running after %s, closing them", s.shutdownTimeout))
			_ = s.httpServer.Close()
			return nil
		}
		if err != nil {
			s.logger.Error("Error shutting down HTTP server", err)
			return fmt.Errorf("failed to shut down HTTP server: %w", err)
		}

		s.logger.Info("HTTP server shut down cleanly.")
		return nil
	})

	return g.Wait()
}
