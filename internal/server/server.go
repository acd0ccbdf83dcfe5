package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/internal/handler"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
)

type server struct {
	httpServer *httpServer
	workers    Lifecycle
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, workers Lifecycle, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), handlers.HTTP.Close, cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.workers = workers
	servers.logger = logger

	return servers, nil
}

// RunServer starts the workers, serves HTTP and blocks until ctx is done,
// a stop signal arrives, the listener fails or a worker ends.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	var workersDone <-chan struct{}
	if s.workers != nil {
		if err := s.workers.Start(ctx); err != nil {
			return fmt.Errorf("error starting workers: %w", err)
		}
		workersDone = s.workers.Done()
	}

	serveErr := make(chan error, 1)
	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErr:
	case <-workersDone:
		// workers also end when ctx is cancelled
		if ctx.Err() == nil {
			s.logger.Warn().Msg("background worker finished, shutting down")
			err = errWorkerFinished
		}
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) Shutdown() {
	// HTTP first so no request reads from a stopped session
	s.httpServer.Shutdown()

	if s.workers != nil {
		s.workers.Stop()
	}
}
