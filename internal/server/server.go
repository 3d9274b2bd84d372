// Package server manages the lifecycle of the inbound HTTP transport:
// startup, signal handling, and graceful shutdown.
package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/anteater-game/server/internal/config"
	"github.com/anteater-game/server/internal/logger"
	"github.com/go-chi/chi/v5"
)

// Server defines the lifecycle contract for the transport server managed by
// this package. RunServer blocks until shutdown is requested; Shutdown
// releases resources.
type Server interface {
	RunServer()
	Shutdown()
}

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(router *chi.Mux, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.Address == "" {
		return nil, errNoAddressConfigured
	}

	return &server{
		httpServer: newHTTPServer(router, cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
