package server

import (
	"context"
	"net/http"

	"game_collector/internal/config"
)

// Server wraps the HTTP server with the configured timeouts.
type Server struct {
	srv *http.Server
}

func New(handler http.Handler, cfg config.ServerConfig) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
