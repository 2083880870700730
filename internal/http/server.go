package http

import (
	"context"
	"net/http"
	"time"

	"login_checker/internal/pkg/errors"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

// Server is a named http.Server with graceful shutdown.
type Server struct {
	name         string
	server       *http.Server
	shutdownWait time.Duration
	log          *log.Logger
}

func NewHttpServer(config *HTTPServerConfig, router *chi.Mux, log *log.Logger) *Server {
	return &Server{
		name: `api`,
		server: &http.Server{
			Addr:              config.Host,
			Handler:           router,
			ReadTimeout:       config.Timeouts.Read,
			ReadHeaderTimeout: config.Timeouts.ReadHeader,
			WriteTimeout:      config.Timeouts.Write,
			IdleTimeout:       config.Timeouts.Idle,
		},
		shutdownWait: config.Timeouts.ShutdownWait,
		log:          log,
	}
}

func (s *Server) Start() error {
	s.log.WithField(`server`, s.name).Info(`server starting on `, s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, s.name+` server failed`)
	}
	return nil
}

func (s *Server) Stop() error {
	if s.server == nil {
		return errors.New(`server is not initialized`)
	}
	s.log.WithField(`server`, s.name).Info(`shutting down server...`)

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownWait)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, `failed to shutdown `+s.name+` server`)
	}

	s.log.WithField(`server`, s.name).Info(`server exiting`)
	return nil
}
