package http

import (
	"context"
	"os/signal"
	"syscall"

	"login_checker/internal/application/config"
	"login_checker/internal/http/handlers"
	"login_checker/internal/pkg/errors"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Router struct {
	httpRouter *chi.Mux
	log        *log.Logger
}

func NewRouter(ctx context.Context, reporter handlers.LoginReporter, log *log.Logger) *chi.Mux {
	router := &Router{
		httpRouter: chi.NewRouter(),
		log:        log,
	}
	initRoutes(ctx, router, reporter)
	return router.httpRouter
}

// Init serves the api, metrics and pprof servers until SIGINT or SIGTERM,
// or until one of them fails.
func Init(ctx context.Context, log *log.Logger, appCfg *config.AppConfig, reporter handlers.LoginReporter) error {
	cfg, err := NewHTTPServerConfig()
	if err != nil {
		return errors.Wrap(err, `failed to load http server config`)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	servers := []*Server{
		NewHttpServer(cfg, NewRouter(ctx, reporter, log), log),
		NewMetricsServer(appCfg.MetricsHost, cfg.Timeouts.ShutdownWait, log),
		NewPprofServer(cfg.PprofHost, cfg.Timeouts.ShutdownWait, log),
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range servers {
		g.Go(s.Start)
	}

	g.Go(func() error {
		<-gctx.Done()
		var stopErr error
		for _, s := range servers {
			if err := s.Stop(); err != nil {
				log.WithError(err).Error(`failed to stop server`)
				stopErr = err
			}
		}
		return stopErr
	})

	return g.Wait()
}
