package application

import (
	"context"

	"login_checker/internal/adaptors"
	"login_checker/internal/application/config"
	"login_checker/internal/pkg/errors"
	"login_checker/internal/service"

	log "github.com/sirupsen/logrus"
)

// App holds the wired login reporter and the sink it writes to. Close
// releases the sink.
type App struct {
	Reporter *service.Reporter
	sink     interface{ Close() error }
}

func NewApp(ctx context.Context, cfg *config.AppConfig, logger *log.Logger) (*App, error) {
	sink, err := adaptors.NewResultSink(ctx, cfg.Sink, logger)
	if err != nil {
		return nil, errors.Wrap(err, `failed to create result sink`)
	}

	client := adaptors.NewLoginClient(cfg.Login.RequestTimeout, logger)
	attempter := service.NewLoginAttempter(logger, client, cfg.Login.PageMarker)

	return &App{
		Reporter: service.NewReporter(logger, attempter, sink, cfg.Login.TargetURL),
		sink:     sink,
	}, nil
}

func (a *App) Close() error {
	return a.sink.Close()
}
