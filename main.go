package main

import (
	"context"
	"os"
	"time"

	"login_checker/internal/application"
	"login_checker/internal/application/config"
	"login_checker/internal/http"

	log "github.com/sirupsen/logrus"
)

func main() {
	logInstance := log.New()
	cfg, err := config.NewAppConfig()
	if err != nil {
		logInstance.WithError(err).Fatal(`Failed to load config`)
		return
	}

	//log level
	logLevel, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logInstance.WithError(err).Fatal(`Failed to parse log level`)
		return
	}
	if cfg.DebugMode {
		logLevel = log.DebugLevel
	}

	logInstance.SetFormatter(&log.JSONFormatter{
		TimestampFormat:   time.RFC3339,
		DisableHTMLEscape: true,
		DisableTimestamp:  false,
	})

	logInstance.SetLevel(logLevel)

	ctx := context.WithoutCancel(context.Background())

	os.Exit(run(ctx, cfg, logInstance))
}

func run(ctx context.Context, cfg *config.AppConfig, logInstance *log.Logger) int {
	app, err := application.NewApp(ctx, cfg, logInstance)
	if err != nil {
		logInstance.WithError(err).Error(`Failed to initialise application`)
		return 1
	}
	defer app.Close()

	if cfg.RunOnce {
		// credentials come from the environment, never from source
		outcome := app.Reporter.Run(ctx, cfg.Login.Username, cfg.Login.Password)
		if !outcome.IsSuccess() {
			return 1
		}
		return 0
	}

	if err := http.Init(ctx, logInstance, cfg, app.Reporter); err != nil {
		logInstance.WithError(err).Error(`HTTP servers stopped with error`)
		return 1
	}
	return 0
}
