package adaptors

import (
	"context"

	"login_checker/internal/application/config"
	"login_checker/internal/domain/adaptors"
	"login_checker/internal/pkg/errors"

	log "github.com/sirupsen/logrus"
)

// NewResultSink builds the sink selected by cfg.Type.
func NewResultSink(ctx context.Context, cfg config.SinkConfig, log *log.Logger) (adaptors.ResultSink, error) {
	switch cfg.Type {
	case config.SinkLog, "":
		return NewLogSink(log), nil
	case config.SinkCSV:
		return NewCSVCellSink(cfg.CSVPath, cfg.Cell, log)
	case config.SinkSQL:
		return NewSQLCellSink(ctx, cfg.SQLDriver, cfg.SQLDSN, cfg.Cell, log)
	default:
		return nil, errors.Errorf(`unknown result sink %q`, cfg.Type)
	}
}
