package adaptors

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// LogSink prints the outcome to the application log.
type LogSink struct {
	log *log.Logger
}

func NewLogSink(log *log.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Write(ctx context.Context, value string) error {
	s.log.WithContext(ctx).WithField(`sink`, `log`).Info(value)
	return nil
}

func (s *LogSink) Close() error {
	return nil
}
