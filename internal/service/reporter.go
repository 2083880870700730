package service

import (
	"context"
	"fmt"

	"login_checker/internal/domain/adaptors"
	"login_checker/internal/domain/models"
	"login_checker/internal/pkg/errors"
	"login_checker/internal/pkg/metrics"

	log "github.com/sirupsen/logrus"
)

// Reporter runs one attempt and records its outcome in a sink.
type Reporter struct {
	log       *log.Logger
	attempter *LoginAttempter
	sink      adaptors.ResultSink
	targetURL string
}

func NewReporter(log *log.Logger, attempter *LoginAttempter, sink adaptors.ResultSink, targetURL string) *Reporter {
	return &Reporter{
		log:       log,
		attempter: attempter,
		sink:      sink,
		targetURL: targetURL,
	}
}

// Run attempts the login and writes the outcome string to the sink. When the
// sink rejects the write, or panics, the outcome is still logged and returned.
func (r *Reporter) Run(ctx context.Context, username, password string) models.LoginOutcome {
	outcome := r.attempter.Attempt(ctx, models.Credentials{Username: username, Password: password}, r.targetURL)

	if err := r.write(ctx, outcome.String()); err != nil {
		metrics.ResultSinkErrorsTotal.WithLabelValues(fmt.Sprintf(`%T`, r.sink)).Inc()
		r.log.WithContext(ctx).WithError(err).WithField(`outcome`, outcome.String()).
			Error(`failed to write outcome to result sink`)
	}

	return outcome
}

func (r *Reporter) write(ctx context.Context, value string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Errorf(`result sink panicked: %v`, rec)
		}
	}()
	return r.sink.Write(ctx, value)
}
