package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"login_checker/internal/domain/adaptors"
	"login_checker/internal/domain/models"
	"login_checker/internal/pkg/errors"
	"login_checker/internal/pkg/metrics"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// DefaultLoginMarker is the substring of a redirect target that means the
// site sent us back to its login page.
const DefaultLoginMarker = "login.php"

type LoginAttempter struct {
	log         *log.Logger
	client      adaptors.LoginClient
	loginMarker string
}

func NewLoginAttempter(log *log.Logger, client adaptors.LoginClient, loginMarker string) *LoginAttempter {
	if loginMarker == "" {
		loginMarker = DefaultLoginMarker
	}
	return &LoginAttempter{
		log:         log,
		client:      client,
		loginMarker: loginMarker,
	}
}

// Attempt posts the login form once and classifies the answer. It always
// returns exactly one outcome; request failures and panics become an
// Error outcome.
func (a *LoginAttempter) Attempt(ctx context.Context, creds models.Credentials, targetURL string) (outcome models.LoginOutcome) {
	entry := a.log.WithContext(ctx).WithFields(log.Fields{
		`attempt_id`: uuid.NewString(),
		`target`:     targetURL,
	})

	defer func() {
		if rec := recover(); rec != nil {
			entry.WithField(`panic`, fmt.Sprintf(`%v`, rec)).Error(`login attempt panicked`)
			outcome = models.RequestError(fmt.Sprintf(`%v`, rec))
		}
		metrics.LoginAttemptsTotal.WithLabelValues(string(outcome.Kind), string(outcome.Reason)).Inc()
		entry.WithFields(log.Fields{
			`kind`:    outcome.Kind,
			`reason`:  outcome.Reason,
			`status`:  outcome.StatusCode,
			`outcome`: outcome.String(),
		}).Info(`login attempt finished`)
	}()

	entry.Debug(`login attempt started`)

	resp, err := a.client.PostForm(ctx, targetURL, models.NewLoginRequest(creds).Form())
	if err != nil {
		// the client already logged the failure
		return models.RequestError(errors.TransportCause(err))
	}

	return Classify(resp, a.loginMarker)
}

// Classify maps a login response to an outcome. It reads only the status
// code and the Location header; the body is ignored.
func Classify(resp *models.LoginResponse, loginMarker string) models.LoginOutcome {
	if resp == nil {
		return models.RequestError(`no response`)
	}

	switch resp.StatusCode {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther, http.StatusTemporaryRedirect:
		location, ok := resp.Header(`Location`)
		location = strings.TrimSpace(location)
		if !ok || location == "" {
			return models.Failure(models.ReasonRedirectWithoutLocation, resp.StatusCode, "")
		}
		// plain substring match, a query value naming the login page counts too
		if strings.Contains(location, loginMarker) {
			return models.Failure(models.ReasonRedirectedToLogin, resp.StatusCode, location)
		}
		return models.Success(resp.StatusCode, location)
	case http.StatusOK:
		return models.Failure(models.ReasonLoginPageReloaded, resp.StatusCode, "")
	default:
		return models.Failure(models.ReasonUnexpectedStatus, resp.StatusCode, "")
	}
}
