package adaptors

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"login_checker/internal/domain/models"
	"login_checker/internal/pkg/errors"
	"login_checker/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// maxBodyBytes caps how much of the login response body is kept.
const maxBodyBytes = 1 << 20

type LoginClient struct {
	client *http.Client
	log    *log.Logger
}

func NewLoginClient(timeout time.Duration, log *log.Logger) *LoginClient {
	rTripper := promhttp.InstrumentRoundTripperDuration(
		metrics.HTTPClientRequestDuration,
		promhttp.InstrumentRoundTripperCounter(metrics.HTTPClientRequestsTotal, http.DefaultTransport))

	return newLoginClient(&http.Client{Timeout: timeout, Transport: rTripper}, log)
}

// newLoginClient disables redirect following on c. The client never gets a
// cookie jar so every attempt starts without a session.
func newLoginClient(c *http.Client, log *log.Logger) *LoginClient {
	c.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	c.Jar = nil
	return &LoginClient{client: c, log: log}
}

func (l *LoginClient) PostForm(ctx context.Context, targetURL string, form url.Values) (*models.LoginResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, strings.NewReader(form.Encode()))
	if err != nil {
		l.log.WithError(err).Error(`failed to create login request`)
		return nil, errors.Wrap(errors.NewTransportError(err), `failed to create login request`)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := l.client.Do(req)
	if err != nil {
		metrics.HTTPClientTransportErrorsTotal.WithLabelValues(http.MethodPost).Inc()
		l.log.WithError(err).WithField(`target`, targetURL).Error(`login request failed`)
		return nil, errors.Wrap(errors.NewTransportError(err), `login request failed`)
	}
	defer resp.Body.Close()

	headers := make(map[string]string, len(resp.Header))
	for name := range resp.Header {
		headers[name] = resp.Header.Get(name)
	}

	loginResp := &models.LoginResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
	}

	bodyByte, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		// status and headers are enough to classify
		l.log.WithError(err).Warn(`failed to read login response body`)
		return loginResp, nil
	}
	loginResp.Body = string(bodyByte)

	return loginResp, nil
}
