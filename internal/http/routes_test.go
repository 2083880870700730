package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"login_checker/internal/domain/models"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type stubReporter struct {
	outcome models.LoginOutcome
}

func (s stubReporter) Run(context.Context, string, string) models.LoginOutcome {
	return s.outcome
}

func TestRouter(t *testing.T) {
	router := NewRouter(context.Background(), stubReporter{outcome: models.Success(302, "/player.php")}, log.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("x-request-id"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login/attempt", strings.NewReader(`{"username":"a","password":"b"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"Success"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login/attempt", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNewHTTPServerConfig(t *testing.T) {
	t.Setenv("HTTP_SERVER_HOST", ":8080")
	t.Setenv("HTTP_APP_WRITE_TIMEOUT_DURATION", "90s")
	t.Setenv("HTTP_APP_READ_TIMEOUT_DURATION", "")

	cfg, err := NewHTTPServerConfig()
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Host)
	assert.Equal(t, 90*time.Second, cfg.Timeouts.Write)
	assert.Equal(t, 10*time.Second, cfg.Timeouts.Read)

	t.Setenv("HTTP_APP_IDLE_TIMEOUT_DURATION", "forever")
	_, err = NewHTTPServerConfig()
	assert.ErrorContains(t, err, "HTTP_APP_IDLE_TIMEOUT_DURATION")

	t.Setenv("HTTP_SERVER_HOST", "")
	_, err = NewHTTPServerConfig()
	assert.ErrorContains(t, err, "HTTP_SERVER_HOST is required")
}
