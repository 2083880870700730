package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"login_checker/internal/domain/models"

	log "github.com/sirupsen/logrus"
)

// LoginReporter runs one attempt-and-report cycle.
type LoginReporter interface {
	Run(ctx context.Context, username, password string) models.LoginOutcome
}

type LoginAttemptHandler struct {
	reporter LoginReporter
	log      *log.Logger
}

type LoginAttemptRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginAttemptResponse struct {
	Outcome    string `json:"outcome"`
	Kind       string `json:"kind"`
	Reason     string `json:"reason,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	Location   string `json:"location,omitempty"`
	Detail     string `json:"detail,omitempty"`
}

func NewLoginAttemptHandler(reporter LoginReporter, log *log.Logger) *LoginAttemptHandler {
	return &LoginAttemptHandler{
		reporter: reporter,
		log:      log,
	}
}

// Handle answers 200 for every classified outcome, failures included; only a
// malformed request body is a client error.
func (h *LoginAttemptHandler) Handle(w http.ResponseWriter, r *http.Request) {
	h.log.Debug(`login attempt handler called`)

	var request LoginAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.log.WithError(err).Error(`failed to decode request body`)
		sendError(w, `failed to decode request body`, err, http.StatusBadRequest)
		return
	}

	outcome := h.reporter.Run(r.Context(), request.Username, request.Password)

	response := LoginAttemptResponse{
		Outcome:    outcome.String(),
		Kind:       string(outcome.Kind),
		Reason:     string(outcome.Reason),
		StatusCode: outcome.StatusCode,
		Location:   outcome.Location,
		Detail:     outcome.Detail,
	}

	w.Header().Set(`Content-Type`, `application/json`)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.WithError(err).Error(`failed to encode response`)
	}
}
