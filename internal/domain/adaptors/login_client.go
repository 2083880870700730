package adaptors

import (
	"context"
	"net/url"

	"login_checker/internal/domain/models"
)

// LoginClient posts a login form and hands back whatever the server answered.
// A non-nil error means no response was obtained at all.
type LoginClient interface {
	PostForm(ctx context.Context, targetURL string, form url.Values) (*models.LoginResponse, error)
}
