package adaptors

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	apperrors "login_checker/internal/pkg/errors"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RoundTripFunc lets us mock http.RoundTripper easily.
type RoundTripFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func testForm() url.Values {
	return url.Values{
		"username": {"alice"},
		"password": {"s3cret"},
		"submit":   {"Login"},
		"direct":   {"yes"},
		"connect":  {""},
		"redirect": {""},
		"protocol": {"HTTPS"},
	}
}

func TestLoginClient_PostForm(t *testing.T) {
	logger := log.New()
	ctx := context.Background()
	const testURL = "https://example.com/login.php"

	cases := []struct {
		name         string
		transport    RoundTripFunc
		url          string
		wantCode     int
		wantLocation string
		wantBody     string
		wantErr      bool
	}{
		{
			name: "redirect is returned, not followed",
			transport: func(req *http.Request) (*http.Response, error) {
				h := make(http.Header)
				h.Set("Location", "/player.php")
				return &http.Response{
					StatusCode: http.StatusFound,
					Body:       io.NopCloser(strings.NewReader("")),
					Header:     h,
					Request:    req,
				}, nil
			},
			url:          testURL,
			wantCode:     http.StatusFound,
			wantLocation: "/player.php",
		},
		{
			name: "server error is a response, not an error",
			transport: func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusInternalServerError,
					Body:       io.NopCloser(strings.NewReader("oops")),
					Header:     make(http.Header),
					Request:    req,
				}, nil
			},
			url:      testURL,
			wantCode: http.StatusInternalServerError,
			wantBody: "oops",
		},
		{
			name: "unreadable body keeps status",
			transport: func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       errReadCloser{},
					Header:     make(http.Header),
					Request:    req,
				}, nil
			},
			url:      testURL,
			wantCode: http.StatusOK,
		},
		{
			name: "network error",
			transport: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("network failure")
			},
			url:     testURL,
			wantErr: true,
		},
		{
			name: "invalid URL",
			transport: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("transport must not be reached")
			},
			url:     "://bad url",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lc := newLoginClient(&http.Client{Timeout: time.Second, Transport: tc.transport}, logger)
			resp, err := lc.PostForm(ctx, tc.url, testForm())

			if tc.wantErr {
				require.Error(t, err)
				var te *apperrors.TransportError
				assert.True(t, errors.As(err, &te), "error should carry a TransportError")
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, resp.StatusCode)
			assert.Equal(t, tc.wantBody, resp.Body)
			if tc.wantLocation != "" {
				loc, ok := resp.Header("location")
				assert.True(t, ok)
				assert.Equal(t, tc.wantLocation, loc)
			}
		})
	}
}

func TestLoginClient_SendsFormAndDoesNotFollowRedirects(t *testing.T) {
	var followed bool
	var gotForm url.Values
	var gotContentType, gotMethod string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login.php":
			gotMethod = r.Method
			gotContentType = r.Header.Get("Content-Type")
			if err := r.ParseForm(); err != nil {
				t.Errorf("parse form: %v", err)
			}
			gotForm = r.PostForm
			http.Redirect(w, r, "/player.php", http.StatusFound)
		case "/player.php":
			followed = true
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	lc := NewLoginClient(2*time.Second, log.New())
	resp, err := lc.PostForm(context.Background(), srv.URL+"/login.php", testForm())
	require.NoError(t, err)

	assert.False(t, followed, "redirect must not be followed")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	loc, ok := resp.Header("Location")
	assert.True(t, ok)
	assert.Equal(t, "/player.php", loc)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, testForm(), gotForm)
}

func TestLoginClient_UnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := srv.URL + "/login.php"
	srv.Close()

	lc := NewLoginClient(2*time.Second, log.New())
	resp, err := lc.PostForm(context.Background(), target, testForm())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, apperrors.TransportCause(err), "connect")
}

// errReadCloser is an io.ReadCloser that always errors on Read.
type errReadCloser struct{}

func (e errReadCloser) Read(p []byte) (int, error) {
	return 0, errors.New("read failed")
}
func (e errReadCloser) Close() error {
	return nil
}
