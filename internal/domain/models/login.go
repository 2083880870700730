package models

import (
	"net/url"
	"strings"
)

// Form field values the target login form expects next to the credentials.
const (
	FormSubmit   = "Login"
	FormDirect   = "yes"
	FormConnect  = ""
	FormRedirect = ""
	FormProtocol = "HTTPS"
)

type Credentials struct {
	Username string
	Password string
}

type LoginRequest struct {
	Credentials Credentials
}

func NewLoginRequest(creds Credentials) LoginRequest {
	return LoginRequest{Credentials: creds}
}

// Form returns the complete form body. Every field is sent even when empty.
func (r LoginRequest) Form() url.Values {
	return url.Values{
		"username": {r.Credentials.Username},
		"password": {r.Credentials.Password},
		"submit":   {FormSubmit},
		"direct":   {FormDirect},
		"connect":  {FormConnect},
		"redirect": {FormRedirect},
		"protocol": {FormProtocol},
	}
}

type LoginResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// Header looks a header up by name ignoring case.
func (r *LoginResponse) Header(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	if v, ok := r.Headers[name]; ok {
		return v, true
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}
