package models

import "fmt"

type OutcomeKind string

const (
	OutcomeSuccess OutcomeKind = "success"
	OutcomeFailure OutcomeKind = "failure"
	OutcomeError   OutcomeKind = "error"
)

// FailureReason is set only on failure outcomes.
type FailureReason string

const (
	ReasonNone                    FailureReason = ""
	ReasonRedirectedToLogin       FailureReason = "redirected_to_login"
	ReasonRedirectWithoutLocation FailureReason = "redirect_without_location"
	ReasonLoginPageReloaded       FailureReason = "login_page_reloaded"
	ReasonUnexpectedStatus        FailureReason = "unexpected_status"
)

// LoginOutcome is the result of one login attempt. Success and Failure mean
// the server answered; Error means no classifiable response was obtained.
type LoginOutcome struct {
	Kind       OutcomeKind
	Reason     FailureReason
	StatusCode int
	Location   string
	Detail     string
}

func Success(statusCode int, location string) LoginOutcome {
	return LoginOutcome{Kind: OutcomeSuccess, StatusCode: statusCode, Location: location}
}

func Failure(reason FailureReason, statusCode int, location string) LoginOutcome {
	return LoginOutcome{Kind: OutcomeFailure, Reason: reason, StatusCode: statusCode, Location: location}
}

func RequestError(detail string) LoginOutcome {
	return LoginOutcome{Kind: OutcomeError, Detail: detail}
}

func (o LoginOutcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}

func (o LoginOutcome) String() string {
	switch o.Kind {
	case OutcomeSuccess:
		return `Success`
	case OutcomeFailure:
		switch o.Reason {
		case ReasonRedirectedToLogin:
			return `Failure: redirected back to login page`
		case ReasonRedirectWithoutLocation:
			return `Failure: unexpected redirect with no location`
		case ReasonLoginPageReloaded:
			return `Failure: login page reloaded`
		default:
			return fmt.Sprintf(`Failure: unexpected status %d`, o.StatusCode)
		}
	default:
		return fmt.Sprintf(`Error: request failed: %s`, o.Detail)
	}
}
