package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// New creates a new instance of the base error
func New(msg string) error {
	return fmt.Errorf("%s: %s", msg, filePath())
}

// Wrap creates a new error of the wrapped error
func Wrap(err error, msg string) error {
	return fmt.Errorf("%s %s \ncaused by: %w", msg, filePath(), err)
}

// Is checks if the error is equal to the target
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As returns the wrapped error
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

func Errorf(format string, args ...interface{}) error {
	args = append(args, filePath())
	return fmt.Errorf(format+` %s`, args...)
}

// TransportError marks a request that never produced an HTTP response
// (dns, dial, tls, timeout). Its message is the cause text only, without
// call-site locations.
type TransportError struct {
	Err error
}

func NewTransportError(err error) *TransportError {
	return &TransportError{Err: err}
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return `transport failure`
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// TransportCause returns the cause text of the first TransportError in the
// chain, or err's own text when there is none.
func TransportCause(err error) string {
	var te *TransportError
	if errors.As(err, &te) {
		return te.Error()
	}
	return err.Error()
}

func filePath() string {
	pc, f, l, ok := runtime.Caller(2)
	fn := `unknown`
	if ok {
		fn = runtime.FuncForPC(pc).Name()
	}
	return fmt.Sprintf("at %s\n\t%s:%d", fn, f, l)
}
