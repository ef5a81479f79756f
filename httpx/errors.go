package httpx

import (
	"fmt"
	"net/http"

	"github.com/mbolis/confirmation-statement/log"
	"github.com/pkg/errors"
)

// ValidationError is a bad form value or request parameter. It is never
// retried; Status is the response code the error page is served with.
type ValidationError struct {
	Status int
	Msg    string
	Value  string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %q", e.Msg, e.Value)
}

// NewValidationError builds a 500 class error for a value that the page
// itself could never have posted. The caller truncates value.
func NewValidationError(msg, value string) *ValidationError {
	return &ValidationError{Status: http.StatusInternalServerError, Msg: msg, Value: value}
}

// NewBadRequest builds a 400 class error for a malformed query or path parameter.
func NewBadRequest(msg, value string) *ValidationError {
	return &ValidationError{Status: http.StatusBadRequest, Msg: msg, Value: value}
}

// RemoteError is an upstream API failure: a status of 400 or above, a
// network failure or an undecodable payload. StatusCode is 0 when no
// response was received; Body holds the start of an error response.
type RemoteError struct {
	Op         string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream responded %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// InvariantViolation is upstream data that breaks an assumption the wizard
// relies on, e.g. more PSCs than allowed.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string {
	return "invariant violation: " + e.Msg
}

func Invariantf(format string, args ...any) *InvariantViolation {
	return &InvariantViolation{Msg: fmt.Sprintf(format, args...)}
}

// IsStatus reports whether err is a RemoteError carrying the given status.
func IsStatus(err error, status int) bool {
	var remote *RemoteError
	return errors.As(err, &remote) && remote.StatusCode == status
}

// StatusOf maps err to the status code of the error page.
func StatusOf(err error) int {
	var validation *ValidationError
	if errors.As(err, &validation) && validation.Status != 0 {
		return validation.Status
	}
	return http.StatusInternalServerError
}

// LogError logs err under code, at WARN for validation errors and ERROR for
// everything else.
func LogError(code string, err error) {
	var validation *ValidationError
	entry := log.WithCode(code).WithField("status", StatusOf(err))
	if errors.As(err, &validation) {
		entry.Warn(err)
		return
	}
	entry.Error(err)
}

// Will log an error, and send an HTTP response with status 500 and default text
func LogInternalError(w http.ResponseWriter, code string, err error) {
	log.WithCode(code).Error(err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Will log an error code at the given level, and send
// an HTTP response with status and default text
func LogStatus(w http.ResponseWriter, status int, level log.Level, code string) {
	log.Log(level, code)
	http.Error(w, http.StatusText(status), status)
}
