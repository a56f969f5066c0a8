package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that knows the HTTP status it should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	cause error
}

var (
	MissingDeviceID  = &Failure{Code: http.StatusBadRequest, Message: "missing device id header"}
	MissingSignature = &Failure{Code: http.StatusUnauthorized, Message: "missing request signature"}
	UnknownClient    = &Failure{Code: http.StatusForbidden, Message: "unknown client id"}
)

func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the cause a Failure was built from, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// Wrap returns a Failure with its own message that still matches cause via errors.Is.
func Wrap(code int, message string, cause error) error {
	return &Failure{Code: code, Message: message, cause: cause}
}

// fromError keeps err as the cause and its text as the message. A nil err stays nil.
func fromError(code int, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: code, Message: err.Error(), cause: err}
}

func BadRequest(err error) error {
	return fromError(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

func InternalError(err error) error {
	return fromError(http.StatusInternalServerError, err)
}

// ServiceUnavailable marks a dependency that could not be reached.
func ServiceUnavailable(err error) error {
	return fromError(http.StatusServiceUnavailable, err)
}

// FromStatus maps an upstream HTTP status and message onto a Failure. An empty
// message becomes the status text.
func FromStatus(code int, msg string) error {
	if msg == "" {
		msg = http.StatusText(code)
	}

	return &Failure{Code: code, Message: msg}
}

// GetCode returns the status carried by err, or 500 for anything that is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
