package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"pakt/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     *failure.Failure
		code    int
		message string
	}{
		{name: "missing device id", err: failure.MissingDeviceID, code: http.StatusBadRequest, message: "missing device id header"},
		{name: "missing signature", err: failure.MissingSignature, code: http.StatusUnauthorized, message: "missing request signature"},
		{name: "unknown client", err: failure.UnknownClient, code: http.StatusForbidden, message: "unknown client id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.message, tt.err.Error())
			assert.Nil(t, tt.err.Unwrap())
		})
	}
}

func TestFromError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		ctor func(error) error
		code int
	}{
		{name: "bad request", ctor: failure.BadRequest, code: http.StatusBadRequest},
		{name: "internal error", ctor: failure.InternalError, code: http.StatusInternalServerError},
		{name: "service unavailable", ctor: failure.ServiceUnavailable, code: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ctor(cause)

			require.Error(t, err)
			assert.Equal(t, tt.code, failure.GetCode(err))
			assert.Equal(t, cause.Error(), err.Error())
			assert.True(t, errors.Is(err, cause))
		})

		t.Run(tt.name+" nil", func(t *testing.T) {
			assert.NoError(t, tt.ctor(nil))
		})
	}
}

func TestBadRequestFromString(t *testing.T) {
	err := failure.BadRequestFromString("date is required")

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, "date is required", err.Error())
}

func TestWrap(t *testing.T) {
	sentinel := errors.New("signature mismatch")

	err := failure.Wrap(http.StatusUnauthorized, "invalid request signature", sentinel)

	assert.Equal(t, "invalid request signature", err.Error())
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	assert.True(t, errors.Is(err, sentinel))
}

func TestFromStatus(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		msg     string
		message string
	}{
		{name: "upstream message kept", code: http.StatusBadGateway, msg: "upstream down", message: "upstream down"},
		{name: "empty message uses status text", code: http.StatusNotFound, message: "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failure.FromStatus(tt.code, tt.msg)

			assert.Equal(t, tt.code, failure.GetCode(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "failure", err: failure.MissingSignature, code: http.StatusUnauthorized},
		{name: "wrapped failure", err: fmt.Errorf("handler: %w", failure.MissingDeviceID), code: http.StatusBadRequest},
		{name: "plain error", err: errors.New("boom"), code: http.StatusInternalServerError},
		{name: "nil", err: nil, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
		})
	}
}
