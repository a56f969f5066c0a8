package response

import (
	"encoding/json"
	"net/http"
	"pakt/shared/constant"
	"pakt/shared/failure"
	"pakt/shared/logger"
	"strconv"

	"github.com/rs/zerolog/log"
)

const headerRetryAfter = "Retry-After"

// fallbackBody is sent when a payload cannot be encoded.
var fallbackBody = []byte(`{"error":"failed to encode response","code":500}`)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error carries the failure message and the HTTP code it was answered with.
type Error struct {
	Error *string `json:"error,omitempty"`
	Code  int     `json:"code"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a plain text message.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithJSON wraps payload in the data envelope.
func WithJSON[T any](writer http.ResponseWriter, code int, payload T) {
	write(writer, code, Data[T]{Data: &payload})
}

// WithError answers with the code the error maps to. Server side failures are logged
// with their stack through the request logger, client errors are not.
func WithError(writer http.ResponseWriter, request *http.Request, err error) {
	code := failure.GetCode(err)
	if code >= http.StatusInternalServerError {
		logger.ErrorWithStackCtx(request.Context(), err)
	}

	msg := err.Error()

	write(writer, code, Error{Error: &msg, Code: code})
}

// WithRequestLimitExceeded tells the client how many seconds to wait before retrying.
func WithRequestLimitExceeded(writer http.ResponseWriter, retryAfterSeconds int) {
	writer.Header().Set(headerRetryAfter, strconv.Itoa(retryAfterSeconds))

	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown is what /health answers once shutdown has begun.
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		code = http.StatusInternalServerError
		body = fallbackBody
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		log.Warn().Err(err).Int("status", code).Msg("failed to write response body")
	}
}
