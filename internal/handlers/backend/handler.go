package backend

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"pakt/infras/otel"
	"pakt/internal/domains/backend/service"
	"pakt/shared/constant"
	"pakt/shared/failure"
	"pakt/transport/http/middleware"
	"pakt/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	rateLimitBucket = "backend"
	maxBodyBytes    = 1 << 20
)

type Handler struct {
	service    service.Backend
	middleware middleware.AppMiddleware
	otel       otel.Otel
}

func New(service service.Backend, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route(constant.RouteBackend, func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.RateLimit(rateLimitBucket))
		routerGroup.Get("/*", handler.Forward)
		routerGroup.Post("/*", handler.Forward)
	})
}

// Forward relays the request to the backend API, signing it on the way.
// @Summary Relay a request to the backend API
// @Tags Backend
// @Accept json
// @Produce json
// @Param path path string true "Backend path"
// @Success 200 {object} response.Data[any]
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/backend/{path} [get]
// @Router /v1/backend/{path} [post]
func (handler *Handler) Forward(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Forward")
	defer scope.End()

	path := "/" + chi.URLParam(r, "*")
	if r.URL.RawQuery != "" {
		path += "?" + r.URL.RawQuery
	}

	var body json.RawMessage
	if r.Method != http.MethodGet {
		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			err = readBodyFailure(err)
			scope.TraceError(err)

			response.WithError(w, r, err)

			return
		}

		if len(raw) > 0 && !json.Valid(raw) {
			err := failure.BadRequestFromString("request body must be valid JSON")
			scope.TraceError(err)

			response.WithError(w, r, err)

			return
		}

		body = raw
	}

	res, err := handler.service.Forward(ctx, r.Method, path, body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("path", path).Msg("failed to forward request")

		response.WithError(w, r, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func readBodyFailure(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return failure.Wrap(http.StatusRequestEntityTooLarge, "request body must not exceed 1 MiB", err)
	}

	return failure.BadRequest(err)
}
