package signature

import (
	"net/http"
	"pakt/infras/otel"
	"pakt/internal/domains/signature/model/dto"
	"pakt/internal/domains/signature/service"
	"pakt/shared/constant"
	"pakt/shared/validator"
	"pakt/transport/http/middleware"
	"pakt/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const rateLimitBucket = "signatures"

type Handler struct {
	service    service.Signature
	middleware middleware.AppMiddleware
	otel       otel.Otel
}

func New(service service.Signature, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route(constant.RouteSignatures, func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.RateLimit(rateLimitBucket))
		routerGroup.Post("/", handler.CreateSignature)
	})
}

// CreateSignature signs a url for the backend API.
// @Summary Sign a request url
// @Description Returns the HMAC-SHA256 signature and the epoch-millisecond timestamp it was computed for.
// @Tags Signature
// @Accept json
// @Produce json
// @Param request body dto.SignRequest true "Sign Request"
// @Success 201 {object} dto.SignResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 429 {object} response.Message
// @Router /v1/signatures [post]
func (handler *Handler) CreateSignature(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSignature")
	defer scope.End()

	req := dto.SignRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, r, err)

		return
	}

	res, err := handler.service.Sign(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign url")

		response.WithError(w, r, err)

		return
	}

	scope.AddEvent("Signature issued")

	response.WithJSON(w, http.StatusCreated, res)
}
