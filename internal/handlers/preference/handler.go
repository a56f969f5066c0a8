package preference

import (
	"net/http"
	"pakt/infras/otel"
	"pakt/internal/domains/preference/model/dto"
	"pakt/internal/domains/preference/service"
	"pakt/shared/constant"
	"pakt/shared/validator"
	"pakt/transport/http/middleware"
	"pakt/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Preference
	middleware middleware.AppMiddleware
	signature  middleware.Signature
	otel       otel.Otel
}

func New(service service.Preference, middleware middleware.AppMiddleware, signature middleware.Signature, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		signature:  signature,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(handler.signature.Verify, handler.middleware.DeviceID)

		routerGroup.Get(constant.RouteTimezone, handler.GetTimezone)
		routerGroup.Put(constant.RouteTimezone, handler.SetTimezone)
		routerGroup.Get(constant.RouteDatesFormat, handler.FormatDate)
	})
}

// GetTimezone returns the display timezone of the calling device.
// @Summary Get timezone preference
// @Description Stored timezone of the device, or the detected one when nothing usable is stored.
// @Tags Preference
// @Produce json
// @Param X-Device-Id header string true "Device ID"
// @Success 200 {object} dto.TimezoneResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/timezone [get]
func (handler *Handler) GetTimezone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimezone")
	defer scope.End()

	res, err := handler.service.GetTimezone(ctx, deviceID(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get timezone preference")

		response.WithError(w, r, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SetTimezone stores the display timezone of the calling device.
// @Summary Set timezone preference
// @Description An empty or "undefined" timezone stores the detected one. Returns the value stored.
// @Tags Preference
// @Accept json
// @Produce json
// @Param X-Device-Id header string true "Device ID"
// @Param request body dto.SetTimezoneRequest true "Set Timezone Request"
// @Success 200 {object} dto.TimezoneResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/timezone [put]
func (handler *Handler) SetTimezone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetTimezone")
	defer scope.End()

	req := dto.SetTimezoneRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, r, err)

		return
	}

	res, err := handler.service.SetTimezone(ctx, deviceID(r), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set timezone preference")

		response.WithError(w, r, err)

		return
	}

	scope.AddEvent("Timezone preference stored")

	response.WithJSON(w, http.StatusOK, res)
}

// FormatDate renders a date in the device's display timezone.
// @Summary Format a date
// @Description Formats date (now when empty) with a dayjs-style pattern, "MMM DD, YYYY hh:mm A" by default.
// @Tags Preference
// @Produce json
// @Param X-Device-Id header string true "Device ID"
// @Param date query string false "Date to format"
// @Param format query string false "Pattern"
// @Success 200 {object} dto.FormatDateResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/dates/format [get]
func (handler *Handler) FormatDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FormatDate")
	defer scope.End()

	req := dto.FormatDateRequest{
		Date:   r.URL.Query().Get(constant.RequestParamDate),
		Format: r.URL.Query().Get(constant.RequestParamFormat),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, r, err)

		return
	}

	res, err := handler.service.FormatDate(ctx, deviceID(r), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to format date")

		response.WithError(w, r, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func deviceID(r *http.Request) string {
	id, _ := r.Context().Value(constant.ContextKeyDeviceID).(string)

	return id
}
