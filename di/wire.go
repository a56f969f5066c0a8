//go:build wireinject
// +build wireinject

package di

import (
	"pakt/config"
	"pakt/infras/kafka"
	"pakt/infras/metrics"
	"pakt/infras/otel"
	"pakt/infras/pakt"
	backendHandler "pakt/internal/handlers/backend"
	preferenceHandler "pakt/internal/handlers/preference"
	signatureHandler "pakt/internal/handlers/signature"
	"pakt/shared/cache"
	"pakt/shared/clock"
	"pakt/shared/signature"
	"pakt/shared/timezone"
	"pakt/transport/http"
	"pakt/transport/http/middleware"
	"pakt/transport/http/router"

	backendService "pakt/internal/domains/backend/service"
	preferenceRepository "pakt/internal/domains/preference/repository"
	preferenceService "pakt/internal/domains/preference/service"
	signatureService "pakt/internal/domains/signature/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	metrics.New,
	kafka.New,
	pakt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewSignatureMiddleware,
)

var sharedHelpers = wire.NewSet(
	clock.New,
	cache.New,
	signature.Provide,
	timezone.DetectorFromConfig,
	timezone.NewPreference,
	timezone.NewFormatter,
)

var domains = wire.NewSet(
	preferenceRepository.NewStore,
	signatureService.New,
	preferenceService.New,
	backendService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	signatureHandler.New,
	preferenceHandler.New,
	backendHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
