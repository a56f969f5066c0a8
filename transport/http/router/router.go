package router

//nolint:revive
import (
	"net/http"
	"pakt/config"
	_ "pakt/docs"
	"pakt/infras/metrics"
	"pakt/internal/handlers/backend"
	"pakt/internal/handlers/preference"
	"pakt/internal/handlers/signature"
	"pakt/shared/constant"
	"pakt/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const swaggerDocPath = "/swagger/doc.json"

type DomainHandlers struct {
	Signature  signature.Handler
	Preference preference.Handler
	Backend    backend.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Metrics        *metrics.Metrics
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.Recoverer,
		r.Middleware.RequestID,
		r.cors(),
		r.Middleware.Tracing,
	)

	router.Method(http.MethodGet, "/metrics", r.Metrics.Handler())

	if !r.Config.IsProduction() {
		router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerDocPath)))
	}

	router.Route(constant.RouteVersionPrefix, func(routerGroup chi.Router) {
		if !r.Config.App.Signature.DisableIssue {
			r.DomainHandlers.Signature.Router(routerGroup)
		}

		r.DomainHandlers.Preference.Router(routerGroup)
		r.DomainHandlers.Backend.Router(routerGroup)
	})
}

func (r *Router) cors() func(http.Handler) http.Handler {
	cfg := r.Config.App.CORS
	if !cfg.Enable {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAgeSeconds,
	})
}

func New(domainHandlers DomainHandlers, middleware middleware.AppMiddleware, metrics *metrics.Metrics, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
		Metrics:        metrics,
		Config:         cfg,
	}
}
