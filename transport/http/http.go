package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"pakt/config"
	"pakt/infras/otel"
	"pakt/transport/http/response"
	"pakt/transport/http/router"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 10 * time.Second
	healthPath        = "/health"
)

type HTTP struct {
	Config *config.Config
	Router router.Router
	Otel   otel.Otel

	state   atomic.Int32
	once    sync.Once
	handler chi.Router
}

func New(cfg *config.Config, r router.Router, ot otel.Otel) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		Otel:   ot,
	}
}

// State reports where the server is in its lifecycle.
func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Serve listens on SERVER_HOST:SERVER_PORT until ctx is cancelled, then shuts down gracefully.
func (h *HTTP) Serve(ctx context.Context) error {
	addr := net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return h.ServeListener(ctx, listener)
}

// ServeListener serves on listener until ctx is cancelled. Shutdown first enters the grace
// period, where /health reports unavailable so load balancers stop routing, then the
// cleanup period, which bounds how long in-flight requests may take to finish.
func (h *HTTP) ServeListener(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info().Str("address", listener.Addr().String()).Msg("Starting up HTTP server.")

		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server stopped: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		return h.shutdown(server)
	})

	return group.Wait() //nolint:wrapcheck
}

func (h *HTTP) shutdown(server *http.Server) error {
	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == config.EnvDevelopment {
		log.Warn().Msg("Received shutdown signal. Shutting down now.")
	} else {
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

		h.state.Store(int32(ServerStateInGracePeriod))

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)
	}

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Cleanup period ended with requests still in flight")

		_ = server.Close()
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to flush traces")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")

	return nil
}

// Handler builds the routes once and returns them, for serverless entry points.
func (h *HTTP) Handler() http.Handler {
	h.once.Do(func() {
		h.handler = chi.NewRouter()

		h.Router.SetupRoutes(h.handler)
		h.handler.Get(healthPath, h.health)

		h.state.Store(int32(ServerStateReady))
	})

	return h.handler
}

func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Handler().ServeHTTP(w, r)
}

func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
