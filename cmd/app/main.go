package main

import (
	"context"
	"os"
	"os/signal"
	"pakt/config"
	"pakt/di"
	"pakt/shared/logger"
	"pakt/shared/timezone"
	"syscall"

	"github.com/rs/zerolog/log"
)

// @title pakt API
// @version 1.0
// @description Request signing, timezone preferences and backend relay for the pakt front end.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.Setup(cfg)

	timezone.Init(cfg.App.Timezone)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	http := di.InitializeService()
	if err := http.Serve(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped with error")
		stop()
		os.Exit(1)
	}
}
