package logger

import (
	"context"
	"io"
	"os"
	"pakt/config"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup replaces the global logger: a console writer while developing, JSON in production.
func Setup(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	log.Logger = New(cfg, os.Stdout)
	log.Trace().Bool("json", cfg.IsProduction()).Msg("Zerolog initialized.")

	SetLogLevel(cfg)
}

// New builds a logger writing to out, tagged with the service name and environment.
func New(cfg *config.Config, out io.Writer) zerolog.Logger {
	if !cfg.IsProduction() {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zctx := zerolog.New(out).With().Timestamp()

	if cfg.App.Name != "" {
		zctx = zctx.Str("service", cfg.App.Name)
	}

	if cfg.Server.Env != "" {
		zctx = zctx.Str("env", cfg.Server.Env)
	}

	return zctx.Logger()
}

// FromContext returns the logger attached to ctx, or the global one.
func FromContext(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &log.Logger
	}

	return l
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// ErrorWithStackCtx keeps the fields of the request logger, such as request_id.
func ErrorWithStackCtx(ctx context.Context, err error) {
	FromContext(ctx).Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
