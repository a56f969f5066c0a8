package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"pakt/infras/otel"
	"pakt/infras/pakt"
	"pakt/shared/constant"
	"pakt/shared/failure"

	"github.com/rs/zerolog/log"
)

// Backend relays front end calls to the backend API with a fresh request signature.
type Backend interface {
	Forward(ctx context.Context, method, path string, body json.RawMessage) (json.RawMessage, error)
}

type serviceImpl struct {
	client *pakt.Client
	otel   otel.Otel
}

func New(client *pakt.Client, otel otel.Otel) Backend {
	return &serviceImpl{
		client: client,
		otel:   otel,
	}
}

func (s *serviceImpl) Forward(ctx context.Context, method, path string, body json.RawMessage) (res json.RawMessage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Forward")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"http.method": method,
		"http.path":   path,
	})

	var payload any
	if len(body) > 0 {
		if method == http.MethodGet {
			return nil, failure.BadRequestFromString("GET requests cannot carry a body") //nolint:wrapcheck
		}

		payload = body
	}

	if err = s.client.Do(ctx, method, path, payload, &res); err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("failed to forward request to backend")

		return nil, fmt.Errorf("failed to forward request: %w", err)
	}

	return res, nil
}
