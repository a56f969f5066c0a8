package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"pakt/config"
	"pakt/infras/metrics"
	"pakt/infras/otel"
	"pakt/internal/domains/signature/model/dto"
	"pakt/shared/constant"
	"pakt/shared/failure"
	"pakt/shared/signature"
	"path"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrVerifiedRoute is returned when a client asks for a signature over a route
// that the signature verifier guards.
var ErrVerifiedRoute = errors.New("url targets a verified route")

type Signature interface {
	Sign(ctx context.Context, req dto.SignRequest) (dto.SignResponse, error)
	Verify(ctx context.Context, req dto.VerifyRequest) error
}

type serviceImpl struct {
	signer   *signature.Signer
	metrics  *metrics.Metrics
	otel     otel.Otel
	verified []string
}

func New(signer *signature.Signer, metrics *metrics.Metrics, cfg *config.Config, otel otel.Otel) Signature {
	s := &serviceImpl{
		signer:  signer,
		metrics: metrics,
		otel:    otel,
	}

	if cfg.App.Signature.Required {
		for _, route := range constant.VerifiedRoutes {
			s.verified = append(s.verified, constant.RouteVersionPrefix+route)
		}
	}

	return s
}

func (s *serviceImpl) Sign(ctx context.Context, req dto.SignRequest) (res dto.SignResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Sign")
	defer scope.End()
	defer func() {
		scope.TraceIfError(err)
	}()

	if s.targetsVerifiedRoute(req.URL) {
		log.Warn().Str("url", req.URL).Msg("refused to sign a verified route")

		return res, failure.Wrap(http.StatusForbidden, "url must not target a signature protected route", ErrVerifiedRoute)
	}

	result := s.signer.Sign(req.URL)

	scope.SetAttributes(map[string]any{
		"signature.url":        req.URL,
		"signature.time_stamp": result.TimeStamp,
	})

	s.metrics.SignaturesIssued.Inc()

	res.FromResult(result, s.signer.ClientID())

	return res, nil
}

func (s *serviceImpl) Verify(ctx context.Context, req dto.VerifyRequest) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()
	defer func() {
		scope.TraceIfError(err)
		s.metrics.SignatureVerifications.WithLabelValues(metrics.Result(err)).Inc()
	}()

	scope.SetAttribute("signature.url", req.URL)

	if req.Signature == "" || req.TimeStamp == "" {
		return failure.MissingSignature
	}

	if req.ClientID != "" && req.ClientID != s.signer.ClientID() {
		log.Warn().Str("client_id", req.ClientID).Msg("request signed for an unknown client")

		return failure.UnknownClient
	}

	if err = s.signer.Verify(req.URL, req.TimeStamp, req.Signature); err != nil {
		log.Warn().Err(err).Str("url", req.URL).Msg("request signature rejected")

		return err //nolint:wrapcheck
	}

	return nil
}

// targetsVerifiedRoute reports whether rawURL resolves to one of the guarded
// routes once its query is dropped and its path is unescaped and cleaned. The
// verifier signs the request URI, so only the path part has to match.
func (s *serviceImpl) targetsVerifiedRoute(rawURL string) bool {
	if len(s.verified) == 0 {
		return false
	}

	p := rawURL
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}

	if unescaped, err := url.PathUnescape(p); err == nil {
		p = unescaped
	}

	p = path.Clean("/" + p)

	for _, route := range s.verified {
		if p == route || strings.HasPrefix(p, route+"/") {
			return true
		}
	}

	return false
}
