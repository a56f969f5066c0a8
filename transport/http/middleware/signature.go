package middleware

import (
	"context"
	"net/http"
	"pakt/config"
	"pakt/infras/otel"
	"pakt/internal/domains/signature/model/dto"
	"pakt/internal/domains/signature/service"
	"pakt/shared/constant"
	"pakt/transport/http/response"
)

// Signature rejects requests whose X-Signature does not match their request URI.
type Signature interface {
	Verify(next http.Handler) http.Handler
}

type signatureImpl struct {
	service service.Signature
	otel    otel.Otel
	cfg     *config.Config
}

func NewSignatureMiddleware(service service.Signature, otel otel.Otel, cfg *config.Config) Signature {
	return &signatureImpl{
		service: service,
		otel:    otel,
		cfg:     cfg,
	}
}

// Verify checks the signature headers when APP_SIGNATURE_REQUIRED is set and lets every
// request through otherwise.
func (m *signatureImpl) Verify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !m.cfg.App.Signature.Required {
			next.ServeHTTP(writer, request)

			return
		}

		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "signature.middleware")

		req := dto.VerifyRequest{
			URL:       request.URL.RequestURI(),
			TimeStamp: request.Header.Get(constant.RequestHeaderTimestamp),
			Signature: request.Header.Get(constant.RequestHeaderSignature),
			ClientID:  request.Header.Get(constant.RequestHeaderClientID),
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "signature",
			"http.path":       req.URL,
			"http.method":     request.Method,
		})

		if err := m.service.Verify(ctx, req); err != nil {
			scope.TraceError(err)
			scope.End()

			response.WithError(writer, request, err)

			return
		}

		scope.End()

		ctx = context.WithValue(ctx, constant.ContextKeyClientID, req.ClientID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
