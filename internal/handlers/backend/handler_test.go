package backend_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"pakt/config"
	"pakt/infras/metrics"
	otelMocks "pakt/infras/otel/mocks"
	"pakt/internal/domains/backend/mocks"
	"pakt/internal/handlers/backend"
	"pakt/shared/cache"
	"pakt/shared/failure"
	"pakt/transport/http/middleware"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(svc *mocks.MockBackend) chi.Router {
	ot := otelMocks.NewOtel()
	mw := middleware.NewAppMiddleware(ot, &config.Config{}, cache.NewMemoryCache(), metrics.New())

	handler := backend.New(svc, mw, ot)

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestForward(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setup      func(svc *mocks.MockBackend)
		wantStatus int
	}{
		{
			name:   "get keeps the query",
			method: http.MethodGet,
			target: "/backend/pakts?page=2",
			setup: func(svc *mocks.MockBackend) {
				svc.EXPECT().Forward(gomock.Any(), http.MethodGet, "/pakts?page=2", json.RawMessage(nil)).
					Return(json.RawMessage(`{"items":[]}`), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "post relays the body",
			method: http.MethodPost,
			target: "/backend/pakts",
			body:   `{"name":"x"}`,
			setup: func(svc *mocks.MockBackend) {
				svc.EXPECT().Forward(gomock.Any(), http.MethodPost, "/pakts", json.RawMessage(`{"name":"x"}`)).
					Return(json.RawMessage(`{"id":"1"}`), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid json body",
			method:     http.MethodPost,
			target:     "/backend/pakts",
			body:       `{"name":`,
			setup:      func(_ *mocks.MockBackend) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "body over the limit",
			method:     http.MethodPost,
			target:     "/backend/pakts",
			body:       `{"blob":"` + strings.Repeat("a", 1<<20) + `"}`,
			setup:      func(_ *mocks.MockBackend) {},
			wantStatus: http.StatusRequestEntityTooLarge,
		},
		{
			name:   "body at the limit is relayed",
			method: http.MethodPost,
			target: "/backend/pakts",
			body:   `"` + strings.Repeat("a", 1<<20-2) + `"`,
			setup: func(svc *mocks.MockBackend) {
				svc.EXPECT().Forward(gomock.Any(), http.MethodPost, "/pakts", gomock.Any()).
					Return(json.RawMessage(`{"id":"1"}`), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "backend unreachable",
			method: http.MethodGet,
			target: "/backend/pakts",
			setup: func(svc *mocks.MockBackend) {
				svc.EXPECT().Forward(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, failure.ServiceUnavailable(errors.New("dial tcp: refused")))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockBackend(gomock.NewController(t))
			tt.setup(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			newRouter(svc).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestForward_WrapsPayload(t *testing.T) {
	svc := mocks.NewMockBackend(gomock.NewController(t))
	svc.EXPECT().Forward(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(json.RawMessage(`{"id":"1"}`), nil)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/backend/pakts/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"1"}}`, rec.Body.String())
}
