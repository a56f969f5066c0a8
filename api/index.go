package handler

import (
	"net/http"
	"pakt/config"
	"pakt/di"
	"pakt/shared/logger"
	"pakt/shared/timezone"
	"sync"

	transport "pakt/transport/http"
)

var (
	service *transport.HTTP
	once    sync.Once
)

// Handler is the serverless entry point. The dependency graph is built on the first invocation
// and reused by warm instances.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.Setup(cfg)

		timezone.Init(cfg.App.Timezone)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
