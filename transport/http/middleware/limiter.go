package middleware

import (
	"errors"
	"net"
	"net/http"
	"pakt/shared"
	"pakt/shared/cache"
	"pakt/shared/constant"
	"pakt/transport/http/response"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeyRateLimit = "limiter"

// RateLimit counts requests per client address and bucket in a fixed window kept in the cache.
// Separate buckets get separate budgets. A cache outage lets traffic through.
func (a *appMiddleware) RateLimit(bucket string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, bucket, a.getClientIP(r))

			var count int
			err := a.cache.Get(r.Context(), cacheKey, &count)

			switch {
			case errors.Is(err, cache.Nil):
				count = 1
			case err != nil:
				log.Ctx(r.Context()).Warn().Err(err).Str("bucket", bucket).Msg("rate limiter cache unavailable, allowing request")
				next.ServeHTTP(w, r)

				return
			default:
				count++
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			if count > maxReqs {
				w.Header().Set(constant.RequestHeaderRateLimitRemaining, "0")
				response.WithRequestLimitExceeded(w, windowSecs)

				return
			}

			if err = a.cache.Save(r.Context(), cacheKey, count, windowSecs); err != nil {
				log.Ctx(r.Context()).Warn().Err(err).Str("bucket", bucket).Msg("rate limiter failed to persist count")
			}

			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP returns the peer host without its port. Forwarding headers are
// only read with TrustProxy set: the last X-Forwarded-For hop, which the proxy
// appended, then X-Real-IP.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if a.config.App.TrustProxy {
		if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
			hops := strings.Split(xff, ",")
			if last := strings.TrimSpace(hops[len(hops)-1]); last != "" {
				return last
			}
		}

		if xri := strings.TrimSpace(r.Header.Get(constant.RequestHeaderRealIP)); xri != "" {
			return xri
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
