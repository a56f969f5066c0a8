package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyDeviceID  contextKey = "device_id"
	ContextKeyClientID  contextKey = "client_id"
)

// Routes of this service. The ones behind the signature verifier are listed in
// VerifiedRoutes, relative to RouteVersionPrefix.
const (
	RouteVersionPrefix = "/v1"
	RouteSignatures    = "/signatures"
	RouteTimezone      = "/timezone"
	RouteDatesFormat   = "/dates/format"
	RouteBackend       = "/backend"
)

var VerifiedRoutes = []string{RouteTimezone, RouteDatesFormat}

const (
	RequestParamDate   = "date"
	RequestParamFormat = "format"
)

const (
	DateFormat = time.RFC3339
)

const (
	// TimezoneStorageKey is the fixed key the user timezone preference lives under.
	TimezoneStorageKey = "P4K7FUND_u53r_71m3z0n3"
	// UndefinedValue is what an unset browser value stringifies to.
	UndefinedValue     = "undefined"
	DefaultTimezone    = "UTC"
)

const (
	OtelServiceScopeName    = "service"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"
	OtelRepositoryScopeName = "repository"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderAccept             = "Accept"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderDeviceID           = "X-Device-Id"
	RequestHeaderSignature          = "X-Signature"
	RequestHeaderTimestamp          = "X-Timestamp"
	RequestHeaderClientID           = "X-Client-Id"
	RequestHeaderTestnet            = "X-Testnet"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	Empty = ""
)
