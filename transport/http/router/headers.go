package router

import "pakt/shared/constant"

// exposedHeaders are readable by browser callers.
var exposedHeaders = []string{
	constant.RequestHeaderRequestID,
	constant.RequestHeaderRateLimit,
	constant.RequestHeaderRateLimitRemaining,
	constant.RequestHeaderRateLimitWindow,
}
