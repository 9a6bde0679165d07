package handler

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/derangga/laundry-app-sub001/common"
	"github.com/derangga/laundry-app-sub001/ratelimit"
)

// RateLimitMiddleware applies one budget strategy per route group. Requests
// are keyed by verified caller identity when available, otherwise by client
// address, so an authenticated user cannot dodge their budget by rotating IPs.
type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
}

func NewRateLimitMiddleware(limiter *ratelimit.Limiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

func (m *RateLimitMiddleware) Limit(strategy ratelimit.Strategy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := limitKey(r)

			if err := m.limiter.CheckLimit(key, strategy); err != nil {
				var limitErr *ratelimit.LimitError
				if errors.As(err, &limitErr) {
					w.Header().Set("Retry-After", strconv.Itoa(limitErr.RetryAfterSeconds))
					appErr := common.NewAppError(http.StatusTooManyRequests, "Too many requests, slow down", nil)
					appErr.Send(w)
					return
				}
				appErr := common.NewAppError(http.StatusInternalServerError, "Rate limit check failed", err)
				appErr.Send(w)
				return
			}

			info := m.limiter.GetLimitInfo(key, strategy)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetAt.Unix(), 10))

			next.ServeHTTP(w, r)
		})
	}
}

func limitKey(r *http.Request) string {
	if caller := CallerFromContext(r.Context()); caller != nil {
		return "user:" + strconv.Itoa(caller.UserID)
	}
	return clientIP(r)
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
