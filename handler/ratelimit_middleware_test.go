package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/derangga/laundry-app-sub001/ratelimit"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware_Limit(t *testing.T) {
	limiter := ratelimit.New()
	mw := NewRateLimitMiddleware(limiter)
	strategy := ratelimit.Strategy{Name: "test", MaxRequests: 2, Window: time.Minute}

	next, _ := okHandler()
	wrapped := mw.Limit(strategy)(next)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/anything", nil)
		req.RemoteAddr = "203.0.113.9:51234"
		rr := httptest.NewRecorder()
		wrapped.ServeHTTP(rr, req)
		return rr
	}

	rr := send()
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2", rr.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rr.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rr.Header().Get("X-RateLimit-Reset"))

	rr = send()
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "0", rr.Header().Get("X-RateLimit-Remaining"))

	rr = send()
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
}

func TestRateLimitMiddleware_KeysByAddressThenUser(t *testing.T) {
	limiter := ratelimit.New()
	mw := NewRateLimitMiddleware(limiter)
	strategy := ratelimit.Strategy{Name: "test", MaxRequests: 1, Window: time.Minute}

	next, _ := okHandler()
	wrapped := mw.Limit(strategy)(next)

	send := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/anything", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		wrapped.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.9:1111").Code)
	// Same address, budget spent.
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.9:2222").Code)
	// Different address, separate budget.
	assert.Equal(t, http.StatusOK, send("198.51.100.7:3333").Code)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "203.0.113.9:51234"
	assert.Equal(t, "203.0.113.9", clientIP(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	assert.Equal(t, "198.51.100.7", clientIP(req))
}
