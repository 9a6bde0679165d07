// router/router_test.go
package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/derangga/laundry-app-sub001/handler"
	"github.com/derangga/laundry-app-sub001/ratelimit"
	"github.com/derangga/laundry-app-sub001/service"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter(public ratelimit.Strategy) http.Handler {
	codec := service.NewJWTCodec("router-test-secret", 15*time.Minute)
	hasher := service.NewPasswordHasher(bcrypt.MinCost)
	auth := service.NewAuthService(nil, nil, hasher, codec, time.Hour)

	strategy := ratelimit.Strategy{Name: "test", MaxRequests: 1000, Window: time.Minute}
	return NewRouter(
		Handlers{
			Auth:     handler.NewAuthHandler(auth),
			User:     handler.NewUserHandler(nil),
			Customer: handler.NewCustomerHandler(nil),
			Catalog:  handler.NewCatalogHandler(nil),
			Order:    handler.NewOrderHandler(nil),
		},
		handler.NewAuthMiddleware(auth),
		handler.NewRateLimitMiddleware(ratelimit.New()),
		Strategies{Login: strategy, Refresh: strategy, Authenticated: strategy, Public: public},
	)
}

func permissiveStrategy() ratelimit.Strategy {
	return ratelimit.Strategy{Name: "public", MaxRequests: 1000, Window: time.Minute}
}

func TestHealthCheck_Integration(t *testing.T) {
	r := newTestRouter(permissiveStrategy())

	req, _ := http.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	expectedBody := `{"status":"API is healthy and running"}`
	assert.JSONEq(t, expectedBody, rr.Body.String())
}

func TestAnonymousRoutesCarryPublicBudget(t *testing.T) {
	r := newTestRouter(ratelimit.Strategy{Name: "public", MaxRequests: 2, Window: time.Minute})

	send := func() *httptest.ResponseRecorder {
		req, _ := http.NewRequest("GET", "/health", nil)
		req.RemoteAddr = "203.0.113.9:51234"
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr
	}

	rr := send()
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2", rr.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rr.Header().Get("X-RateLimit-Remaining"))

	rr = send()
	assert.Equal(t, http.StatusOK, rr.Code)

	// Third call in the window exhausts the public budget.
	rr = send()
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))

	// Swagger shares the public class but has its own window per strategy key.
	req := httptest.NewRequest("GET", "/swagger/index.html", nil)
	req.RemoteAddr = "198.51.100.7:40000"
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, "2", rr.Header().Get("X-RateLimit-Limit"))
}

func TestProtectedRoutesRejectAnonymousCallers(t *testing.T) {
	r := newTestRouter(permissiveStrategy())

	for _, route := range []struct{ method, path string }{
		{"GET", "/customers"},
		{"POST", "/orders"},
		{"GET", "/services"},
		{"GET", "/analytics/daily"},
	} {
		req, _ := http.NewRequest(route.method, route.path, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", route.method, route.path)
	}
}
