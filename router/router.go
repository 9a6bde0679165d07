package router

import (
	"net/http"

	"github.com/derangga/laundry-app-sub001/handler"
	"github.com/derangga/laundry-app-sub001/model"
	"github.com/derangga/laundry-app-sub001/ratelimit"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Handlers bundles every route handler the router wires up.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Customer *handler.CustomerHandler
	Catalog  *handler.CatalogHandler
	Order    *handler.OrderHandler
}

// Strategies assigns one rate-limit budget per endpoint class.
type Strategies struct {
	Login         ratelimit.Strategy
	Refresh       ratelimit.Strategy
	Authenticated ratelimit.Strategy
	Public        ratelimit.Strategy
}

func NewRouter(h Handlers, auth *handler.AuthMiddleware, rl *handler.RateLimitMiddleware, s Strategies) http.Handler {
	mux := http.NewServeMux()

	// Anonymous routes carry the public budget, keyed by client address.
	mux.Handle("GET /health", chain(
		http.HandlerFunc(handler.HealthCheck),
		rl.Limit(s.Public),
	))
	mux.Handle("GET /swagger/", chain(
		httpSwagger.WrapHandler,
		rl.Limit(s.Public),
	))

	// Login and refresh are keyed by client address: the caller is not
	// authenticated yet, and these endpoints get the tightest budgets.
	mux.Handle("POST /auth/login", chain(
		handler.ErrorHandlingMiddleware(h.Auth.Login),
		rl.Limit(s.Login),
	))
	mux.Handle("POST /auth/refresh", chain(
		handler.ErrorHandlingMiddleware(h.Auth.Refresh),
		rl.Limit(s.Refresh),
	))
	mux.Handle("POST /auth/logout", chain(
		handler.ErrorHandlingMiddleware(h.Auth.Logout),
		rl.Limit(s.Refresh),
	))

	// Authenticate runs before the limiter so authenticated traffic is keyed
	// by user id rather than source address.
	mux.Handle("POST /users", chain(
		handler.ErrorHandlingMiddleware(h.User.Register),
		auth.Authenticate, rl.Limit(s.Authenticated), auth.RequireRole(model.RoleAdmin),
	))
	mux.Handle("PATCH /users/{id}/role", chain(
		handler.ErrorHandlingMiddleware(h.User.UpdateRole),
		auth.Authenticate, rl.Limit(s.Authenticated), auth.RequireRole(model.RoleAdmin),
	))

	mux.Handle("GET /customers", chain(
		handler.ErrorHandlingMiddleware(h.Customer.Search),
		auth.Authenticate, rl.Limit(s.Authenticated), auth.RequireRole(model.RoleAdmin, model.RoleStaff),
	))
	mux.Handle("POST /customers", chain(
		handler.ErrorHandlingMiddleware(h.Customer.Create),
		auth.Authenticate, rl.Limit(s.Authenticated), auth.RequireRole(model.RoleAdmin, model.RoleStaff),
	))
	mux.Handle("GET /customers/{id}", chain(
		handler.ErrorHandlingMiddleware(h.Customer.Get),
		auth.Authenticate, rl.Limit(s.Authenticated), auth.RequireRole(model.RoleAdmin, model.RoleStaff),
	))
	mux.Handle("PUT /customers/{id}", chain(
		handler.ErrorHandlingMiddleware(h.Customer.Update),
		auth.Authenticate, rl.Limit(s.Authenticated), auth.RequireRole(model.RoleAdmin, model.RoleStaff),
	))
	mux.Handle("DELETE /customers/{id}", chain(
		handler.ErrorHandlingMiddleware(h.Customer.Delete),
		auth.Authenticate, rl.Limit(s.Authenticated), auth.RequireRole(model.RoleAdmin),
	))

	mux.Handle("GET /services", chain(
		handler.ErrorHandlingMiddleware(h.Catalog.List),
		auth.Authenticate, rl.Limit(s.Authenticated), auth.RequireRole(model.RoleAdmin, model.RoleStaff),
	))
	mux.Handle("POST /services", chain(
		handler.ErrorHandlingMiddleware(h.Catalog.Create),
		auth.Authenticate, rl.Limit(s.Authenticated), auth.RequireRole(model.RoleAdmin),
	))
	mux.Handle("PUT /services/{id}", chain(
		handler.ErrorHandlingMiddleware(h.Catalog.Update),
		auth.Authenticate, rl.Limit(s.Authenticated), auth.RequireRole(model.RoleAdmin),
	))

	mux.Handle("POST /orders", chain(
		handler.ErrorHandlingMiddleware(h.Order.Create),
		auth.Authenticate, rl.Limit(s.Authenticated), auth.RequireRole(model.RoleAdmin, model.RoleStaff),
	))
	mux.Handle("GET /orders/{id}", chain(
		handler.ErrorHandlingMiddleware(h.Order.Get),
		auth.Authenticate, rl.Limit(s.Authenticated), auth.RequireRole(model.RoleAdmin, model.RoleStaff),
	))
	mux.Handle("PATCH /orders/{id}/status", chain(
		handler.ErrorHandlingMiddleware(h.Order.UpdateStatus),
		auth.Authenticate, rl.Limit(s.Authenticated), auth.RequireRole(model.RoleAdmin, model.RoleStaff),
	))
	mux.Handle("GET /orders/{id}/receipt", chain(
		handler.ErrorHandlingMiddleware(h.Order.Receipt),
		auth.Authenticate, rl.Limit(s.Authenticated), auth.RequireRole(model.RoleAdmin, model.RoleStaff),
	))

	mux.Handle("GET /analytics/daily", chain(
		handler.ErrorHandlingMiddleware(h.Order.DailySummary),
		auth.Authenticate, rl.Limit(s.Authenticated), auth.RequireRole(model.RoleAdmin),
	))

	return mux
}

// chain wraps h with the given middlewares; the first listed runs first.
func chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
