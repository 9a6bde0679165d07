package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/derangga/laundry-app-sub001/common"
	"github.com/derangga/laundry-app-sub001/model"
	"github.com/derangga/laundry-app-sub001/service"
)

type contextKey string

const callerKey contextKey = "currentCaller"

// CallerFromContext returns the verified caller for this request, or nil when
// the request never passed Authenticate.
func CallerFromContext(ctx context.Context) *service.CurrentCaller {
	caller, _ := ctx.Value(callerKey).(*service.CurrentCaller)
	return caller
}

// AuthMiddleware verifies bearer access tokens and attaches the caller to the
// request context. It holds the auth service rather than reading key material
// itself so verification rules live in one place.
type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			appErr := common.NewAppError(http.StatusUnauthorized, "Authorization header is required", nil)
			appErr.Send(w)
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			appErr := common.NewAppError(http.StatusUnauthorized, "Invalid authorization header format", nil)
			appErr.Send(w)
			return
		}

		claims, err := m.auth.Verify(headerParts[1])
		if err != nil {
			appErr := common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", err)
			appErr.Send(w)
			return
		}

		caller := &service.CurrentCaller{
			UserID: claims.UserID,
			Role:   model.Role(claims.Role),
		}
		ctx := context.WithValue(r.Context(), callerKey, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole guards a route with an allowed-role set. Must sit behind
// Authenticate in the chain.
func (m *AuthMiddleware) RequireRole(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := CallerFromContext(r.Context())
			if err := service.AuthorizeRole(caller, roles...); err != nil {
				if errors.Is(err, common.ErrForbidden) {
					appErr := common.NewAppError(http.StatusForbidden, err.Error(), nil)
					appErr.Send(w)
					return
				}
				appErr := common.NewAppError(http.StatusUnauthorized, "Authentication required", nil)
				appErr.Send(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
