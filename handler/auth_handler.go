package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/derangga/laundry-app-sub001/common"
	"github.com/derangga/laundry-app-sub001/logger"
	"github.com/derangga/laundry-app-sub001/model"
	"github.com/derangga/laundry-app-sub001/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary      Authenticate a staff account
// @Description  Verifies email/password and returns an access/refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  model.LoginRequest  true  "credentials"
// @Success      200  {object}  service.LoginResult
// @Failure      401  {object}  common.AppError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	result, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		return mapAuthError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
	return nil
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RefreshRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	result, err := h.auth.Refresh(req.RefreshToken)
	if err != nil {
		return mapAuthError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
	return nil
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LogoutRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	if err := h.auth.Logout(req.RefreshToken, req.All); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not log out", err)
	}

	logger.Log.Info("Logout processed")
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// mapAuthError translates the auth error taxonomy onto HTTP statuses. The
// 401 messages stay generic on purpose: the response must not reveal whether
// the email, the password, or the token was the failing part.
func mapAuthError(err error) *common.AppError {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return common.NewAppError(http.StatusUnauthorized, "Invalid email or password", nil)
	case errors.Is(err, common.ErrInvalidToken):
		return common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", nil)
	case errors.Is(err, common.ErrUnauthorized):
		return common.NewAppError(http.StatusUnauthorized, "Authentication required", nil)
	case errors.Is(err, common.ErrForbidden):
		return common.NewAppError(http.StatusForbidden, err.Error(), nil)
	default:
		return common.NewAppError(http.StatusInternalServerError, "Something went wrong", err)
	}
}
