package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/derangga/laundry-app-sub001/logger"
	"github.com/sirupsen/logrus"
)

// Sentinel errors for the auth core. Handlers map these to HTTP status codes;
// anything else coming out of a service is an infrastructure failure and maps
// to a 500. InvalidCredentials deliberately covers both "no such user" and
// "wrong password" so the response cannot reveal which check failed.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient privileges")
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}
