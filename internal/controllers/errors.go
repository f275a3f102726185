package controllers

import (
	"errors"
	"net/http"

	"github.com/finsmart/backend/internal/ai"
	"github.com/finsmart/backend/internal/models"
)

// status returns the HTTP status code appropriate for the error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, errInvalidCredentials) || errors.Is(err, errNoAuthToken) || errors.Is(err, errInvalidAuthToken) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, ai.ErrQuotaExceeded) {
		return http.StatusPaymentRequired
	}

	return http.StatusBadRequest
}

// Authentication errors
var (
	errInvalidCredentials = errors.New("the email address or password is incorrect")
	errNoAuthToken        = errors.New("you must provide an authentication token in the Authorization header")
	errInvalidAuthToken   = errors.New("the authentication token is invalid or expired")
)
