// Package httputil contains helpers for request parsing and error
// responses.
package httputil

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the response body for all error responses.
type HTTPError struct {
	Error string `json:"error" example:"the budget limit must be larger than zero"`
}

// NewError writes an error response with the message of the error.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error: err.Error(),
	})
}

// ErrRequestBodyEmpty is returned when a request body is required, but empty.
var ErrRequestBodyEmpty = errors.New("the request body must not be empty")

// BindData binds the JSON request body to the struct passed in.
// On failure, the error response has already been written.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			NewError(c, http.StatusBadRequest, ErrRequestBodyEmpty)
			return ErrRequestBodyEmpty
		}

		NewError(c, http.StatusBadRequest, err)
		return err
	}

	return nil
}
