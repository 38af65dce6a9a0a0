// Package respond owns the wire response shape. Every endpoint and every
// middleware that ends a request early writes the same envelope, and the
// error taxonomy is translated to HTTP statuses in exactly one place.
package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbridge/recruitment-backend/internal/apperr"
)

// Envelope is the uniform response shape for every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func OK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// Err is the single translation point from the error taxonomy to HTTP.
// Internal detail stays out of the envelope; clients branch on the error
// code, never on wording.
func Err(c *gin.Context, err error) {
	code := apperr.CodeOf(err)
	message := "internal error"
	var details map[string]string
	var e *apperr.Error
	if errors.As(err, &e) {
		message = e.Message
		details = e.Details
	}
	var data interface{}
	if len(details) > 0 {
		data = details
	}
	c.JSON(httpStatus(code), Envelope{
		Success: false,
		Message: message,
		Data:    data,
		Error:   string(code),
	})
}

func httpStatus(code apperr.Code) int {
	switch code {
	case apperr.CodeValidation:
		return http.StatusBadRequest
	case apperr.CodeUnauthenticated:
		return http.StatusUnauthorized
	case apperr.CodeForbidden:
		return http.StatusForbidden
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeInvalidTransition, apperr.CodeDuplicate, apperr.CodeConflict:
		return http.StatusConflict
	case apperr.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Invalid reports a malformed request before any service call.
func Invalid(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Message: message,
		Error:   string(apperr.CodeValidation),
	})
}

func BindErr(c *gin.Context, err error) {
	Invalid(c, "invalid request body: "+err.Error())
}

// Abort ends a middleware chain with the envelope before any handler runs.
func Abort(c *gin.Context, status int, message, code string) {
	c.AbortWithStatusJSON(status, Envelope{
		Success: false,
		Message: message,
		Error:   code,
	})
}
