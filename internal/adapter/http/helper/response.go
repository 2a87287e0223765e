package helper

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/response"
)

// Error is the error boundary: tagged domain errors map onto their status
// with the message propagated verbatim, everything else becomes a 500 with a
// generic message. The diagnostic detail is suppressed in release mode.
func Error(c *gin.Context, err error) {
	var domainErr *domain.Error

	if errors.As(err, &domainErr) {
		c.JSON(statusFor(domainErr.Kind), response.Error{Message: domainErr.Message})
		return
	}

	log.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("unhandled error")

	body := response.Error{Message: "Internal Server Error"}

	if gin.Mode() != gin.ReleaseMode {
		body.Stack = err.Error()
	}

	c.JSON(http.StatusInternalServerError, body)
}

// AbortError renders err and stops the handler chain. Middleware variant of
// Error.
func AbortError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.ErrValidation, domain.ErrConflict:
		return http.StatusBadRequest
	case domain.ErrUnauthorized:
		return http.StatusUnauthorized
	case domain.ErrForbidden:
		return http.StatusForbidden
	case domain.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
