package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/shopdash/internal/domain/errors"
	"github.com/polkiloo/shopdash/internal/server/http/dto"
)

// StatusFor maps domain errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrSessionNotFound), errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrTooManySessions):
		return http.StatusServiceUnavailable
	case errors.Is(err, domainErrors.ErrInvalidPage), errors.Is(err, domainErrors.ErrInvalidDirection):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrSourceUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := StatusFor(err)
	message := http.StatusText(status)
	if status != http.StatusInternalServerError {
		message = err.Error()
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}

func abortBadRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
}
