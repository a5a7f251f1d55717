package handlers

import (
	"errors"
	"net/http"

	"artist-analytics/internal/core/domain"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "internal server error"

func mapDomainError(c *gin.Context, err error) {
	status, msg := classifyError(err)
	c.JSON(status, gin.H{"error": msg})
}

// classifyError picks the response status and the message safe to show.
func classifyError(err error) (int, string) {
	switch {
	// Bad request / validation errors
	case errors.Is(err, domain.ErrMissingCredentials),
		errors.Is(err, domain.ErrInvalidArtistName):
		return http.StatusBadRequest, err.Error()

	// Rejected by the accounts service
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()

	// Not found errors
	case errors.Is(err, domain.ErrArtistNotFound),
		errors.Is(err, domain.ErrAlbumNotFound):
		return http.StatusNotFound, err.Error()

	// Upstream unavailable or misbehaving
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway, err.Error()

	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}
