package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolioBackend/internal/domain"
)

// Every response carries the {success, message} envelope the frontend
// expects; payload fields ride alongside.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
	})
}

// respondDomainError maps service-layer errors onto the wire taxonomy:
// validation → 400, unknown id → 404 with the given message, anything else
// → generic 500.
func respondDomainError(c *gin.Context, err error, notFoundMessage string) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		respondError(c, http.StatusBadRequest, validationErr.Message)
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		respondError(c, http.StatusNotFound, notFoundMessage)
		return
	}
	respondError(c, http.StatusInternalServerError, "Internal Server Error")
}
