package handlers

import (
	"errors"
	"net/http"

	"lushlocks-backend/store"

	"github.com/gin-gonic/gin"
)

// respondStoreError maps the store's error types onto HTTP statuses:
// missing id -> 404, bad input -> 400, illegal status change -> 409.
func respondStoreError(c *gin.Context, err error) {
	var notFound *store.NotFoundError
	var validation *store.ValidationError
	var transition *store.InvalidTransitionError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &transition):
		c.JSON(http.StatusConflict, gin.H{"error": transition.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
