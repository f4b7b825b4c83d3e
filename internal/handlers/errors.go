package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventhub/internal/models"
)

// respondError maps service errors onto HTTP statuses. Anything unrecognised is
// handed to the ErrorHandler middleware, which answers with an opaque 500.
func respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, models.ValidationResponse(verr))
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(err.Error()))
	default:
		_ = c.Error(err)
	}
}
