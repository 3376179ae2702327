package controllers

import (
	"errors"
	"net/http"

	"storefront/models"

	"github.com/gin-gonic/gin"
)

// respondError maps taxonomy sentinels onto HTTP status and machine-readable
// error codes. Anything unmapped is a 500 with the detail kept out of the body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: models.ErrNotAuthenticated.Error(), Code: models.CodeNotAuthenticated,
		})
	case errors.Is(err, models.ErrProfileMissing):
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Message: "Customer does not exist. Please register as a customer.", Code: models.CodeProfileMissing,
		})
	case errors.Is(err, models.ErrEmptyCart):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Message: "Your cart is empty!", Code: models.CodeEmptyCart,
		})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Message: "Not found", Code: models.CodeNotFound,
		})
	case errors.Is(err, models.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Request failed. Please check the form.", Code: models.CodeValidationFailed,
		})
	case errors.Is(err, models.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Status transition not allowed", Code: models.CodeInvalidTransition,
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Internal server error", Code: models.CodeInternal,
		})
	}
}
