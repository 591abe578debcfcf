package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicare/internal/auth"
	"clinicare/internal/services"
	"clinicare/internal/validation"
)

// respondError maps the service error taxonomy onto HTTP: field-scoped
// validation failures to 400 with a field->message object, unknown email
// to 404, bad credentials and bad tokens to 401, the rest to 500.
func respondError(c *gin.Context, err error) {
	var fields validation.FieldErrors
	switch {
	case errors.As(err, &fields):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"errors":  fields,
		})
	case errors.Is(err, services.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Account not found",
			"error":   "Email does not exist!",
		})
	case errors.Is(err, services.ErrWrongPassword):
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "Incorrect Password!",
		})
	case errors.Is(err, auth.ErrTokenExpired), errors.Is(err, auth.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid or expired token",
			"error":   err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Internal server error",
			"error":   err.Error(),
		})
	}
}
