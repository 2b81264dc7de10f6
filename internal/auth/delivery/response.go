package delivery

import (
	"errors"
	"log"
	"net/http"

	"auth-service/internal/auth/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondSuccess renders the uniform success envelope.
func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"status": "success", "data": data})
}

// respondError translates domain errors into HTTP statuses and renders the
// uniform error envelope. Anything outside the taxonomy is logged with full
// detail and surfaced only as a generic internal error.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": err.Error()})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
	default:
		log.Printf("unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
	}
}

// respondBindError renders a 400 for request binding failures, with a
// readable message for validation errors instead of validator's raw output.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": validationMessage(verrs[0])})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Email":
		if fe.Tag() == "required" {
			return "email is required"
		}
		return "invalid email format"
	case "Password":
		if fe.Tag() == "required" {
			return "password is required"
		}
		return "password must be at least 8 characters and contain at least one uppercase letter, one lowercase letter, one number and one special character"
	case "Name":
		if fe.Tag() == "required" {
			return "name is required"
		}
		return "name must be at least 2 characters"
	}
	return "invalid request body"
}
