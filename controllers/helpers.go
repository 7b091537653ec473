package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"grievance-api/services"
)

// currentAdmin builds the actor identity for mutating calls from the
// authenticated request context.
func currentAdmin(c *gin.Context) (services.AdminIdentity, bool) {
	name, nameOK := c.Get("userName")
	email, emailOK := c.Get("email")
	if !nameOK || !emailOK {
		return services.AdminIdentity{}, false
	}

	admin := services.AdminIdentity{}
	if s, ok := name.(string); ok {
		admin.Name = s
	}
	if s, ok := email.(string); ok {
		admin.Email = s
	}
	if admin.Name == "" {
		return services.AdminIdentity{}, false
	}
	return admin, true
}

// respondServiceError maps the service error taxonomy onto HTTP responses.
// Transient store failures carry retryable=true so the dashboard can show a
// retry banner instead of a terminal error.
func respondServiceError(c *gin.Context, err error) {
	var unavailable *services.StoreUnavailableError

	switch {
	case errors.Is(err, services.ErrGrievanceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Grievance not found"})
	case errors.Is(err, services.ErrUnknownGrievance):
		c.JSON(http.StatusNotFound, gin.H{"error": "Grievance not found"})
	case errors.Is(err, services.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reply message must not be empty"})
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid grievance status"})
	case errors.As(err, &unavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "Storage temporarily unavailable, please retry",
			"retryable": true,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
