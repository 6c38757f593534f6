package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yashwanthgowda1/backend-server/internal/apperror"
)

// respondError maps the typed error taxonomy onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch apperror.GetCode(err) {
	case apperror.CodeValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperror.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperror.CodeUnavailable:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
