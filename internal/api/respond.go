package api

import (
	"net/http" // HTTP status codes

	"wallet_ledger/internal/apperr" // Error taxonomy

	"github.com/gin-gonic/gin" // Gin web framework
)

// respondError records err for the logging middleware and writes its static message
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
}

// respondBadBody is used when the body cannot be decoded at all
func respondBadBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
}

// HealthHandler reports liveness
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
