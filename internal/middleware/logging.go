package middleware

import (
	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ErrorLogger logs the errors handlers attached with c.Error once the request is done.
// Client errors are logged at warn level, everything else at error level.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next() // Run the handler chain first
		if len(c.Errors) == 0 {
			return
		}
		entry := logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"status": c.Writer.Status(),
			"user":   c.GetString(UserIDKey),
		})
		for _, e := range c.Errors {
			if c.Writer.Status() < 500 {
				entry.WithError(e.Err).Warn("Request failed")
			} else {
				entry.WithError(e.Err).Error("Request failed")
			}
		}
	}
}
