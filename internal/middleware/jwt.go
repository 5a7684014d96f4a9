package middleware

import (
	"context"  // Request-scoped identity
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"wallet_ledger/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Keys under which the middleware stores the caller in the gin context
const (
	UserIDKey = "userID"
	EmailKey  = "email"
	TokenKey  = "token"
)

// Identity is the decoded caller of a request
type Identity struct {
	UserID string
	Email  string
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity stored by the middleware, if any
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// JWTAuthMiddleware validates JWT tokens and extracts user information
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")) // Extract the token string
		claims, err := utils.ParseJWT(tokenStr, secret)                          // Parse the JWT token
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"path":  c.FullPath(),
				"error": err.Error(),
			}).Debug("Rejected bearer token")
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		id := Identity{UserID: claims.UserID(), Email: claims.Email}
		c.Set(UserIDKey, id.UserID)                                              // Store userID in context
		c.Set(EmailKey, id.Email)                                                // Store email in context
		c.Set(TokenKey, tokenStr)                                                // Raw token, forwarded to peer services
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), id)) // Identity for non-gin callers
		c.Next()                                                                 // Proceed to the next handler
	}
}

// CurrentUser returns the identity attached by JWTAuthMiddleware
func CurrentUser(c *gin.Context) (Identity, bool) {
	userID := c.GetString(UserIDKey)
	if userID == "" {
		return Identity{}, false
	}
	return Identity{UserID: userID, Email: c.GetString(EmailKey)}, true
}

// BearerToken returns the raw token of the authenticated request, or ""
func BearerToken(c *gin.Context) string {
	return c.GetString(TokenKey)
}
