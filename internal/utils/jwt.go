package utils

import (
	"errors" // Error values
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ErrInvalidTokenPayload is returned when a correctly signed token has no subject
var ErrInvalidTokenPayload = errors.New("invalid token payload")

// JWT Claims. The subject ("sub") carries the user ID.
type Claims struct {
	Email                string `json:"email"` // Custom claim for the user's email
	jwt.RegisteredClaims        // Standard JWT claims
}

// UserID returns the user ID stored in the subject claim
func (c *Claims) UserID() string {
	return c.Subject
}

// GenerateJWT creates a JWT token for a given user
func GenerateJWT(userID, email, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	// Set token claims
	claims := Claims{
		Email: email, // Custom claim for email
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,                           // User ID
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)), // Token expiry
			IssuedAt:  jwt.NewNumericDate(now),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a JWT token string
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid // Return error if token is invalid
	}
	if claims.Subject == "" {
		return nil, ErrInvalidTokenPayload // Token without a user is useless
	}
	return claims, nil
}
