// Package userclient is the wallet service's view of the users service: a single
// authenticated lookup used to confirm that a referenced user exists.
package userclient

import (
	"context"       // Request-scoped cancellation
	"encoding/json" // JSON decoding
	"errors"        // Error matching
	"fmt"           // Error formatting
	"io"            // Draining response bodies
	"net/http"      // HTTP client and status codes
	"net/url"       // Path escaping
	"time"          // Durations

	"wallet_ledger/internal/apperr" // Error taxonomy

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// ErrMissingToken is the cause recorded when no bearer token is available to forward
var ErrMissingToken = errors.New("auth token is required")

// UserProfile is the body returned by GET /users/:id
type UserProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Client calls the users service over HTTP
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the users service at baseURL. Every call is bounded by
// timeout and follows at most maxRedirects redirects.
func New(baseURL string, timeout time.Duration, maxRedirects int) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
	}
}

// ValidateUser confirms that userID exists by looking it up with the caller's token.
// Not found, rejected, unreachable and timed out all surface as the same error.
func (c *Client) ValidateUser(ctx context.Context, userID, authToken string) (*UserProfile, error) {
	const op = "userclient.ValidateUser"
	logrus.WithField("user_id", userID).Info("Validating user with User Microservice")

	profile, err := c.fetch(ctx, userID, authToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("Failed to validate user")
		return nil, apperr.NewUnauthorized(op, "Failed to validate user with User Microservice", err)
	}
	return profile, nil
}

func (c *Client) fetch(ctx context.Context, userID, authToken string) (*UserProfile, error) {
	if authToken == "" {
		return nil, ErrMissingToken
	}
	endpoint := c.baseURL + "/users/" + url.PathEscape(userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+authToken) // Forward the caller's token
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() // Close the response body

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body) // Drain so the connection can be reused
		return nil, fmt.Errorf("users service responded %d", resp.StatusCode)
	}
	var profile UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &profile, nil
}
