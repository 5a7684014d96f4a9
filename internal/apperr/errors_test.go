package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFound("users.get", "User not found"), http.StatusNotFound},
		{"conflict", NewConflict("users.create", "Email already exists"), http.StatusConflict},
		{"unauthorized", NewUnauthorized("auth.login", "Invalid credentials", nil), http.StatusUnauthorized},
		{"bad request", NewBadRequest("ledger.create", "Failed to create transaction", cause), http.StatusBadRequest},
		{"internal", NewInternal("users.list", cause), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("handler: %w", NewNotFound("op", "gone")), http.StatusNotFound},
		{"plain error", cause, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestMessageAndUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := NewUnauthorized("userclient.validate", "Failed to validate user with User Microservice", cause)

	assert.Equal(t, "Failed to validate user with User Microservice", Message(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "dial tcp: refused")
	assert.True(t, Is(err, Unauthorized))
	assert.False(t, Is(nil, Unauthorized))
	assert.Equal(t, "Internal server error", Message(cause))
}
