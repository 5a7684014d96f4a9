package api

import (
	"context"  // Request context
	"net/http" // HTTP status codes

	"wallet_ledger/internal/domain"  // Domain models
	"wallet_ledger/internal/service" // Business logic

	"github.com/gin-gonic/gin" // Gin web framework
)

// UserManager is the user service as seen by the HTTP layer
type UserManager interface {
	Create(ctx context.Context, in service.CreateUserInput) (*domain.UserProfile, error)
	List(ctx context.Context) ([]domain.UserProfile, error)
	Get(ctx context.Context, id string) (*domain.UserProfile, error)
	Update(ctx context.Context, id string, in service.UpdateUserInput) (*domain.UserProfile, error)
	Delete(ctx context.Context, id string) error
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
}

// CreateUserHandler registers a new user (public endpoint)
func CreateUserHandler(users UserManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadBody(c)
			return
		}
		if errs := ValidateCreateUser(&req); len(errs) > 0 {
			respondValidation(c, errs)
			return
		}
		profile, err := users.Create(c.Request.Context(), service.CreateUserInput{
			Email:     req.Email,
			Password:  req.Password,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
		if err != nil {
			respondError(c, err) // 409 on duplicate email
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// ListUsersHandler returns all users
func ListUsersHandler(users UserManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		profiles, err := users.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profiles)
	}
}

// GetUserHandler returns one user; the wallet service calls this to validate users
func GetUserHandler(users UserManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := users.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateUserHandler applies a partial update
func UpdateUserHandler(users UserManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadBody(c)
			return
		}
		if errs := ValidateUpdateUser(&req); len(errs) > 0 {
			respondValidation(c, errs)
			return
		}
		profile, err := users.Update(c.Request.Context(), c.Param("id"), service.UpdateUserInput{
			Email:     req.Email,
			Password:  req.Password,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// DeleteUserHandler removes a user for good
func DeleteUserHandler(users UserManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := users.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
