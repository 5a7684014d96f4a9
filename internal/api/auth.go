package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// LoginHandler authenticates a user and returns the user with a JWT token
func LoginHandler(users UserManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadBody(c) // If binding fails, return bad request
			return
		}
		// Validate credentials shape
		if errs := ValidateLogin(&req); len(errs) > 0 {
			respondValidation(c, errs)
			return
		}
		res, err := users.Login(c.Request.Context(), req.User.Email, req.User.Password)
		if err != nil {
			respondError(c, err) // Unknown email and wrong password look the same
			return
		}
		c.JSON(http.StatusOK, res) // Return the user and token
	}
}
