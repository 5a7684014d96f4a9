package api

import (
	"wallet_ledger/internal/middleware" // Auth and logging middleware

	"github.com/gin-gonic/gin" // Gin web framework
)

// RegisterUserRoutes mounts the users service endpoints
func RegisterUserRoutes(r gin.IRouter, users UserManager, jwtSecret string) {
	r.GET("/health", HealthHandler())
	r.POST("/auth", LoginHandler(users))       // Login endpoint
	r.POST("/users", CreateUserHandler(users)) // Registration endpoint

	// User routes (protected by JWT)
	userGroup := r.Group("/users")
	userGroup.Use(middleware.JWTAuthMiddleware(jwtSecret))
	userGroup.GET("", ListUsersHandler(users))
	userGroup.GET("/:id", GetUserHandler(users))
	userGroup.PATCH("/:id", UpdateUserHandler(users))
	userGroup.DELETE("/:id", DeleteUserHandler(users))
}

// RegisterWalletRoutes mounts the wallet service endpoints, all behind the JWT guard
func RegisterWalletRoutes(r gin.IRouter, ledger Ledger, jwtSecret string) {
	r.GET("/health", HealthHandler())

	walletGroup := r.Group("")
	walletGroup.Use(middleware.JWTAuthMiddleware(jwtSecret))
	walletGroup.POST("/transactions", CreateTransactionHandler(ledger))
	walletGroup.GET("/transactions", ListTransactionsHandler(ledger))
	walletGroup.GET("/transactions/:id", GetTransactionHandler(ledger))
	walletGroup.DELETE("/transactions/:id", DeleteTransactionHandler(ledger))
	walletGroup.GET("/balance", BalanceHandler(ledger))
}
