package main

import (
	"context"   // Root context for the server lifetime
	"os"        // Process signals
	"os/signal" // Graceful shutdown on SIGINT/SIGTERM
	"syscall"   // SIGTERM

	"wallet_ledger/internal/api"        // HTTP handlers and routes
	"wallet_ledger/internal/config"     // Configuration
	"wallet_ledger/internal/db"         // Database bootstrap
	"wallet_ledger/internal/repository" // Persistence
	"wallet_ledger/internal/server"     // Process bootstrap
	"wallet_ledger/internal/service"    // Business logic

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the users service
func main() {
	cfg := config.LoadConfig("3002") // Load configuration
	server.SetupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Redis is optional; without it profile reads always hit the database
	rdb, err := server.NewRedis(ctx, cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}
	if rdb == nil {
		logrus.Info("REDIS_ADDR not set, user cache disabled")
	} else {
		defer rdb.Close()
	}

	users := service.NewUserService(repository.NewUserRepository(gdb), rdb, cfg.JWTSecret, cfg.JWTExpiresIn, cfg.BcryptCost)

	r, err := server.NewEngine(cfg)
	if err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}
	api.RegisterUserRoutes(r, users, cfg.JWTSecret)

	if err := server.Run(ctx, ":"+cfg.AppPort, r); err != nil {
		logrus.Fatalf("users service stopped: %v", err)
	}
}
