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
	"wallet_ledger/internal/userclient" // Users service client

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the wallet service
func main() {
	cfg := config.LoadConfig("3001")
	server.SetupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	users := userclient.New(cfg.UserServiceURL, cfg.UserSvcTimeout, cfg.UserSvcRedirects)
	ledger := service.NewLedgerService(repository.NewTransactionRepository(gdb), users)

	r, err := server.NewEngine(cfg)
	if err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}
	api.RegisterWalletRoutes(r, ledger, cfg.JWTSecret)

	logrus.WithField("user_service", cfg.UserServiceURL).Info("Validating users against users service")
	if err := server.Run(ctx, ":"+cfg.AppPort, r); err != nil {
		logrus.Fatalf("wallet service stopped: %v", err)
	}
}
