package main

import (
	"flag" // Command line flags

	"wallet_ledger/internal/config" // Custom import path (Config)
	"wallet_ledger/internal/db"     // Custom import path (Database)
	"wallet_ledger/internal/server" // Logger setup

	"github.com/sirupsen/logrus" // Logging library
)

// Main entry point for migration
func main() {
	svc := flag.String("service", "all", "tables to migrate: users, wallet or all")
	flag.Parse()

	cfg := config.LoadConfig("") // Load configuration
	server.SetupLogger(cfg)

	var models []any
	switch *svc {
	case "users":
		models = db.UserModels
	case "wallet":
		models = db.WalletModels
	case "all":
		models = append(append(models, db.UserModels...), db.WalletModels...)
	default:
		logrus.Fatalf("unknown -service %q", *svc)
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.Migrate(gdb, models...); err != nil {
		logrus.Fatal(err)
	}
}
