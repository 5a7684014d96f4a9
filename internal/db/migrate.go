package db

import (
	"wallet_ledger/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// UserModels are the tables owned by the users service
var UserModels = []any{&domain.User{}}

// WalletModels are the tables owned by the wallet service
var WalletModels = []any{&domain.Transaction{}}

// Migrate performs automatic migration for the given models
func Migrate(db *gorm.DB, models ...any) error {
	// AutoMigrate will create tables, missing columns and indexes
	if err := db.AutoMigrate(models...); err != nil {
		logrus.WithError(err).Error("Migration failed")
		return err
	}
	logrus.WithField("tables", len(models)).Info("Migration completed.") // Log successful migration
	return nil
}
