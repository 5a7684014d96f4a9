package db

import (
	"fmt" // DSN formatting

	"wallet_ledger/internal/config" // Custom import path (Config)

	"gorm.io/driver/mysql"    // MySQL driver for GORM
	"gorm.io/driver/postgres" // PostgreSQL driver for GORM
	"gorm.io/gorm"            // GORM ORM library
	"gorm.io/gorm/logger"     // GORM logger levels
)

// Dialector builds the GORM dialector for the configured driver
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "mysql", "":
		// Data Source Name (DSN) for MySQL connection
		dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPortOrDefault() + ")/" + cfg.DBName + "?parseTime=true"
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPortOrDefault(), cfg.DBUser, cfg.DBPassword, cfg.DBName)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// Open connects to the configured database
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	logLevel := logger.Warn // SQL logging only outside production
	if cfg.IsProd {
		logLevel = logger.Error
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true, // Every write is a single statement
		TranslateError:         true, // Unique violations surface as gorm.ErrDuplicatedKey
	})
}
