// Package server holds the process bootstrap shared by the users and wallet binaries.
package server

import (
	"context"  // Shutdown deadline
	"errors"   // Error matching
	"net/http" // HTTP server
	"time"     // Timeouts

	"wallet_ledger/internal/config"     // Configuration
	"wallet_ledger/internal/middleware" // Auth and logging middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"golang.org/x/sync/errgroup"   // Server lifecycle
)

const shutdownTimeout = 10 * time.Second

// SetupLogger configures the global logrus logger from cfg
func SetupLogger(cfg *config.Config) {
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithField("level", cfg.LogLevel).Warn("Unknown LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// NewEngine returns a gin engine with the default middleware plus error logging
func NewEngine(cfg *config.Config) (*gin.Engine, error) {
	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}
	r.Use(middleware.ErrorLogger())
	return r, nil
}

// NewRedis connects to redis when REDIS_ADDR is set; it returns nil otherwise
func NewRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

// Run serves handler on addr until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.WithField("addr", addr).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logrus.Info("Shutting down server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
