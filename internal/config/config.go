package config

import (
	"errors"  // For configuration errors
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For list parsing
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the configuration shared by the users and wallet services
type Config struct {
	AppPort          string        // Application port
	DBDriver         string        // Database driver: mysql or postgres
	DBUser           string        // Database user
	DBPassword       string        // Database password
	DBHost           string        // Database host
	DBPort           string        // Database port
	DBName           string        // Database name
	JWTSecret        string        // JWT secret key
	JWTExpiresIn     time.Duration // Lifetime of issued tokens
	BcryptCost       int           // Cost factor for password hashing
	UserServiceURL   string        // Base URL of the users service, used by the wallet service
	UserSvcTimeout   time.Duration // Timeout of calls to the users service
	UserSvcRedirects int           // Maximum redirects followed when calling the users service
	RedisAddr        string        // Redis server address, empty disables caching
	RedisPass        string        // Redis password
	RedisDB          int           // Redis database number
	IsProd           bool          // Is production environment
	LogLevel         string        // Logrus level name
	TrustedProxies   []string      // Proxies gin trusts for client IPs
}

// ErrMissingJWTSecret is returned by Validate when no signing secret is configured
var ErrMissingJWTSecret = errors.New("JWT_SECRET configuration is missing")

// LoadConfig loads configuration from environment variables.
// defaultPort is used when APP_PORT is not set, so both services can run side by side.
func LoadConfig(defaultPort string) *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:          getEnv("APP_PORT", defaultPort),
		DBDriver:         getEnv("DB_DRIVER", "mysql"),
		DBUser:           getEnv("DB_USER", "wallet_user"),
		DBPassword:       getEnv("DB_PASSWORD", "wallet_pass"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           os.Getenv("DB_PORT"),
		DBName:           getEnv("DB_NAME", "wallet_db"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTExpiresIn:     getDuration("JWT_EXPIRES_IN", 24*time.Hour),
		BcryptCost:       getInt("BCRYPT_COST", 10),
		UserServiceURL:   strings.TrimRight(getEnv("USER_SERVICE_URL", "http://localhost:3002"), "/"),
		UserSvcTimeout:   getDuration("USER_SERVICE_TIMEOUT", 10*time.Second),
		UserSvcRedirects: getInt("USER_SERVICE_MAX_REDIRECTS", 5),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPass:        os.Getenv("REDIS_PASS"),
		RedisDB:          redisDB,
		IsProd:           os.Getenv("IS_PROD") == "true",
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		TrustedProxies:   splitList(getEnv("TRUSTED_PROXIES", "127.0.0.1")),
	}
}

// Validate reports configuration that makes the services unusable
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// DBPortOrDefault returns the configured port or the driver's well-known port
func (c *Config) DBPortOrDefault() string {
	if c.DBPort != "" {
		return c.DBPort
	}
	if c.DBDriver == "postgres" {
		return "5432"
	}
	return "3306"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// getDuration accepts Go duration strings ("10s", "24h") or a bare number of seconds
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
