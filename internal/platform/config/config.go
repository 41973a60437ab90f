package config

import (
	"os"
	"strconv"
	"time"
)

// Config aggregates everything main needs to wire the service.
type Config struct {
	Server    Server
	Auth      Auth
	Redis     RedisConfig
	RateLimit RateLimit
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr string
}

// Auth holds token signing configuration. Tokens are HS256-signed and expire
// after TokenTTL; there is no revocation path.
type Auth struct {
	SigningKey string
	Issuer     string
	TokenTTL   time.Duration
}

// RedisConfig configures the optional redis backend for the login throttle.
// An empty URL means redis is not configured and the in-memory store is used.
type RedisConfig struct {
	URL          string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// RateLimit bounds login/register attempts per client IP.
type RateLimit struct {
	Enabled bool
	Limit   int
	Window  time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	addr := os.Getenv("BOOKSTAND_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	signingKey := os.Getenv("JWT_SIGNING_KEY")
	if signingKey == "" {
		// Use a default for development - should be overridden in production
		signingKey = "dev-secret-key-change-in-production"
	}

	return Config{
		Server: Server{Addr: addr},
		Auth: Auth{
			SigningKey: signingKey,
			Issuer:     "bookstand",
			TokenTTL:   time.Hour,
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		RateLimit: RateLimit{
			Enabled: os.Getenv("RATE_LIMIT_DISABLED") != "true",
			Limit:   envInt("RATE_LIMIT_ATTEMPTS", 20),
			Window:  envDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
	}
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if v, err := time.ParseDuration(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
