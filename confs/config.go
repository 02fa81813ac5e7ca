package confs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultListenAddr = "0.0.0.0:8000"
	defaultTokenTTL   = 30 * time.Minute
	// Development fallback only; set JWT_SECRET in production.
	defaultJWTSecret = "change-me-realty-secret"
)

// Config holds all process-wide settings. It is built once at startup
// and passed explicitly; nothing reads the environment after LoadConfig.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	ListenAddr  string
}

// LoadConfig loads environment variables from a .env file if present
// and builds the immutable process configuration.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		// Only log when the file truly doesn't exist; not an error for runtime
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    defaultTokenTTL,
		ListenAddr:  os.Getenv("LISTEN_ADDR"),
	}

	if cfg.JWTSecret == "" {
		log.Println("warning: JWT_SECRET not set, using insecure development secret")
		cfg.JWTSecret = defaultJWTSecret
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			log.Printf("warning: invalid TOKEN_TTL_MINUTES %q, keeping default", v)
		} else {
			cfg.TokenTTL = time.Duration(minutes) * time.Minute
		}
	}

	return cfg, nil
}
