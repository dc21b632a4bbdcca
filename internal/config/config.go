package config

import (
	"os"
	"time"
)

type Config struct {
	Addr         string
	DatabaseURL  string
	JWTSecret    string
	JWTTTL       time.Duration
	AuthRequired bool
}

// Load reads configuration from the environment. Missing values fall back to
// local-development defaults (SQLite file, port 8080, auth disabled).
func Load() Config {
	cfg := Config{
		Addr:         getenv("ADDR", ":8080"),
		DatabaseURL:  getenv("DATABASE_URL", "gymoffice.db"),
		JWTSecret:    getenv("JWT_SECRET", "dev-secret"),
		JWTTTL:       24 * time.Hour,
		AuthRequired: os.Getenv("AUTH_REQUIRED") == "true",
	}
	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.JWTTTL = d
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
