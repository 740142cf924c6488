package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	BindAddr    string
	DatabaseURL string
	PublicDir   string
	LogLevel    string
}

// Load reads configuration from the environment (and a .env file if one
// exists). DATABASE_URL intentionally has no default and may be empty: the
// service still starts without a database, it just fails persistence
// operations per-request.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		BindAddr:    getEnv("BIND_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		PublicDir:   getEnv("PUBLIC_DIR", "./public"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
