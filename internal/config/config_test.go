package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusdesk/registry-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BIND_ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PUBLIC_DIR", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := config.Load()
	assert.Equal(t, ":8080", cfg.BindAddr)
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, "./public", cfg.PublicDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BIND_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/registry")
	t.Setenv("PUBLIC_DIR", "/srv/www")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := config.Load()
	assert.Equal(t, ":9090", cfg.BindAddr)
	assert.Equal(t, "postgres://localhost/registry", cfg.DatabaseURL)
	assert.Equal(t, "/srv/www", cfg.PublicDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}
