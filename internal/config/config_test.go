package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "host=localhost user=test dbname=test")
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")

	cfg := Load()

	assert.Equal(t, "host=localhost user=test dbname=test", cfg.DBDSN)
	assert.Equal(t, "test-secret", cfg.SessionSecret)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "admin@opsboard.local", cfg.AdminUsername)
	assert.Equal(t, "Admin123!", cfg.AdminPassword)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DSN", "host=db user=ops dbname=ops")
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ADMIN_USERNAME", "root@example.com")
	t.Setenv("ADMIN_PASSWORD", "Pass1234!")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "root@example.com", cfg.AdminUsername)
	assert.Equal(t, "Pass1234!", cfg.AdminPassword)
}
