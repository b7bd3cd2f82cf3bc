package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
jwt:
  secret: "s3cret"
cors:
  allowed_origins: "https://kolo.example.com, https://admin.example.com"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "uploads", cfg.Server.UploadsPath)
	assert.Equal(t, "24h", cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, "migrations", cfg.Database.MigrationsDir)
	assert.Equal(t, []string{"https://kolo.example.com", "https://admin.example.com"}, SplitList(cfg.CORS.AllowedOrigins))
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, "jwt:\n  secret: file-secret\n")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")
	t.Setenv("SERVER_MAX_MULTIPART_MEMORY", "1048576")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.False(t, cfg.CORS.AllowCredentials)
	assert.Equal(t, int64(1048576), cfg.Server.MaxMultipartMemory)
}

func TestLoadConfig_Validation(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "server:\n  port: \"8080\"\n"))
	assert.ErrorContains(t, err, "JWT secret is required")

	_, err = LoadConfig(writeConfig(t, "jwt:\n  secret: x\n  access_token_expiration: soon\n"))
	assert.ErrorContains(t, err, "expiration")

	_, err = LoadConfig(writeConfig(t, "jwt:\n  secret: x\nseed:\n  admin_email: a@b.pl\n"))
	assert.ErrorContains(t, err, "seed admin")
}

func TestLoadConfig_BadEnvValue(t *testing.T) {
	path := writeConfig(t, "jwt:\n  secret: x\n")
	t.Setenv("SMTP_PORT", "not-a-number")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
