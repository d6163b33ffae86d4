package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ServiceName+".yaml"), []byte(`
server:
  port: "9000"
  rate_limit:
    rate: 0.5
    burst: 3
client:
  base_url: https://fidelity.suns.test
database:
  driver: sqlite
  name: test.db
token:
  store: file
  dir: /tmp/tokens
  cleanup_interval: 30s
events:
  enabled: true
log:
  level: warn
  format: console
`), 0o600))
	t.Setenv("CONFIG_PATH", dir)
	t.Setenv("FIDELITY_EMAIL_SMTP_HOST", "smtp.suns.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 0.5, cfg.Server.RateLimit.Rate)
	assert.Equal(t, 3, cfg.Server.RateLimit.Burst)
	assert.Equal(t, 10*time.Minute, cfg.Server.RateLimit.ExpiresIn)
	assert.Equal(t, "https://fidelity.suns.test", cfg.Client.BaseURL)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "test.db", cfg.Database.Name)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "file", cfg.Token.Store)
	assert.Equal(t, "/tmp/tokens", cfg.Token.Dir)
	assert.Equal(t, 30*time.Second, cfg.Token.CleanupInterval)
	assert.Equal(t, "smtp.suns.test", cfg.Email.SMTPHost)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Equal(t, "configs/stores.yaml", cfg.Stores.File)
	assert.True(t, cfg.Events.Enabled)
	assert.Equal(t, "fidelity.events", cfg.Events.Channel)
	assert.False(t, cfg.Redis.Enabled)
	assert.NotNil(t, cfg.Logger)
}

func TestLoad_DefaultsOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Token.Store)
	assert.Equal(t, time.Minute, cfg.Token.CleanupInterval)
	assert.Equal(t, []string{"https://localhost:7065"}, cfg.Server.CORSOrigins)
}
