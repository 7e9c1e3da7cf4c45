// filepath: internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[server]
host = "127.0.0.1"
port = 9090

[database]
path = "/tmp/test.db"

[logging]
level = "debug"

[jwt]
access_duration_hours = 24
secret = "persisted-secret"

[admin]
username = "root"
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 24, cfg.JWT.AccessDurationHours)
	assert.Equal(t, "persisted-secret", cfg.JWT.Secret)
	assert.Equal(t, "root", cfg.Admin.Username)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := &Config{}
	cfg.ApplyDefaults()
	cfg.JWT.Secret = "generated-secret"
	cfg.Admin.Password = "never-persisted"

	assert.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "generated-secret", loaded.JWT.Secret)
	assert.Equal(t, cfg.Server.Port, loaded.Server.Port)
	// The admin password carries a toml:"-" tag and must not survive a save
	assert.Empty(t, loaded.Admin.Password)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "daylog.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 480, cfg.JWT.AccessDurationHours)
	assert.Equal(t, "admin", cfg.Admin.Username)

	// Explicit values are left alone
	cfg2 := &Config{}
	cfg2.Server.Port = 3000
	cfg2.ApplyDefaults()
	assert.Equal(t, 3000, cfg2.Server.Port)
}
