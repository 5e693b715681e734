package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/qreet/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, 256, cfg.QR.Size)
	assert.Equal(t, "M", cfg.QR.Level)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("QREET_ENV", "production")
	t.Setenv("QREET_HTTP_ADDRESS", ":9090")
	t.Setenv("QREET_HTTP_READ_TIMEOUT", "3s")
	t.Setenv("QREET_QR_SIZE", "512")
	t.Setenv("QREET_QR_LEVEL", "H")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 512, cfg.QR.Size)
	assert.Equal(t, "H", cfg.QR.Level)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qreet.yaml")
	content := `
env: production
log:
  level: debug
http:
  address: ":7070"
qr:
  size: 300
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, ":7070", cfg.HTTP.Address)
	assert.Equal(t, 300, cfg.QR.Size)
	assert.Equal(t, "M", cfg.QR.Level)
}

func TestLoadFile_EnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qreet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  address: \":7070\"\n"), 0o600))
	t.Setenv("QREET_HTTP_ADDRESS", ":6060")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.HTTP.Address)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidSize(t *testing.T) {
	t.Setenv("QREET_QR_SIZE", "0")

	_, err := config.Load()
	assert.Error(t, err)
}
