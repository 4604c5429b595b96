package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// Arrange
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("ZMQ_PORT", "6000")
	t.Setenv("STORE_NAME", "battle")
	t.Setenv("CODEC_MODE", "literal")
	t.Setenv("INDEX_ORDER", "6")
	t.Setenv("MODE", "http")
	t.Setenv("SERVER_URL", "http://store:9000")

	// Act
	cfg := LoadConfig()

	// Assert
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 6000, cfg.ZmqApiPort)
	assert.Equal(t, "battle", cfg.StoreName)
	assert.Equal(t, "literal", cfg.CodecMode)
	assert.Equal(t, 6, cfg.IndexOrder)
	assert.Equal(t, ModeHTTP, cfg.Mode)
	assert.Equal(t, "http://store:9000", cfg.ServerUrl)
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_PORT", "ZMQ_PORT", "STORE_NAME", "CODEC_MODE", "INDEX_ORDER", "MODE", "LOG_LEVEL", "SERVER_URL"} {
		t.Setenv(k, "")
	}
	t.Setenv("INDEX_ORDER", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 3000, cfg.ServerPort)
	assert.Equal(t, 5555, cfg.ZmqApiPort)
	assert.Equal(t, "default", cfg.StoreName)
	assert.Equal(t, "symmetric", cfg.CodecMode)
	assert.Equal(t, 4, cfg.IndexOrder)
	assert.Equal(t, ModeConsole, cfg.Mode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:3000", cfg.ServerUrl)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	t.Setenv("STORE_NAME", "")
	os.Unsetenv("STORE_NAME")

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("STORE_NAME=from-dotenv\n"), 0644))

	prev := *envFileCmd
	*envFileCmd = envFile
	t.Cleanup(func() {
		*envFileCmd = prev
		os.Unsetenv("STORE_NAME")
	})

	cfg := LoadConfig()
	assert.Equal(t, "from-dotenv", cfg.StoreName)
}
