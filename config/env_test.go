package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetEnv(t *testing.T) {
	t.Helper()
	previous := Env
	Env = GetDefaultConfig()
	t.Cleanup(func() { Env = previous })
}

func TestLoadEnv(t *testing.T) {
	resetEnv(t)
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("BOT_USERNAME", "SomeBot")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("HTTP_TIMEOUT", "15s")
	t.Setenv("LOG_FILE", "true")

	require.NoError(t, LoadEnv())
	assert.Equal(t, "123:abc", Env.BotToken)
	assert.Equal(t, "SomeBot", Env.BotUsername)
	assert.Equal(t, "sqlite", Env.DBDriver)
	assert.Equal(t, 15*time.Second, Env.HTTPTimeout)
	assert.True(t, Env.LogFile)
	assert.Equal(t, ":8080", Env.ListenAddr)
}

func TestLoadEnv_MissingToken(t *testing.T) {
	resetEnv(t)
	t.Setenv("BOT_TOKEN", "")
	assert.ErrorIs(t, LoadEnv(), ErrMissingBotToken)
}

func TestLoadEnv_InvalidValues(t *testing.T) {
	resetEnv(t)
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("HTTP_TIMEOUT", "soon")
	assert.Error(t, LoadEnv())

	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("LOG_FILE", "maybe")
	assert.Error(t, LoadEnv())
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()
	assert.Equal(t, "SnapTikRsBot", cfg.BotUsername)
	assert.Equal(t, "https://api.telegram.org", cfg.BotAPIURL)
	assert.Equal(t, time.Minute, cfg.HTTPTimeout)
	assert.Empty(t, cfg.BotToken)
}

func TestLoadResolverConfigs(t *testing.T) {
	t.Cleanup(func() { resolverConfigs = nil })
	path := filepath.Join(t.TempDir(), "resolvers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
twitter:
  disabled: true
shorts:
  https_proxy: http://proxy.local:3128
  no_proxy: localhost
`), 0o644))

	require.NoError(t, LoadResolverConfigs(path))
	assert.True(t, IsResolverDisabled("twitter"))
	assert.False(t, IsResolverDisabled("shorts"))
	assert.False(t, IsResolverDisabled("tiktok"))
	require.NotNil(t, GetResolverConfig("shorts"))
	assert.Equal(t, "http://proxy.local:3128", GetResolverConfig("shorts").HTTPSProxy)
	assert.Nil(t, GetResolverConfig("tiktok"))
}

func TestLoadResolverConfigs_MissingFile(t *testing.T) {
	require.NoError(t, LoadResolverConfigs(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Nil(t, GetResolverConfig("twitter"))
}

func TestLoadResolverConfigs_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolvers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("twitter: [not, a, map"), 0o644))
	assert.Error(t, LoadResolverConfigs(path))
}
