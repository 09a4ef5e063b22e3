package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	tempFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)

	_, err = tempFile.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, tempFile.Close())

	return tempFile.Name()
}

func TestLoadConfig(t *testing.T) {
	t.Run("correct config", func(t *testing.T) {
		configContent := `
dictionary_file: "words.txt"
pg_dsn: "user=postgres password=secret dbname=test sslmode=disable"
srv_port: "8081"
rate_limit: 1000
concurrency_limit: 5
cache_size: 64
reload_interval: 12
token_max_time: 3600
jwt_secret: "supersecretkey"
log_level: "debug"
admin_login: "admin"
admin_password: "admin"
`
		config, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)

		assert.Equal(t, "words.txt", config.DictFile)
		assert.Equal(t, "user=postgres password=secret dbname=test sslmode=disable", config.DSN)
		assert.Equal(t, "8081", config.SrvPort)
		assert.Equal(t, 1000, config.RateLimit)
		assert.Equal(t, 5, config.ConcurrencyLimit)
		assert.Equal(t, 64, config.CacheSize)
		assert.Equal(t, 12, config.ReloadInterval)
		assert.Equal(t, 3600, config.TokenMaxTime)
		assert.Equal(t, "supersecretkey", config.JWTSecret)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "admin", config.AdminLogin)
		assert.Equal(t, "admin", config.AdminPassword)
	})

	t.Run("defaults", func(t *testing.T) {
		config, err := Load(writeConfig(t, `jwt_secret: "x"`))
		require.NoError(t, err)

		assert.Equal(t, defaultSrvPort, config.SrvPort)
		assert.Equal(t, defaultRateLimit, config.RateLimit)
		assert.Equal(t, defaultConcurrencyLimit, config.ConcurrencyLimit)
		assert.Equal(t, defaultCacheSize, config.CacheSize)
		assert.Equal(t, defaultReloadInterval, config.ReloadInterval)
		assert.Equal(t, defaultTokenMaxTime, config.TokenMaxTime)
		assert.Equal(t, defaultLogLevel, config.LogLevel)
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := Load(writeConfig(t, "rate_limit: -1"))
		assert.EqualError(t, err, "rate_limit must not be negative")
	})

	t.Run("admin without password", func(t *testing.T) {
		_, err := Load(writeConfig(t, "admin_login: admin"))
		assert.EqualError(t, err, "admin_password is required with admin_login")
	})

	t.Run("incorrect config", func(t *testing.T) {
		_, err := Load(writeConfig(t, "1234"))
		assert.EqualError(t, err, "yaml: unmarshal errors:\n  line 1: cannot unmarshal !!int `1234` into config.Config")
	})

	t.Run("no file", func(t *testing.T) {
		_, err := Load("")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
