package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigurationDefaults(t *testing.T) {
	cfg, err := LoadConfiguration("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, int64(64*1024), cfg.BodySizeBytes())
	assert.Equal(t, CacheBackendMemory, cfg.Server.Cache.Backend)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL())
	assert.Equal(t, 120, cfg.Server.RateLimit.Capacity)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow())
	assert.Empty(t, cfg.ValidateConfiguration())
}

func TestLoadConfigurationFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  address: ":9090"
  maxBodySize: 256K
  cache:
    backend: redis
    address: localhost:6379
    ttl: 30s
  rateLimit:
    capacity: 10
    window: 10s
logging:
  level: debug
  format: console
`)

	cfg, err := LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, int64(256*1024), cfg.BodySizeBytes())
	assert.Equal(t, CacheBackendRedis, cfg.Server.Cache.Backend)
	assert.Equal(t, "localhost:6379", cfg.Server.Cache.Address)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL())
	assert.Equal(t, 10, cfg.Server.RateLimit.Capacity)
	assert.Equal(t, 10*time.Second, cfg.RateLimitWindow())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Empty(t, cfg.ValidateConfiguration())
}

func TestLoadConfigurationInvalidTTL(t *testing.T) {
	path := writeConfig(t, `
server:
  cache:
    ttl: soon
`)

	_, err := LoadConfiguration(path)
	assert.Error(t, err)
}

func TestValidateConfigurationWarnings(t *testing.T) {
	path := writeConfig(t, `
server:
  cache:
    backend: redis
logging:
  level: verbose
`)

	cfg, err := LoadConfiguration(path)
	require.NoError(t, err)

	warnings := cfg.ValidateConfiguration()
	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "no address is configured")
	assert.Contains(t, warnings[1], "unknown log level")
}

func TestConfigurationYAML(t *testing.T) {
	cfg, err := LoadConfiguration("")
	require.NoError(t, err)

	rendered, err := cfg.YAML()
	require.NoError(t, err)
	assert.Contains(t, rendered, ":8080")
	assert.Contains(t, rendered, "backend: memory")
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"1024", 1024, false},
		{"64K", 64 * 1024, false},
		{"10M", 10 * 1024 * 1024, false},
		{"1GB", 1024 * 1024 * 1024, false},
		{" 2 kb ", 2 * 1024, false},
		{"", 64 * 1024, false},
		{"abc", 0, true},
		{"10X", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
