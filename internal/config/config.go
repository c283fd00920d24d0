// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"time"

	"github.com/calchub/calchub/pkg/constants"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration holds all configuration for the calculator service.
type Configuration struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// ServerConfig holds HTTP server runtime parameters.
type ServerConfig struct {
	Address       string          `yaml:"address"`
	MaxBodySize   string          `yaml:"maxBodySize"`
	Cache         CacheConfig     `yaml:"cache,omitempty"`
	RateLimit     RateLimitConfig `yaml:"rateLimit,omitempty"`
	bodySizeBytes int64
}

// CacheConfig selects the response cache backend.
type CacheConfig struct {
	Backend string        `yaml:"backend,omitempty"` // memory, redis
	Address string        `yaml:"address,omitempty"` // redis host:port
	TTL     string        `yaml:"ttl,omitempty"`     // Go duration, e.g. 5m
	ttl     time.Duration
}

// RateLimitConfig bounds per-client request rates. A zero capacity
// disables limiting.
type RateLimitConfig struct {
	Capacity int           `yaml:"capacity,omitempty"` // requests per window
	Window   string        `yaml:"window,omitempty"`   // Go duration, e.g. 1m
	window   time.Duration
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path returns defaults without error.
func LoadConfiguration(configPath string) (*Configuration, error) {
	configuration := defaultConfiguration()

	if configPath == "" {
		if err := configuration.normalize(); err != nil {
			return nil, err
		}
		return configuration, nil
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	err := viper.Unmarshal(configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if err := configuration.normalize(); err != nil {
		return nil, err
	}

	return configuration, nil
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		Server: ServerConfig{
			Address:     constants.DefaultServerAddress,
			MaxBodySize: fmt.Sprintf("%d", constants.DefaultMaxBodyBytes),
			Cache: CacheConfig{
				Backend: CacheBackendMemory,
				TTL:     constants.DefaultCacheTTL,
			},
			RateLimit: RateLimitConfig{
				Capacity: constants.DefaultRateLimitCapacity,
				Window:   constants.DefaultRateLimitWindow,
			},
		},
	}
}

// Cache backends understood by the server.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

func (c *Configuration) normalize() error {
	if c.Server.Address == "" {
		c.Server.Address = constants.DefaultServerAddress
	}

	bytes, err := ParseSize(c.Server.MaxBodySize)
	if err != nil {
		return err
	}
	if bytes <= 0 {
		bytes = constants.DefaultMaxBodyBytes
	}
	c.Server.bodySizeBytes = bytes

	if c.Server.Cache.Backend == "" {
		c.Server.Cache.Backend = CacheBackendMemory
	}
	if c.Server.Cache.TTL == "" {
		c.Server.Cache.TTL = constants.DefaultCacheTTL
	}
	ttl, err := time.ParseDuration(c.Server.Cache.TTL)
	if err != nil {
		return fmt.Errorf("invalid cache ttl %q: %w", c.Server.Cache.TTL, err)
	}
	c.Server.Cache.ttl = ttl

	if c.Server.RateLimit.Window == "" {
		c.Server.RateLimit.Window = constants.DefaultRateLimitWindow
	}
	window, err := time.ParseDuration(c.Server.RateLimit.Window)
	if err != nil {
		return fmt.Errorf("invalid rate limit window %q: %w", c.Server.RateLimit.Window, err)
	}
	c.Server.RateLimit.window = window

	return nil
}

// BodySizeBytes returns the configured request body limit in bytes.
func (c *Configuration) BodySizeBytes() int64 {
	return c.Server.bodySizeBytes
}

// CacheTTL returns the parsed cache TTL.
func (c *Configuration) CacheTTL() time.Duration {
	return c.Server.Cache.ttl
}

// RateLimitWindow returns the parsed rate limit window.
func (c *Configuration) RateLimitWindow() time.Duration {
	return c.Server.RateLimit.window
}

// YAML renders the effective configuration, including applied defaults,
// for startup diagnostics.
func (c *Configuration) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode configuration: %w", err)
	}
	return string(data), nil
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings for settings that are accepted but suspect.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	switch c.Server.Cache.Backend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		warnings = append(warnings, fmt.Sprintf("unknown cache backend %q; falling back to memory", c.Server.Cache.Backend))
	}
	if c.Server.Cache.Backend == CacheBackendRedis && c.Server.Cache.Address == "" {
		warnings = append(warnings, "cache backend is redis but no address is configured")
	}
	if c.Server.RateLimit.Capacity < 0 {
		warnings = append(warnings, "rate limit capacity is negative; limiting is disabled")
	}
	if c.Server.RateLimit.Capacity > 0 && c.Server.RateLimit.window <= 0 {
		warnings = append(warnings, "rate limit window must be positive when a capacity is set")
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown log level %q; using info", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown log format %q; using json", c.Logging.Format))
	}

	return warnings
}
