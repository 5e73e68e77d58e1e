// Package config provides the configuration of the simulation host.
package config

import (
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/interviewsim/encoding"
	"github.com/effective-security/x/configloader"
	"github.com/effective-security/x/values"
)

// Store backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Backends is the list of supported store backends
var Backends = []string{BackendMemory, BackendRedis}

// DefaultPrefix is the Redis key prefix when none is configured
const DefaultPrefix = "interviewsim"

// Config specifies the simulation host: the seed, the tool output mode,
// the interview setup, and the store backend
type Config struct {
	// Seed specifies the random source seed of every session engine,
	// 0 seeds from entropy.
	Seed uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
	// Output specifies the encoding of tool results: json|yaml|toml
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	// Setup specifies the interview setup of new sessions:
	// sample|random or the 1-based index of the HR contact.
	Setup string `json:"setup,omitempty" yaml:"setup,omitempty"`
	// Store specifies the session state store
	Store StoreConfig `json:"store" yaml:"store"`
}

// StoreConfig specifies the session state store
type StoreConfig struct {
	// Backend specifies the store backend: memory|redis
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty"`
	// RedisURL specifies the Redis connection, as redis://<user>:<password>@<host>:<port>/<db>
	RedisURL string `json:"redis_url,omitempty" yaml:"redis_url,omitempty"`
	// Prefix specifies the Redis key prefix
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	// TTL specifies the expiration of session keys, as a duration string
	TTL string `json:"ttl,omitempty" yaml:"ttl,omitempty"`
}

// TTLDuration returns the parsed TTL, 0 when not set
func (c *StoreConfig) TTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TTL)
	return d
}

// Mode returns the result encoding mode
func (c *Config) Mode() encoding.Mode {
	return encoding.Mode(c.Output)
}

// Default returns the configuration with defaults applied
func Default() *Config {
	cfg := new(Config)
	cfg.setDefaults()
	return cfg
}

// LoadConfig from file, an empty file name returns the defaults
func LoadConfig(file string) (*Config, error) {
	if file == "" {
		return Default(), nil
	}

	cfg := new(Config)
	err := configloader.UnmarshalAndExpand(file, cfg)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to load config %s", file)
	}
	cfg.setDefaults()
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	c.Output = strings.ToLower(values.StringsCoalesce(c.Output, string(encoding.ModeDefault)))
	c.Store.Backend = strings.ToLower(values.StringsCoalesce(c.Store.Backend, BackendMemory))
	c.Store.Prefix = values.StringsCoalesce(c.Store.Prefix, DefaultPrefix)
}

// Validate returns an error if the configuration is not supported
func (c *Config) Validate() error {
	if !slices.Contains(encoding.Modes, c.Mode()) {
		return errors.Newf("unsupported output: %q", c.Output)
	}
	if !slices.Contains(Backends, c.Store.Backend) {
		return errors.Newf("unsupported store backend: %q", c.Store.Backend)
	}
	if c.Store.Backend == BackendRedis && c.Store.RedisURL == "" {
		return errors.New("redis_url is required for redis backend")
	}
	if c.Store.TTL != "" {
		if d, err := time.ParseDuration(c.Store.TTL); err != nil || d < 0 {
			return errors.Newf("invalid store ttl: %q", c.Store.TTL)
		}
	}
	return nil
}
