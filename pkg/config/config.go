package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Port            int           `yaml:"port" default:"3001"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		CORS            bool          `yaml:"cors" default:"true"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Brapi struct {
		BaseURL     string        `yaml:"base_url" default:"https://brapi.dev/api" validate:"required,url"`
		Token       string        `yaml:"token" validate:"required"`
		Timeout     time.Duration `yaml:"timeout" default:"8s"`
		ListLimit   int           `yaml:"list_limit" default:"1000" validate:"gt=0"`
		SearchLimit int           `yaml:"search_limit" default:"20" validate:"gt=0"`
	} `yaml:"brapi"`
	Cache struct {
		// RefreshInterval of 0 keeps the one-shot population behavior:
		// the ticker list is downloaded once at startup and never refreshed.
		RefreshInterval time.Duration `yaml:"refresh_interval" default:"0"`
		Snapshot        struct {
			Enabled bool          `yaml:"enabled" default:"false"`
			Key     string        `yaml:"key" default:"capswap:tickers"`
			TTL     time.Duration `yaml:"ttl" default:"24h"`
		} `yaml:"snapshot"`
	} `yaml:"cache"`
	Redis struct {
		Addr     string `yaml:"addr" default:"localhost:6379"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db" default:"0"`
	} `yaml:"redis"`
}

// Load reads and parses a YAML configuration file, applying struct defaults
// before unmarshaling so the file only needs to name what it overrides.
func Load(path string) (*Config, error) {
	c := &Config{}
	if err := defaults.Set(c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return c, nil
}

// LoadWithEnv loads config from YAML, overrides with environment variables,
// and validates the result.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("BRAPI_API_KEY"); v != "" {
		c.Brapi.Token = v
	}
	if v := os.Getenv("BRAPI_BASE_URL"); v != "" {
		c.Brapi.BaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.Cache.Snapshot.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when cache.snapshot.enabled is true")
	}
	return nil
}
