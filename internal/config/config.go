package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. DIRECTORY_SERVER_PORT.
const EnvPrefix = "directory"

type Config struct {
	Server    ServerConfig    `mapstructure:"server" envconfig:"server"`
	Log       LogConfig       `mapstructure:"log" envconfig:"log"`
	CORS      CORSConfig      `mapstructure:"cors" envconfig:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" envconfig:"rate_limit"`
	Cache     CacheConfig     `mapstructure:"cache" envconfig:"cache"`
	Redis     RedisConfig     `mapstructure:"redis" envconfig:"redis"`
	SMTP      SMTPConfig      `mapstructure:"smtp" envconfig:"smtp"`
	Events    EventsConfig    `mapstructure:"events" envconfig:"events"`
	Seed      SeedConfig      `mapstructure:"seed" envconfig:"seed"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" envconfig:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" envconfig:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" envconfig:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" envconfig:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes" envconfig:"max_body_bytes"`
	Mode            string        `mapstructure:"mode" envconfig:"mode"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" envconfig:"level"`
	Format string `mapstructure:"format" envconfig:"format"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" envconfig:"allowed_origins"`
}

type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled" envconfig:"enabled"`
	RPS     float64       `mapstructure:"rps" envconfig:"rps"`
	Burst   int           `mapstructure:"burst" envconfig:"burst"`
	TTL     time.Duration `mapstructure:"ttl" envconfig:"ttl"`
}

type CacheConfig struct {
	MaxAge time.Duration `mapstructure:"max_age" envconfig:"max_age"`
}

type RedisConfig struct {
	URL     string `mapstructure:"url" envconfig:"url"`
	Channel string `mapstructure:"channel" envconfig:"channel"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host" envconfig:"host"`
	Port     int    `mapstructure:"port" envconfig:"port"`
	Username string `mapstructure:"username" envconfig:"username"`
	Password string `mapstructure:"password" envconfig:"password"`
	From     string `mapstructure:"from" envconfig:"from"`
	To       string `mapstructure:"to" envconfig:"to"`
}

type EventsConfig struct {
	BufferSize    int           `mapstructure:"buffer_size" envconfig:"buffer_size"`
	RetryAttempts int           `mapstructure:"retry_attempts" envconfig:"retry_attempts"`
	RetryDelay    time.Duration `mapstructure:"retry_delay" envconfig:"retry_delay"`
}

type SeedConfig struct {
	Enabled bool `mapstructure:"enabled" envconfig:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.mode", "release")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.rps", 20)
	v.SetDefault("rate_limit.burst", 40)
	v.SetDefault("rate_limit.ttl", 10*time.Minute)

	v.SetDefault("cache.max_age", 60*time.Second)

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.channel", "directory.events")

	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "noreply@mindcare.local")
	v.SetDefault("smtp.to", "support@mindcare.local")

	v.SetDefault("events.buffer_size", 256)
	v.SetDefault("events.retry_attempts", 3)
	v.SetDefault("events.retry_delay", 500*time.Millisecond)

	v.SetDefault("seed.enabled", true)
}

// Load reads config.yaml from the given paths (or the defaults when none are
// given), falls back to built-in defaults when no file exists and applies
// DIRECTORY_* environment overrides last.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config", "/app/config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server mode: %q", c.Server.Mode)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %q", c.Log.Format)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate limit rps and burst must be positive when enabled")
	}
	if c.Events.BufferSize <= 0 || c.Events.RetryAttempts <= 0 {
		return fmt.Errorf("events buffer size and retry attempts must be positive")
	}
	if c.SMTP.Host != "" && (c.SMTP.From == "" || c.SMTP.To == "") {
		return fmt.Errorf("smtp from and to are required when smtp host is set")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
