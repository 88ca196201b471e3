package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Session store backends
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Predictor PredictorConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port            int
	GinMode         string // debug, release, test
	ShutdownTimeout time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// PredictorConfig points at the remote price prediction service
type PredictorConfig struct {
	BaseURL string
	Timeout time.Duration // 0 disables the client timeout
}

// SessionConfig controls where per-browser form state lives
type SessionConfig struct {
	Store      string // memory, redis
	RedisAddr  string
	TTL        time.Duration
	CookieName string
}

// RateLimitConfig bounds submissions per client within a window
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.homeprice")

	setDefaults(v)

	// Read from environment variables, e.g. HOMEPRICE_PREDICTOR_BASEURL
	v.SetEnvPrefix("HOMEPRICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("server.shutdownTimeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("predictor.baseURL", "http://127.0.0.1:5000")
	v.SetDefault("predictor.timeout", 10*time.Second)
	v.SetDefault("session.store", SessionStoreMemory)
	v.SetDefault("session.redisAddr", "localhost:6379")
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("session.cookieName", "homeprice_session")
	v.SetDefault("ratelimit.requests", 30)
	v.SetDefault("ratelimit.window", time.Minute)
}

// Validate checks values that have no sensible fallback
func (c *Config) Validate() error {
	if c.Predictor.BaseURL == "" {
		return errors.New("predictor.baseURL must not be empty")
	}
	if c.Predictor.Timeout < 0 {
		return fmt.Errorf("predictor.timeout must not be negative, got %s", c.Predictor.Timeout)
	}
	switch strings.ToLower(c.Session.Store) {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("unknown session.store %q", c.Session.Store)
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("ratelimit requires positive requests and window, got %d per %s",
			c.RateLimit.Requests, c.RateLimit.Window)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
