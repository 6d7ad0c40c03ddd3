package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/spf13/viper"
)

// Config is read from config.yaml (in . or ./config) and the environment, with
// the environment winning.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// DatabaseURL wins over the DB_* parts when set
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	DatabaseLogLevel string `mapstructure:"DB_LOG_LEVEL"`

	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// An empty channel disables LISTEN/NOTIFY
	NotifyChannel      string `mapstructure:"NOTIFY_CHANNEL"`
	NotifyReconnectSec int    `mapstructure:"NOTIFY_RECONNECT_SEC"`

	RecentRatingsLimit int    `mapstructure:"RECENT_RATINGS_LIMIT"`
	ExportDir          string `mapstructure:"EXPORT_DIR"`
}

// Every key needs a default, even an empty one, so that viper's AutomaticEnv
// picks it up during Unmarshal.
var defaults = map[string]any{
	"ENVIRONMENT":          "development",
	"PORT":                 "7010",
	"LOG_LEVEL":            "info",
	"DATABASE_URL":         "",
	"DB_HOST":              "localhost",
	"DB_PORT":              "5432",
	"DB_USER":              "postgres",
	"DB_PASSWORD":          "postgres",
	"DB_NAME":              "performance_tracker",
	"DB_SSL_MODE":          "disable",
	"DB_LOG_LEVEL":         "error",
	"ALLOWED_ORIGINS":      []string{"http://localhost:3000", "http://localhost:5173"},
	"NOTIFY_CHANNEL":       "perftrack_changes",
	"NOTIFY_RECONNECT_SEC": 5,
	"RECENT_RATINGS_LIMIT": 5,
	"EXPORT_DIR":           ".",
}

// channelPattern matches lowercase SQL identifiers. The channel ends up in LISTEN
// and trigger DDL, where it cannot be passed as a parameter.
var channelPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	// NOTIFY_CHANNEL= must be able to switch notifications off
	v.AllowEmptyEnv(true)

	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = buildDatabaseURL(cfg)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// buildDatabaseURL assembles a postgres URL from the DB_* parts, escaping the credentials
func buildDatabaseURL(cfg *Config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DatabaseUser, cfg.DatabasePassword),
		Host:     cfg.DatabaseHost + ":" + cfg.DatabasePort,
		Path:     "/" + cfg.DatabaseName,
		RawQuery: url.Values{"sslmode": {cfg.DatabaseSSLMode}}.Encode(),
	}
	return u.String()
}

func validate(cfg *Config) error {
	switch {
	case cfg.DatabaseName == "" && cfg.DatabaseURL == "":
		return errors.New("DB_NAME or DATABASE_URL is required")
	case cfg.NotifyChannel != "" && !channelPattern.MatchString(cfg.NotifyChannel):
		return fmt.Errorf("NOTIFY_CHANNEL %q is not a lowercase SQL identifier", cfg.NotifyChannel)
	case cfg.NotifyReconnectSec < 0:
		return errors.New("NOTIFY_RECONNECT_SEC must not be negative")
	case cfg.RecentRatingsLimit < 0:
		return errors.New("RECENT_RATINGS_LIMIT must not be negative")
	}
	return nil
}

func (c *Config) IsDevelopment() bool { return c.Environment == "development" }

func (c *Config) IsProduction() bool { return c.Environment == "production" }

// NotificationsEnabled reports whether the server should LISTEN for database changes
func (c *Config) NotificationsEnabled() bool {
	return c.NotifyChannel != ""
}
