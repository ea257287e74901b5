// Package config loads server and client settings.
//
// Sources, lowest to highest precedence: built-in defaults, an optional
// config file named by WORDY_CONFIG (YAML, JSON or TOML), environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved configuration.
type Config struct {
	Env           string // "production" enables secure cookies
	Port          string
	LogLevel      string
	DBPath        string // empty: in-memory store
	QuestionsFile string // empty: embedded bank
	PackSize      int
	InitialHints  int
	RevertDelay   time.Duration
	ClientOrigin  string
	TokenSecret   string
	TokenTTL      time.Duration
}

func defaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "5175")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_PATH", "./data/wordy.db")
	v.SetDefault("QUESTIONS_FILE", "")
	v.SetDefault("PACK_SIZE", 5)
	v.SetDefault("INITIAL_HINTS", 3)
	v.SetDefault("REVERT_DELAY", time.Second)
	v.SetDefault("CLIENT_ORIGIN", "http://localhost:5173")
	v.SetDefault("TOKEN_SECRET", "dev_secret_change_me")
	v.SetDefault("TOKEN_TTL", 180*24*time.Hour)
}

// Load resolves the configuration.
func Load() (*Config, error) {
	v := viper.New()
	defaults(v)
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if path := v.GetString("WORDY_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	c := &Config{
		Env:           v.GetString("APP_ENV"),
		Port:          v.GetString("PORT"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		DBPath:        v.GetString("DB_PATH"),
		QuestionsFile: v.GetString("QUESTIONS_FILE"),
		PackSize:      v.GetInt("PACK_SIZE"),
		InitialHints:  v.GetInt("INITIAL_HINTS"),
		RevertDelay:   v.GetDuration("REVERT_DELAY"),
		ClientOrigin:  v.GetString("CLIENT_ORIGIN"),
		TokenSecret:   v.GetString("TOKEN_SECRET"),
		TokenTTL:      v.GetDuration("TOKEN_TTL"),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	switch {
	case c.PackSize < 1:
		return errors.New("config: PACK_SIZE must be at least 1")
	case c.InitialHints < 0:
		return errors.New("config: INITIAL_HINTS must not be negative")
	case c.RevertDelay < 0:
		return errors.New("config: REVERT_DELAY must not be negative")
	}
	return nil
}

// Production reports whether the server runs behind HTTPS in production.
func (c *Config) Production() bool { return c.Env == "production" }
