// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jrc03c/matching-game-demo/internal/cache"
	"github.com/jrc03c/matching-game-demo/internal/deck"
	"github.com/jrc03c/matching-game-demo/internal/game"
	"github.com/sirupsen/logrus"
)

// Config is the server configuration, read from the environment.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// RedisAddr enables the action log when set.
	RedisAddr       string `env:"REDIS_ADDR"`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	ActionQueueName string `env:"ACTION_QUEUE_NAME" envDefault:"concentration_actions"`

	Symbols       []string      `env:"SYMBOLS" envSeparator:","`
	MismatchDelay time.Duration `env:"MISMATCH_DELAY" envDefault:"1s"`
	SummaryDelay  time.Duration `env:"SUMMARY_DELAY" envDefault:"400ms"`
	TickInterval  time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks delays, the log level and the alphabet.
func (c *Config) Validate() error {
	if c.MismatchDelay <= 0 || c.SummaryDelay <= 0 || c.TickInterval <= 0 {
		return errors.New("config: delays and tick interval must be positive")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	if err := deck.ValidateAlphabet(c.Alphabet()); err != nil {
		return fmt.Errorf("config: SYMBOLS: %w", err)
	}
	return nil
}

// Alphabet returns the configured symbols, or the default alphabet when none are set.
func (c *Config) Alphabet() []deck.Symbol {
	var out []deck.Symbol
	for _, s := range c.Symbols {
		out = append(out, deck.ParseAlphabet(s)...)
	}
	if len(out) == 0 {
		return deck.DefaultAlphabet
	}
	return out
}

// GameSettings converts the config into settings for new games.
func (c *Config) GameSettings(actions *cache.ActionLog) game.Settings {
	s := game.DefaultSettings()
	s.Alphabet = c.Alphabet()
	s.MismatchDelay = c.MismatchDelay
	s.SummaryDelay = c.SummaryDelay
	s.TickInterval = c.TickInterval
	if actions != nil {
		s.Actions = actions
	}
	return s
}

// ActionLogOptions returns the Redis options, and false when the action log is disabled.
func (c *Config) ActionLogOptions() (cache.Options, bool) {
	if c.RedisAddr == "" {
		return cache.Options{}, false
	}
	return cache.Options{Addr: c.RedisAddr, DB: c.RedisDB, Queue: c.ActionQueueName}, true
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
