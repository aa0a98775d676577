// Package config loads bot settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the bot settings
type Config struct {
	// DiscordToken authenticates the bot
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`

	// ApplicationID is the Discord application, defaults to the bot user
	ApplicationID string `env:"APPLICATION_ID"`

	// GuildID registers commands for one server only, for development
	GuildID string `env:"GUILD_ID"`

	// LogLevel is a zerolog level name
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogPretty switches to human-readable console logs
	LogPretty bool `env:"LOG_PRETTY" envDefault:"false"`

	// MaxChannels caps how many channels may hold a scoreboard at once, zero is unlimited
	MaxChannels int `env:"MAX_CHANNELS" envDefault:"0"`
}

// Load reads an optional .env file and then parses the environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.MaxChannels < 0 {
		return nil, errors.New("MAX_CHANNELS cannot be negative")
	}

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Level returns the configured zerolog level
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
