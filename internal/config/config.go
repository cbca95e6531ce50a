package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	Locale           string
	DatabaseURL      string
	MigrationsPath   string
	DiscordToken     string
	DiscordChannelID string
	LogDev           bool
}

// HasDiscord reports whether comments should also be mirrored to Discord.
func (c *Config) HasDiscord() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}

// Load reads configuration from the environment (and an optional .env file)
// and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		Locale:           os.Getenv("LOCALE"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		MigrationsPath:   os.Getenv("MIGRATIONS_PATH"),
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
	}

	if v, ok := os.LookupEnv("LOG_DEV"); ok && v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("config: LOG_DEV invalid (%q): %w", v, err)
		}
		cfg.LogDev = dev
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies defaults and checks the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = "en"
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("config: LOCALE invalid (%q): %w", c.Locale, err)
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/comments?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalid (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalid (%q): missing scheme or host", c.DatabaseURL)
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}

	if (c.DiscordToken == "") != (c.DiscordChannelID == "") {
		return fmt.Errorf("config: DISCORD_TOKEN and DISCORD_CHANNEL_ID must be set together")
	}
	for _, r := range c.DiscordChannelID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: DISCORD_CHANNEL_ID must be a Discord channel ID (digits only)")
		}
	}

	return nil
}
