package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// App
	Host string
	Port string
	Env  string

	// Discord
	DiscordToken string

	// Seconds to wait for the gateway READY event at startup
	ReadyTimeoutSeconds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Host:                getEnv("HOST", "127.0.0.1"),
		Port:                getEnv("PORT", "8000"),
		Env:                 getEnv("ENV", "development"),
		DiscordToken:        getEnv("DISCORD_TOKEN", ""),
		ReadyTimeoutSeconds: getEnvInt("READY_TIMEOUT_SECONDS", 30),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return fmt.Errorf("DISCORD_TOKEN environment variable not set")
	}
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.ReadyTimeoutSeconds <= 0 {
		return fmt.Errorf("READY_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// Addr returns the host:port pair the HTTP server listens on
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
