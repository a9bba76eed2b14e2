package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	AppName       = "telegram-compliment-bot"
	EnvFileName   = "config.env"
	DefaultDBPath = "compliments.db"
)

// Config is the runtime configuration read from the environment.
type Config struct {
	BotToken string
	DBPath   string
	LogLevel zerolog.Level
}

// requiredEnvVars lists all environment variables that must be set for the bot to run.
var requiredEnvVars = []string{"BOT_TOKEN"}

// Dir returns the application's config directory path.
// Creates the directory if it doesn't exist.
func Dir() (string, error) {
	configBase, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	configDir := filepath.Join(configBase, AppName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// FilePath returns the full path to the env file.
func FilePath() (string, error) {
	configDir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, EnvFileName), nil
}

// LoadEnvFile loads environment variables from the config file in the user's
// config directory. Errors are ignored since the file may not exist.
// Variables already set in the environment win.
func LoadEnvFile() {
	configPath, err := FilePath()
	if err != nil {
		return
	}
	_ = godotenv.Load(configPath)
}

// CheckRequired returns the names of required variables that are unset.
func CheckRequired() []string {
	var missing []string
	for _, v := range requiredEnvVars {
		if os.Getenv(v) == "" {
			missing = append(missing, v)
		}
	}
	return missing
}

// FromEnv builds a Config from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		DBPath:   os.Getenv("COMPLIMENTS_DB_PATH"),
		LogLevel: zerolog.InfoLevel,
	}
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set")
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath
	}
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		level, err := zerolog.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}

// DBPathFromEnv returns COMPLIMENTS_DB_PATH or the default. Tools that
// don't talk to Telegram use it instead of FromEnv.
func DBPathFromEnv() string {
	if p := os.Getenv("COMPLIMENTS_DB_PATH"); p != "" {
		return p
	}
	return DefaultDBPath
}
