package config

import (
	"log"
	"os"
	"strconv"

	"github.com/morningbot/morning-signin-bot/internal/domain"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	StateFilePath      string
	Port               string
	TargetChannelID    string
	SignInHour         int
	SignInMinute       int
	HolidayRegion      string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./signin.db"),
		StateFilePath:      getEnv("STATE_FILE_PATH", "./bot_message_state.json"),
		Port:               getEnv("PORT", "3000"),
		TargetChannelID:    getEnv("TARGET_CHANNEL_ID", ""),
		SignInHour:         getEnvInt("SIGN_IN_HOUR", domain.DefaultSignInHour, 0, 23),
		SignInMinute:       getEnvInt("SIGN_IN_MINUTE", domain.DefaultSignInMinute, 0, 59),
		HolidayRegion:      getEnv("HOLIDAY_REGION", "no"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt parses an integer env var and clamps it into [min, max].
// Unparseable values fall back to the default.
func getEnvInt(key string, defaultValue, min, max int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, raw, defaultValue)
		return defaultValue
	}

	if value < min {
		log.Printf("Value for %s out of range (%d), clamping to %d", key, value, min)
		return min
	}
	if value > max {
		log.Printf("Value for %s out of range (%d), clamping to %d", key, value, max)
		return max
	}
	return value
}
