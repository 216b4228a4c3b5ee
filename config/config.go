package config

import (
	"os"
	"strconv"
)

// Config holds everything the server reads from the environment. It is built
// once at startup and handed to the pieces that need it, so tests can
// construct their own instead of reaching for os.Getenv.
type Config struct {
	Port        string
	DatabaseDSN string

	SMTPHost      string
	SMTPPort      int
	EmailUser     string
	EmailPass     string
	EmailReceiver string
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "5000"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		SMTPHost:  getEnv("EMAIL_HOST", "smtp.gmail.com"),
		SMTPPort:  getEnvInt("EMAIL_PORT", 587),
		EmailUser: os.Getenv("EMAIL_USER"),
		EmailPass: os.Getenv("EMAIL_PASS"),
	}

	// Contact relay and test mails go to the account itself unless overridden.
	cfg.EmailReceiver = getEnv("EMAIL_RECEIVER", cfg.EmailUser)

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
