package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DatabaseURL string
	Port        string
	SessionTTL  time.Duration
	BcryptCost  int
}

// Load reads configuration from environment variables. godotenv has
// already populated them in main when a .env file is present.
func Load() Config {
	cfg := Config{
		DatabaseURL: getenv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=shukatsu port=5432 sslmode=disable"),
		Port:        getenv("PORT", "8080"),
		SessionTTL:  time.Duration(getint("SESSION_TTL_HOURS", 72)) * time.Hour,
		BcryptCost:  getint("BCRYPT_COST", bcrypt.DefaultCost),
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
