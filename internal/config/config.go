package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr       string
	OutputDir        string // where stored tone files land
	HistoryDBPath    string
	MaxRequestDigits int // per-request dial string cap for the daemon
}

// Load reads configuration from the environment, after loading a .env
// file if one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:       getEnv("LISTEN_ADDR", ":8080"),
		OutputDir:        getEnv("OUTPUT_DIR", "./tones"),
		HistoryDBPath:    getEnv("HISTORY_DB_PATH", "./tones/history.db"),
		MaxRequestDigits: getEnvInt("MAX_REQUEST_DIGITS", 64),
	}
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
