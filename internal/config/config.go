package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds server-mode settings. Everything has a default; a .env
// file in the working directory is honored when present.
type Config struct {
	Addr      string
	StaticDir string
	LogLevel  string
}

// Load reads configuration from the environment, after loading any
// local .env file. A missing .env is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:      getenv("ADDR", ":8080"),
		StaticDir: os.Getenv("STATIC_DIR"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
