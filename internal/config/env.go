package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment keys read by the trajplot command.
const (
	EnvConfig = "TRAJPLOT_CONFIG"
	EnvOut    = "TRAJPLOT_OUT"
)

// LoadEnv loads the given dotenv files, ".env" when none is given.
// Missing files are ignored and variables already set are kept.
func LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		_ = godotenv.Load(file)
	}
}

// Getenv returns the value of k, or def when it is unset or empty.
func Getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}
