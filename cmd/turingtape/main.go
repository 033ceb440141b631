package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Diagnostics are off by default so stdout carries nothing but the console
// contract; set LOG_LEVEL (e.g. "debug") to see per-step events on stderr.
func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "disabled")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	Execute()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
