package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds process configuration, sourced from an optional .env file
// and the environment.
type Config struct {
	ServiceName string
	Env         string
	// MetricsAddr is the listen address for the Prometheus /metrics
	// endpoint. Empty disables the listener.
	MetricsAddr string
}

// Load reads configuration, treating a missing .env file as normal.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServiceName: getEnv("SERVICE_NAME", "storefront"),
		Env:         getEnv("ENV", "dev"),
		MetricsAddr: getEnv("METRICS_ADDR", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
