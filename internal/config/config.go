// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds configuration knobs for the HTTP server and the command
// queue. Warehouse geometry (sector count and capacity) is fixed and not
// configurable.
type Config struct {
	HTTPAddr           string
	LogLevel           string
	ShutdownTimeout    time.Duration
	QueueBuffer        int
	QueueHighWatermark int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from a .env file (when present) and the
// environment, with defaults.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		HTTPAddr:           getenv("HTTP_ADDR", ":8080"),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		ShutdownTimeout:    durenvs("SHUTDOWN_TIMEOUT", 15),
		QueueBuffer:        atoienv("QUEUE_BUFFER", 128),
		QueueHighWatermark: atoienv("QUEUE_HIGH_WATERMARK", 5000),
	}
}
