package config

import (
	"log/slog"
	"os"
	"strings"
)

// Storage drivers for session snapshots.
const (
	DriverFile  = "file"
	DriverRedis = "redis"
)

type Config struct {
	Environment   string
	LogLevel      slog.Level
	LogFile       string
	DataDir       string
	StorageDriver string
	RedisURL      string
	Pack          string // pack filename under DataDir/packs; empty uses the built-in pack
	SnapshotFile  string // snapshot JSON to import at startup; empty starts fresh
}

func Load() *Config {
	return &Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogFile:       getEnv("LOG_FILE", "social-steps.log"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", DriverFile)),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		Pack:          getEnv("PACK", ""),
		SnapshotFile:  getEnv("SNAPSHOT_FILE", ""),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
