package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds settings shared by the media binaries. Values come from the
// environment; a .env file in the working directory is loaded first and never
// overrides variables that are already set.
type Config struct {
	HTTPAddr        string
	DatabaseURL     string
	KafkaBrokers    []string
	KafkaTopic      string
	OutboxInterval  time.Duration
	OutboxBatchSize int
	OutboxTypes     []string
	LogLevel        string
	MediaAPIURL     string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8081"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "media-events"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		MediaAPIURL: getEnv("MEDIA_API_URL", "http://localhost:8081"),
	}

	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}

	for _, t := range strings.Split(getEnv("OUTBOX_EVENT_TYPES", ""), ",") {
		if t = strings.TrimSpace(t); t != "" {
			cfg.OutboxTypes = append(cfg.OutboxTypes, t)
		}
	}

	interval, err := time.ParseDuration(getEnv("OUTBOX_INTERVAL", "1s"))
	if err != nil {
		return nil, fmt.Errorf("OUTBOX_INTERVAL: %w", err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("OUTBOX_INTERVAL must be positive, got %v", interval)
	}
	cfg.OutboxInterval = interval

	batch, err := strconv.Atoi(getEnv("OUTBOX_BATCH_SIZE", "100"))
	if err != nil {
		return nil, fmt.Errorf("OUTBOX_BATCH_SIZE: %w", err)
	}
	if batch <= 0 {
		return nil, fmt.Errorf("OUTBOX_BATCH_SIZE must be positive, got %d", batch)
	}
	cfg.OutboxBatchSize = batch

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
