package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HTTP_ADDR", "DATABASE_URL", "KAFKA_BROKERS", "KAFKA_TOPIC", "OUTBOX_INTERVAL", "OUTBOX_BATCH_SIZE", "LOG_LEVEL", "MEDIA_API_URL", "OUTBOX_EVENT_TYPES"} {
		t.Setenv(k, "")
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "media-events", cfg.KafkaTopic)
	assert.Equal(t, time.Second, cfg.OutboxInterval)
	assert.Equal(t, 100, cfg.OutboxBatchSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:8081", cfg.MediaAPIURL)
	assert.Empty(t, cfg.OutboxTypes)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092 ,")
	t.Setenv("OUTBOX_INTERVAL", "250ms")
	t.Setenv("OUTBOX_BATCH_SIZE", "10")
	t.Setenv("DATABASE_URL", "postgres://localhost/media")
	t.Setenv("OUTBOX_EVENT_TYPES", "MediaDeleted, MediaCreated")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 250*time.Millisecond, cfg.OutboxInterval)
	assert.Equal(t, 10, cfg.OutboxBatchSize)
	assert.Equal(t, "postgres://localhost/media", cfg.DatabaseURL)
	assert.Equal(t, []string{"MediaDeleted", "MediaCreated"}, cfg.OutboxTypes)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad interval", key: "OUTBOX_INTERVAL", value: "soon"},
		{name: "negative interval", key: "OUTBOX_INTERVAL", value: "-1s"},
		{name: "bad batch", key: "OUTBOX_BATCH_SIZE", value: "many"},
		{name: "zero batch", key: "OUTBOX_BATCH_SIZE", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			chdir(t, t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
