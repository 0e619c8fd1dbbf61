package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Equal(t, "roster_events", cfg.RosterTopic)
	require.Equal(t, 5*time.Second, cfg.PublishTimeout)
	require.Empty(t, cfg.KafkaBrokers)
	require.False(t, cfg.EventsEnabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9999")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092 ,")
	t.Setenv("PUBLISH_TIMEOUT", "250ms")

	cfg := Load()

	require.Equal(t, ":9999", cfg.HTTPAddress)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	require.Equal(t, 250*time.Millisecond, cfg.PublishTimeout)
	require.True(t, cfg.EventsEnabled())
}

func TestLoadIgnoresInvalidDuration(t *testing.T) {
	t.Setenv("PUBLISH_TIMEOUT", "soon")

	cfg := Load()
	require.Equal(t, 5*time.Second, cfg.PublishTimeout)
}
