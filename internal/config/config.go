// Package config centralises configuration parsing for the signup service.
package config

import (
	"os"
	"strings"
	"time"
)

// Config captures runtime configuration values for the signup service.
type Config struct {
	HTTPAddress     string
	MetricsAddress  string        // Listen address for the consumer's metrics endpoint.
	KafkaBrokers    []string      // Empty list disables roster event publishing.
	RosterTopic     string
	ConsumerGroupID string
	PublishTimeout  time.Duration // Upper bound on a single roster event publish.
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		MetricsAddress:  getEnv("METRICS_ADDRESS", ":9090"),
		KafkaBrokers:    splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		RosterTopic:     getEnv("ROSTER_TOPIC", "roster_events"),
		ConsumerGroupID: getEnv("CONSUMER_GROUP_ID", "signup-roster-audit"),
		PublishTimeout:  getDurationEnv("PUBLISH_TIMEOUT", 5*time.Second),
	}
}

// EventsEnabled reports whether roster event publishing is configured.
func (c Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
