package config

import (
	"os"
	"time"
)

type Config struct {
	// NATS configuration
	NatsURL            string
	NatsRequestSubject string
	NatsTimeout        time.Duration

	// HTTP configuration (empty address disables the HTTP transport)
	HTTPAddr string

	// Pending action store. Empty RedisURL means in-memory.
	RedisURL   string
	PendingTTL time.Duration

	// Record store. Empty path means in-memory.
	SQLitePath string

	// Qdrant exercise corpus
	QdrantURL        string
	QdrantCollection string

	// LLM configuration
	AnthropicAPIKey string
	AnthropicModel  string
	OpenAIAPIKey    string
	EmbeddingModel  string

	// Service configuration
	ServiceName    string
	HandlerTimeout time.Duration
}

func Load() *Config {
	return &Config{
		// NATS settings
		NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		NatsRequestSubject: getEnv("NATS_REQUEST_SUBJECT", "chat.message"),
		NatsTimeout:        getDurationEnv("NATS_TIMEOUT", 30*time.Second),

		// HTTP settings
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		// Session settings
		RedisURL:   getEnv("REDIS_URL", ""),
		PendingTTL: getDurationEnv("PENDING_TTL", 5*time.Minute),

		// Storage settings
		SQLitePath: getEnv("SQLITE_PATH", ""),

		// Qdrant settings
		QdrantURL:        getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantCollection: getEnv("QDRANT_COLLECTION", "exercises"),

		// LLM settings
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022"),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		EmbeddingModel:  getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),

		// Service settings
		ServiceName:    getEnv("SERVICE_NAME", "trener-intent"),
		HandlerTimeout: getDurationEnv("HANDLER_TIMEOUT", 60*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
