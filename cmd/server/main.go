package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/trenerai/trener-intent/internal/agent"
	"github.com/trenerai/trener-intent/internal/clients"
	"github.com/trenerai/trener-intent/internal/config"
	"github.com/trenerai/trener-intent/internal/dispatch"
	"github.com/trenerai/trener-intent/internal/handlers"
	"github.com/trenerai/trener-intent/internal/llm"
	"github.com/trenerai/trener-intent/internal/session"
	"github.com/trenerai/trener-intent/internal/transport"
)

func main() {
	// Load .env file if it exists (for development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("Starting Trener Intent Service...")

	cfg := config.Load()
	log.Printf("Service: %s", cfg.ServiceName)
	log.Printf("NATS URL: %s", cfg.NatsURL)
	log.Printf("Anthropic Model: %s", cfg.AnthropicModel)

	if cfg.AnthropicAPIKey == "" {
		log.Fatal("ANTHROPIC_API_KEY environment variable is required")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is required (embeddings)")
	}

	// Pending action store: Redis when configured, in-memory otherwise.
	var pending session.Store
	if cfg.RedisURL != "" {
		redisStore, err := session.NewRedisStore(cfg.RedisURL, cfg.PendingTTL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		pending = redisStore
		log.Println("Pending action store: Redis")
	} else {
		pending = session.NewMemoryStore(cfg.PendingTTL)
		log.Println("Pending action store: in-memory")
	}

	// Record store: SQLite when configured, in-memory otherwise.
	var records clients.Store
	if cfg.SQLitePath != "" {
		sqliteStore, err := clients.NewSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open SQLite store: %v", err)
		}
		defer sqliteStore.Close()
		records = sqliteStore
		log.Printf("Record store: SQLite (%s)", cfg.SQLitePath)
	} else {
		records = clients.NewMemoryStore()
		log.Println("Record store: in-memory")
	}

	// LLM provider and RAG collaborators.
	provider, err := llm.NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.HandlerTimeout)
	if err != nil {
		log.Fatalf("Failed to initialize Anthropic provider: %v", err)
	}
	log.Println("Anthropic provider initialized")

	rag, err := agent.NewRAG(cfg.QdrantURL, cfg.QdrantCollection, cfg.OpenAIAPIKey, cfg.EmbeddingModel, provider)
	if err != nil {
		log.Fatalf("Failed to initialize RAG agent: %v", err)
	}
	log.Printf("RAG agent initialized (Qdrant: %s, collection: %s)", cfg.QdrantURL, cfg.QdrantCollection)

	// Dispatcher; a missing handler for a known intent fails here.
	dispatcher, err := dispatch.New(pending, rag, dispatch.Handlers(records, rag))
	if err != nil {
		log.Fatalf("Failed to build dispatcher: %v", err)
	}

	chatHandler := handlers.NewChatHandler(dispatcher)
	log.Println("Chat handler initialized")

	// NATS transport
	natsTransport, err := transport.NewNATSTransport(cfg, chatHandler)
	if err != nil {
		log.Fatalf("Failed to initialize NATS transport: %v", err)
	}
	defer natsTransport.Close()

	if err := natsTransport.Start(); err != nil {
		log.Fatalf("Failed to start NATS transport: %v", err)
	}

	// HTTP transport
	var httpTransport *transport.HTTPTransport
	if cfg.HTTPAddr != "" {
		httpTransport = transport.NewHTTPTransport(cfg.HTTPAddr, chatHandler)
		go func() {
			if err := httpTransport.Start(); err != nil {
				log.Fatalf("HTTP transport failed: %v", err)
			}
		}()
	}

	log.Println("Trener Intent Service is running...")
	log.Printf("Listening on subject: %s", cfg.NatsRequestSubject)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Printf("Received signal: %v", sig)
	log.Println("Shutting down gracefully...")

	if httpTransport != nil {
		if err := httpTransport.Close(); err != nil {
			log.Printf("Error closing HTTP transport: %v", err)
		}
	}
	if err := natsTransport.Close(); err != nil {
		log.Printf("Error during cleanup: %v", err)
	}

	log.Println("Trener Intent Service stopped")
}
