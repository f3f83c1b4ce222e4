package agent

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/vectorstores"
	"github.com/tmc/langchaingo/vectorstores/qdrant"

	"github.com/trenerai/trener-intent/internal/llm"
	"github.com/trenerai/trener-intent/internal/prompts"
)

// RAG implements Answerer and PlanGenerator over a Qdrant collection
// of exercises plus an LLM provider. The collection payload carries
// metadata.type (warmup/main/cooldown) and metadata.level.
type RAG struct {
	store    vectorstores.VectorStore
	provider llm.Provider
	topK     int
}

// NewRAG connects to Qdrant with an OpenAI embedder for query vectors.
func NewRAG(qdrantURL, collection, openAIKey, embeddingModel string, provider llm.Provider) (*RAG, error) {
	embClient, err := openai.New(
		openai.WithToken(openAIKey),
		openai.WithEmbeddingModel(embeddingModel),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(embClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	parsed, err := url.Parse(qdrantURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Qdrant URL: %w", err)
	}

	store, err := qdrant.New(
		qdrant.WithURL(*parsed),
		qdrant.WithCollectionName(collection),
		qdrant.WithEmbedder(embedder),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Qdrant: %w", err)
	}

	return &RAG{store: store, provider: provider, topK: 5}, nil
}

// Answer runs a similarity search over the corpus and asks the LLM to
// answer from the retrieved context.
func (r *RAG) Answer(ctx context.Context, question string) (string, error) {
	docs, err := r.store.SimilaritySearch(ctx, question, r.topK)
	if err != nil {
		return "", fmt.Errorf("similarity search failed: %w", err)
	}

	prompt := prompts.BuildAnswerPrompt(question, docs)
	return r.provider.Generate(ctx, prompt)
}

// GeneratePlan retrieves candidates per category and prompts the LLM
// for a structured plan. Circuit mode needs one main exercise per
// person, so the candidate pool scales with the head count.
func (r *RAG) GeneratePlan(ctx context.Context, req PlanRequest) (string, error) {
	mainLimit := 10
	if req.Mode == "circuit" && req.NumPeople > mainLimit {
		mainLimit = req.NumPeople
	}

	warmup, err := r.searchCategory(ctx, "warmup", 5, "")
	if err != nil {
		return "", err
	}
	main, err := r.searchCategory(ctx, "main", mainLimit, req.Difficulty)
	if err != nil {
		return "", err
	}
	cooldown, err := r.searchCategory(ctx, "cooldown", 5, "")
	if err != nil {
		return "", err
	}

	prompt := prompts.BuildPlanPrompt(req.Difficulty, req.Mode, req.NumPeople, req.Duration, warmup, main, cooldown)
	return r.provider.Generate(ctx, prompt)
}

// searchCategory queries one exercise category, optionally filtered by
// difficulty level, using Qdrant payload filters.
func (r *RAG) searchCategory(ctx context.Context, category string, limit int, level string) ([]schema.Document, error) {
	must := []map[string]any{
		{"key": "metadata.type", "match": map[string]any{"value": category}},
	}
	if level != "" {
		must = append(must, map[string]any{
			"key": "metadata.level", "match": map[string]any{"value": level},
		})
	}

	docs, err := r.store.SimilaritySearch(ctx, "best exercise", limit,
		vectorstores.WithFilters(map[string]any{"must": must}))
	if err != nil {
		return nil, fmt.Errorf("search %s exercises: %w", category, err)
	}
	return docs, nil
}
