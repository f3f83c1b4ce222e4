package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/vectorstores"
)

type searchCall struct {
	query string
	limit int
	opts  vectorstores.Options
}

type fakeStore struct {
	docs  []schema.Document
	err   error
	calls []searchCall
}

func (f *fakeStore) AddDocuments(_ context.Context, docs []schema.Document, _ ...vectorstores.Option) ([]string, error) {
	return nil, nil
}

func (f *fakeStore) SimilaritySearch(_ context.Context, query string, numDocuments int, options ...vectorstores.Option) ([]schema.Document, error) {
	opts := vectorstores.Options{}
	for _, opt := range options {
		opt(&opts)
	}
	f.calls = append(f.calls, searchCall{query: query, limit: numDocuments, opts: opts})
	if f.err != nil {
		return nil, f.err
	}
	return f.docs, nil
}

type fakeProvider struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeProvider) Generate(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

func TestRAGAnswer(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{docs: []schema.Document{{PageContent: "Wiosłowanie sztangą"}}}
	provider := &fakeProvider{reply: "Polecam wiosłowanie."}
	rag := &RAG{store: store, provider: provider, topK: 5}

	answer, err := rag.Answer(ctx, "jakie ćwiczenia na plecy?")
	require.NoError(t, err)
	assert.Equal(t, "Polecam wiosłowanie.", answer)

	require.Len(t, store.calls, 1)
	assert.Equal(t, "jakie ćwiczenia na plecy?", store.calls[0].query)
	assert.Equal(t, 5, store.calls[0].limit)
	assert.Contains(t, provider.lastPrompt, "Wiosłowanie sztangą")
	assert.Contains(t, provider.lastPrompt, "jakie ćwiczenia na plecy?")
}

func TestRAGAnswerSearchFailure(t *testing.T) {
	ctx := context.Background()
	rag := &RAG{store: &fakeStore{err: errors.New("connection refused")}, provider: &fakeProvider{}, topK: 5}

	_, err := rag.Answer(ctx, "pytanie")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "similarity search failed")
}

func TestRAGGeneratePlanQueriesEachCategory(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{docs: []schema.Document{{PageContent: "Przysiad"}}}
	provider := &fakeProvider{reply: "## Plan"}
	rag := &RAG{store: store, provider: provider, topK: 5}

	plan, err := rag.GeneratePlan(ctx, PlanRequest{
		Difficulty: "hard",
		Mode:       "circuit",
		NumPeople:  4,
		Duration:   45,
	})
	require.NoError(t, err)
	assert.Equal(t, "## Plan", plan)

	// warmup, main, cooldown in that order.
	require.Len(t, store.calls, 3)
	assert.Equal(t, 5, store.calls[0].limit)
	assert.Equal(t, 10, store.calls[1].limit, "main pool never shrinks below 10")
	assert.Equal(t, 5, store.calls[2].limit)

	// Only the main query carries the difficulty filter.
	mainFilter := store.calls[1].opts.Filters.(map[string]any)
	must := mainFilter["must"].([]map[string]any)
	require.Len(t, must, 2)
	assert.Equal(t, "metadata.type", must[0]["key"])
	assert.Equal(t, "metadata.level", must[1]["key"])

	warmupFilter := store.calls[0].opts.Filters.(map[string]any)
	assert.Len(t, warmupFilter["must"].([]map[string]any), 1)
}

func TestRAGGeneratePlanScalesMainPoolWithHeadCount(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	rag := &RAG{store: store, provider: &fakeProvider{reply: "## Plan"}, topK: 5}

	_, err := rag.GeneratePlan(ctx, PlanRequest{Mode: "circuit", NumPeople: 15, Duration: 45})
	require.NoError(t, err)
	require.Len(t, store.calls, 3)
	assert.Equal(t, 15, store.calls[1].limit)

	// Common mode keeps the fixed pool regardless of head count.
	store.calls = nil
	_, err = rag.GeneratePlan(ctx, PlanRequest{Mode: "common", NumPeople: 15, Duration: 45})
	require.NoError(t, err)
	assert.Equal(t, 10, store.calls[1].limit)
}
