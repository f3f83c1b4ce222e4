package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trenerai/trener-intent/internal/agent"
	"github.com/trenerai/trener-intent/internal/clients"
	"github.com/trenerai/trener-intent/internal/dispatch"
	"github.com/trenerai/trener-intent/internal/models"
	"github.com/trenerai/trener-intent/internal/session"
)

type stubAnswerer struct {
	answer string
	err    error
}

func (s *stubAnswerer) Answer(_ context.Context, _ string) (string, error) {
	return s.answer, s.err
}

type stubPlanGen struct{}

func (s *stubPlanGen) GeneratePlan(_ context.Context, _ agent.PlanRequest) (string, error) {
	return "## Trening", nil
}

func newChatHandler(t *testing.T) *ChatHandler {
	t.Helper()

	records := clients.NewMemoryStore()
	pending := session.NewMemoryStore(5 * time.Minute)
	d, err := dispatch.New(pending, &stubAnswerer{answer: "odpowiedź"}, dispatch.Handlers(records, &stubPlanGen{}))
	require.NoError(t, err)
	return NewChatHandler(d)
}

func TestProcessMessage(t *testing.T) {
	ctx := context.Background()
	h := newChatHandler(t)

	resp := h.ProcessMessage(ctx, &models.ChatRequest{SessionID: "s1", Message: "pomoc"})
	require.True(t, resp.Success)
	assert.Equal(t, "s1", resp.SessionID)
	assert.Contains(t, resp.Message, "Dostępne komendy")
	assert.Nil(t, resp.ErrorCode)
}

func TestProcessMessageEmpty(t *testing.T) {
	ctx := context.Background()
	h := newChatHandler(t)

	for _, msg := range []string{"", "   ", "\n\t"} {
		resp := h.ProcessMessage(ctx, &models.ChatRequest{SessionID: "s1", Message: msg})
		assert.False(t, resp.Success)
		require.NotNil(t, resp.ErrorCode)
		assert.Equal(t, models.ErrorEmptyMessage, *resp.ErrorCode)
		assert.Equal(t, "Wiadomość nie może być pusta.", resp.Message)
	}
}

func TestProcessMessageInternalFailureCode(t *testing.T) {
	ctx := context.Background()

	records := clients.NewMemoryStore()
	pending := session.NewMemoryStore(5 * time.Minute)
	broken := &stubAnswerer{err: errors.New("qdrant unavailable")}
	d, err := dispatch.New(pending, broken, dispatch.Handlers(records, &stubPlanGen{}))
	require.NoError(t, err)
	h := NewChatHandler(d)

	resp := h.ProcessMessage(ctx, &models.ChatRequest{SessionID: "s1", Message: "jakie ćwiczenia na plecy?"})
	assert.False(t, resp.Success)
	require.NotNil(t, resp.ErrorCode)
	assert.Equal(t, models.ErrorInternal, *resp.ErrorCode)
	assert.NotContains(t, resp.Message, "qdrant", "collaborator errors must not leak")

	// Domain-level refusals carry no error code.
	resp = h.ProcessMessage(ctx, &models.ChatRequest{SessionID: "s1", Message: "pokaż dane Piotr"})
	assert.False(t, resp.Success)
	assert.Nil(t, resp.ErrorCode)
}

func TestProcessMessageConfirmationFlow(t *testing.T) {
	ctx := context.Background()
	h := newChatHandler(t)

	resp := h.ProcessMessage(ctx, &models.ChatRequest{SessionID: "s1", Message: "dodaj Jana 30 lat"})
	require.True(t, resp.Success)
	assert.True(t, resp.NeedsConfirmation)

	resp = h.ProcessMessage(ctx, &models.ChatRequest{SessionID: "s1", Message: "tak"})
	require.True(t, resp.Success)
	assert.False(t, resp.NeedsConfirmation)
	assert.Contains(t, resp.Message, "Dodano podopiecznego")
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Jana", resp.Data["name"])
}
