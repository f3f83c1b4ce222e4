package clients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateAndList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	created, err := store.Create(ctx, &Client{Name: "Jan Kowalski", Age: 30, Weight: 80, Goals: "schudnąć"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = store.Create(ctx, &Client{Name: "Anna Nowak", Age: 28})
	require.NoError(t, err)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Jan Kowalski", all[0].Name)
	assert.Equal(t, "Anna Nowak", all[1].Name)
}

func TestMemoryStoreGetByName(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Create(ctx, &Client{Name: "Jan Kowalski", Age: 30})
	require.NoError(t, err)

	// Lookup is a case-insensitive substring match, so a first name or
	// a lowercased fragment both resolve.
	for _, q := range []string{"Jan", "jan", "kowalski", "Jan Kowalski"} {
		got, err := store.GetByName(ctx, q)
		require.NoError(t, err)
		require.NotNil(t, got, "query %q", q)
		assert.Equal(t, "Jan Kowalski", got.Name)
	}

	got, err := store.GetByName(ctx, "Piotr")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreDeleteByName(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Create(ctx, &Client{Name: "Jan Kowalski"})
	require.NoError(t, err)
	_, err = store.Create(ctx, &Client{Name: "Anna Nowak"})
	require.NoError(t, err)

	deleted, err := store.DeleteByName(ctx, "jan")
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "Jan Kowalski", deleted.Name)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Anna Nowak", all[0].Name)

	missing, err := store.DeleteByName(ctx, "jan")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryStorePlans(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	plans, err := store.ListPlans(ctx)
	require.NoError(t, err)
	assert.Empty(t, plans)

	saved, err := store.SavePlan(ctx, &TrainingPlan{
		Difficulty: "medium",
		Mode:       "circuit",
		NumPeople:  5,
		Duration:   45,
		Content:    "## Rozgrzewka\n...",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	plans, err = store.ListPlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, 5, plans[0].NumPeople)
	assert.Equal(t, "circuit", plans[0].Mode)
}
