package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*TagStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store, err := NewTagStore(Config{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store, mr
}

func TestTagStore_RoundTrip(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	entries := map[string][]string{
		"bgg:102":  {"Economy", "Strategy"},
		"steam:10": {"Action"},
	}
	require.NoError(t, store.SaveTags(ctx, entries))

	got, err := store.GetTags(ctx, []string{"bgg:102", "steam:10"})
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestTagStore_MissingKeysOmitted(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTags(ctx, map[string][]string{
		"bgg:1": {"Dice"},
	}))

	got, err := store.GetTags(ctx, []string{"bgg:1", "bgg:2", "steam:3"})
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{"bgg:1": {"Dice"}}, got)
	assert.NotContains(t, got, "bgg:2")
}

func TestTagStore_EmptyTagListPersists(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	// The digital-store path caches empty results to suppress re-fetching.
	require.NoError(t, store.SaveTags(ctx, map[string][]string{"steam:7": {}}))

	got, err := store.GetTags(ctx, []string{"steam:7"})
	require.NoError(t, err)

	tags, ok := got["steam:7"]
	assert.True(t, ok)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestTagStore_UpsertOverwrites(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTags(ctx, map[string][]string{"bgg:1": {"Old"}}))
	require.NoError(t, store.SaveTags(ctx, map[string][]string{"bgg:1": {"New", "Tags"}}))

	got, err := store.GetTags(ctx, []string{"bgg:1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"New", "Tags"}, got["bgg:1"])
}

func TestTagStore_NoKeys(t *testing.T) {
	store, _ := setupTestStore(t)

	got, err := store.GetTags(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.NoError(t, store.SaveTags(context.Background(), nil))
}

func TestTagStore_ConnectionFailure(t *testing.T) {
	store, mr := setupTestStore(t)
	mr.Close()

	_, err := store.GetTags(context.Background(), []string{"bgg:1"})
	assert.Error(t, err)
}
