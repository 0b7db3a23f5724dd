package proto

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showpass/showpass/internal/logger"
)

func newTestItemStore(t *testing.T) *ItemStore {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "items.db")
	store, err := NewItemStore(context.Background(), dsn, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestItemStore_AddAndGet(t *testing.T) {
	store := newTestItemStore(t)
	ctx := context.Background()

	itemID, err := store.AddItem(ctx, Item{Name: "widget", Description: "a test widget"})
	require.NoError(t, err)
	require.Positive(t, itemID)

	item, err := store.GetItem(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, itemID, item.ID)
	assert.Equal(t, "widget", item.Name)
	assert.Equal(t, "a test widget", item.Description)
}

func TestItemStore_GetMissing(t *testing.T) {
	store := newTestItemStore(t)

	_, err := store.GetItem(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrItemNotFound)
}
