package mongo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/config"
	"backoffice/internal/domain/inventory"
	"backoffice/pkg/logger"
)

func newTestRepository(t *testing.T) *InventoryRepository {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	ctx := context.Background()
	client, err := Connect(ctx, config.MongoConfig{URI: uri}, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database(fmt.Sprintf("backoffice_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() { _ = db.Drop(context.Background()) })

	repo, err := NewInventoryRepository(ctx, db)
	require.NoError(t, err)
	return repo
}

func TestInventoryRepository_Lifecycle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	a := &inventory.Item{SKU: "A", Name: "Scarf", Category: "Fabric", Stock: 3, Price: decimal.RequireFromString("19.99")}
	b := &inventory.Item{SKU: "B", Name: "Thread", Category: "Supplies", Stock: 40, Price: decimal.NewFromInt(2)}
	require.NoError(t, repo.Insert(ctx, a))
	require.NoError(t, repo.Insert(ctx, b))
	assert.ErrorIs(t, repo.Insert(ctx, a), inventory.ErrDuplicateSKU)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "B", list[0].SKU)
	assert.True(t, list[1].Price.Equal(a.Price))

	assert.ErrorIs(t, repo.AdjustStock(ctx, "A", -4), inventory.ErrInsufficientStock)
	assert.ErrorIs(t, repo.AdjustStock(ctx, "Z", -1), inventory.ErrNotFound)
	require.NoError(t, repo.AdjustStock(ctx, "A", -3))

	got, err := repo.FindBySKU(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)

	require.NoError(t, repo.Delete(ctx, "A"))
	require.NoError(t, repo.Delete(ctx, "A"))
	got, err = repo.FindBySKU(ctx, "A")
	require.NoError(t, err)
	assert.Nil(t, got)
}
