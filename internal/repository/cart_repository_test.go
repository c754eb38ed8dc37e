package repository

import (
	"context"
	"testing"
	"time"

	"vineyard/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_SaveAndGet(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(pool, zerolog.Nop())
	ctx := context.Background()

	missing, err := repo.Get(ctx, "guest-1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	c := &model.Cart{
		OwnerID: "guest-1",
		Lines: []model.CartLine{
			{KeyText: "lasagna", Name: "Lasagna", Price: decimal.RequireFromString("14.99"), Quantity: 2},
			{KeyText: "coke", Name: "Coke", Price: decimal.RequireFromString("2.99"), Quantity: 1},
		},
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, repo.Save(ctx, c))

	got, err := repo.Get(ctx, "guest-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, "lasagna", got.Lines[0].KeyText, "line order is preserved")
	assert.Equal(t, 2, got.Lines[0].Quantity)
	assert.True(t, got.Lines[0].Price.Equal(decimal.RequireFromString("14.99")))
	assert.True(t, c.UpdatedAt.Equal(got.UpdatedAt))

	// Upsert replaces the lines
	c.Lines = c.Lines[1:]
	require.NoError(t, repo.Save(ctx, c))

	got, err = repo.Get(ctx, "guest-1")
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, "coke", got.Lines[0].KeyText)
}

func TestCartRepository_EmptyCartRoundTrip(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(pool, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &model.Cart{OwnerID: "user-1", UpdatedAt: time.Now()}))

	got, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Lines)
}

func TestCartRepository_TransactionalMerge(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(pool, zerolog.Nop())
	ctx := context.Background()

	guest := &model.Cart{
		OwnerID:   "guest-1",
		Lines:     []model.CartLine{{KeyText: "water", Name: "Water", Price: decimal.RequireFromString("1.99"), Quantity: 3}},
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Save(ctx, guest))

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	locked, err := repo.GetForUpdate(ctx, tx, "guest-1")
	require.NoError(t, err)
	require.NotNil(t, locked)

	locked.OwnerID = "user-1"
	require.NoError(t, repo.SaveTx(ctx, tx, locked))
	require.NoError(t, repo.DeleteTx(ctx, tx, "guest-1"))
	require.NoError(t, tx.Commit(ctx))

	gone, err := repo.Get(ctx, "guest-1")
	require.NoError(t, err)
	assert.Nil(t, gone)

	moved, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, moved)
	assert.Equal(t, 3, moved.Lines[0].Quantity)
}

func TestCartRepository_RollbackKeepsCart(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(pool, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &model.Cart{OwnerID: "guest-2", UpdatedAt: time.Now()}))

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.DeleteTx(ctx, tx, "guest-2"))
	require.NoError(t, tx.Rollback(ctx))

	got, err := repo.Get(ctx, "guest-2")
	require.NoError(t, err)
	assert.NotNil(t, got)

	require.NoError(t, repo.Delete(ctx, "guest-2"))
	got, err = repo.Get(ctx, "guest-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}
