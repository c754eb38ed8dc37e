package repository

import (
	"context"
	"testing"
	"time"

	"vineyard/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuItem(key, name, foodType, price string) model.MenuItem {
	return model.MenuItem{
		ID:          uuid.New(),
		KeyText:     key,
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		FoodType:    foodType,
		Ingredients: []model.Ingredient{{Name: "Salt", Type: "seasoning"}},
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestMenuItemRepository_CreateAndGet(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMenuItemRepository(pool, zerolog.Nop())
	ctx := context.Background()

	item := newMenuItem("lasagna", "Lasagna", "Main", "14.99")
	require.NoError(t, repo.Create(ctx, &item))

	got, err := repo.GetByKeyText(ctx, "lasagna")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, "Lasagna", got.Name)
	assert.True(t, item.Price.Equal(got.Price))
	assert.Equal(t, item.Ingredients, got.Ingredients)

	missing, err := repo.GetByKeyText(ctx, "nothing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMenuItemRepository_CreateDuplicateKeyText(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMenuItemRepository(pool, zerolog.Nop())
	ctx := context.Background()

	first := newMenuItem("coke", "Coke", "Drink", "2.99")
	second := newMenuItem("coke", "Coke Zero", "Drink", "2.99")

	require.NoError(t, repo.Create(ctx, &first))
	err := repo.Create(ctx, &second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create menu item coke")
}

func TestMenuItemRepository_GetAll(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMenuItemRepository(pool, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.CreateMany(ctx, []model.MenuItem{
		newMenuItem("water", "Water", "Drink", "1.99"),
		newMenuItem("coke", "Coke", "Drink", "2.99"),
		newMenuItem("lasagna", "Lasagna", "Main", "14.99"),
	}))

	tests := []struct {
		name     string
		foodType string
		expected []string
	}{
		{name: "All items", foodType: "", expected: []string{"coke", "water", "lasagna"}},
		{name: "Drinks only", foodType: "Drink", expected: []string{"coke", "water"}},
		{name: "Unknown type", foodType: "Dessert", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := repo.GetAll(ctx, tt.foodType)
			require.NoError(t, err)

			keys := make([]string, len(items))
			for i, item := range items {
				keys[i] = item.KeyText
			}
			assert.Equal(t, tt.expected, keys)
		})
	}
}

func TestMenuItemRepository_CreateManyRollsBack(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMenuItemRepository(pool, zerolog.Nop())
	ctx := context.Background()

	err := repo.CreateMany(ctx, []model.MenuItem{
		newMenuItem("water", "Water", "Drink", "1.99"),
		newMenuItem("water", "Water Again", "Drink", "1.99"),
	})
	require.Error(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMenuItemRepository_KeyTextsAndCount(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMenuItemRepository(pool, zerolog.Nop())
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.CreateMany(ctx, []model.MenuItem{
		newMenuItem("chickena", "Chicken Alfredo Pasta", "Main", "16.99"),
		newMenuItem("chickenp", "Chicken Parmesan", "Main", "15.99"),
	}))

	keys, err := repo.ListKeyTexts(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"chickena", "chickenp"}, keys)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMenuItemRepository_Delete(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMenuItemRepository(pool, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.CreateMany(ctx, []model.MenuItem{
		newMenuItem("water", "Water", "Drink", "1.99"),
		newMenuItem("coke", "Coke", "Drink", "2.99"),
		newMenuItem("gelato", "Gelato", "Dessert", "5.49"),
	}))

	deleted, err := repo.Delete(ctx, "water")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "water")
	require.NoError(t, err)
	assert.False(t, deleted)

	n, err := repo.DeleteMany(ctx, []string{"coke", "gelato", "missing"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.DeleteMany(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
